package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	checkAvailabilityHandler "github.com/m04kA/SMC-DayCareBooking/internal/api/handlers/check_availability"
	"github.com/m04kA/SMC-DayCareBooking/internal/config"
	"github.com/m04kA/SMC-DayCareBooking/internal/domain"
	attemptBookingUC "github.com/m04kA/SMC-DayCareBooking/internal/usecase/attempt_booking"
	checkAvailabilityUC "github.com/m04kA/SMC-DayCareBooking/internal/usecase/check_availability"
	"github.com/m04kA/SMC-DayCareBooking/pkg/logger"
	"github.com/m04kA/SMC-DayCareBooking/pkg/metrics"
)

var errQuoteRejected = errors.New("booking is not available")

func newQuoteCmd(configPath *string) *cobra.Command {
	var elder, child string

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Check availability and print the booking summary",
		Example: "  daycare quote --elder 2026-10-19:2026-10-23\n" +
			"  daycare quote --elder 2026-10-19:2026-10-23 --child 2026-10-20:2026-10-21",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			req, err := quoteRequest(map[domain.ServiceType]string{
				domain.ServiceElderCare: elder,
				domain.ServiceChildCare: child,
			}, civil.DateOf(time.Now()))
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			log := logger.NewNop()
			capacity, closeLedger, err := openLedger(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer closeLedger()

			// Метрики в CLI не собираются
			var noMetrics *metrics.Metrics
			checker := checkAvailabilityUC.NewUseCase(capacity, noMetrics, log)
			return runQuote(ctx, cmd.OutOrStdout(), attemptBookingUC.NewUseCase(checker, noMetrics, log), req)
		},
	}

	cmd.Flags().StringVar(&elder, "elder", "", "Elder Day Care range FROM:TO (YYYY-MM-DD:YYYY-MM-DD)")
	cmd.Flags().StringVar(&child, "child", "", "Child Day Care range FROM:TO (YYYY-MM-DD:YYYY-MM-DD)")

	return cmd
}

type attemptBooking interface {
	Execute(ctx context.Context, session *domain.Session, req *attemptBookingUC.Request) (*domain.PendingBooking, error)
}

// runQuote печатает markdown-сводку или список проблем
func runQuote(ctx context.Context, out io.Writer, useCase attemptBooking, req *attemptBookingUC.Request) error {
	session := domain.NewSession(uuid.NewString(), time.Now())

	pending, err := useCase.Execute(ctx, session, req)
	if err != nil {
		var problems domain.Problems
		if !errors.As(err, &problems) {
			return err
		}

		for _, msg := range problems.Messages() {
			fmt.Fprintf(out, "- %s\n", msg)
		}
		return errQuoteRejected
	}

	fmt.Fprintln(out, domain.RenderSummary(pending))
	return nil
}

// quoteRequest разбирает флаги FROM:TO теми же правилами, что и HTTP API
func quoteRequest(ranges map[domain.ServiceType]string, today civil.Date) (*attemptBookingUC.Request, error) {
	body := checkAvailabilityHandler.CheckAvailabilityRequest{}

	for _, service := range domain.AllServices {
		value, ok := ranges[service]
		if !ok || value == "" {
			continue
		}

		start, end, found := strings.Cut(value, ":")
		if !found {
			return nil, fmt.Errorf("%s: range must be FROM:TO, got %q", service.ShortName(), value)
		}

		body.Selections = append(body.Selections, checkAvailabilityHandler.SelectionRequest{
			Service:   string(service),
			StartDate: strings.TrimSpace(start),
			EndDate:   strings.TrimSpace(end),
		})
	}

	return body.ToUseCaseRequest(today)
}
