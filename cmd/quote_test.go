package main

import (
	"bytes"
	"context"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/m04kA/SMC-DayCareBooking/internal/domain"
	"github.com/m04kA/SMC-DayCareBooking/internal/infra/storage/ledger"
	attemptBookingUC "github.com/m04kA/SMC-DayCareBooking/internal/usecase/attempt_booking"
	checkAvailabilityUC "github.com/m04kA/SMC-DayCareBooking/internal/usecase/check_availability"
	"github.com/m04kA/SMC-DayCareBooking/pkg/logger"
	"github.com/m04kA/SMC-DayCareBooking/pkg/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = civil.Date{Year: 2026, Month: 10, Day: 15}

func newAttempt(l *ledger.Memory) *attemptBookingUC.UseCase {
	var noMetrics *metrics.Metrics
	checker := checkAvailabilityUC.NewUseCase(l, noMetrics, logger.NewNop())
	return attemptBookingUC.NewUseCase(checker, noMetrics, logger.NewNop())
}

func TestQuoteRequest(t *testing.T) {
	req, err := quoteRequest(map[domain.ServiceType]string{
		domain.ServiceChildCare: "2026-10-20:2026-10-21",
		domain.ServiceElderCare: "2026-10-19:",
	}, today)
	require.NoError(t, err)

	require.Len(t, req.Selections, 2)
	assert.Equal(t, domain.ServiceElderCare, req.Selections[0].Service)
	assert.Nil(t, req.Selections[0].Range.End)
	assert.Equal(t, domain.ServiceChildCare, req.Selections[1].Service)
}

func TestQuoteRequest_Errors(t *testing.T) {
	_, err := quoteRequest(map[domain.ServiceType]string{domain.ServiceElderCare: "2026-10-19"}, today)
	assert.Error(t, err)

	_, err = quoteRequest(map[domain.ServiceType]string{domain.ServiceElderCare: "2026-10-10:2026-10-19"}, today)
	assert.ErrorIs(t, err, domain.ErrDateNotInFuture)
}

func TestRunQuote_Summary(t *testing.T) {
	req, err := quoteRequest(map[domain.ServiceType]string{
		domain.ServiceElderCare: "2026-10-19:2026-10-23",
	}, today)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, runQuote(context.Background(), &out, newAttempt(ledger.NewMemory()), req))

	assert.Contains(t, out.String(), "**Elder Day Care:**")
	assert.Contains(t, out.String(), "- Weekdays: 5")
	assert.Contains(t, out.String(), "Total Amount Payable: Rs. 4000.00")
}

func TestRunQuote_Problems(t *testing.T) {
	req, err := quoteRequest(map[domain.ServiceType]string{
		domain.ServiceElderCare: "2026-10-24:2026-10-25",
		domain.ServiceChildCare: "2026-10-21:2026-10-20",
	}, today)
	require.NoError(t, err)

	var out bytes.Buffer
	err = runQuote(context.Background(), &out, newAttempt(ledger.NewMemory()), req)

	assert.ErrorIs(t, err, errQuoteRejected)
	assert.Contains(t, out.String(), "Elder Care:")
	assert.Contains(t, out.String(), "Child Care:")
}
