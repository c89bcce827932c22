package check_availability

import (
	"context"
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/m04kA/SMC-DayCareBooking/internal/domain"
)

// UseCase use case проверки доступности услуги на диапазон дат
// Только читает журнал, повторный вызов с тем же состоянием дает тот же результат
type UseCase struct {
	ledger  LedgerReader
	metrics Metrics
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(ledger LedgerReader, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		ledger:  ledger,
		metrics: metrics,
		logger:  logger,
	}
}

// Execute проверяет услугу и возвращает расчет по ней
// Проблемы валидации и вместимости возвращаются как *domain.ServiceError
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.ServiceBookingDetail, error) {
	uc.logger.Info("CheckAvailability: service=%s, range=%s", req.Service, req.Range)

	// 1. Валидация услуги и диапазона
	if !req.Service.IsValid() {
		return nil, uc.reject(req.Service, resultInvalid, fmt.Errorf("%w: %q", domain.ErrUnknownService, req.Service))
	}

	if err := req.Range.Validate(); err != nil {
		return nil, uc.reject(req.Service, resultInvalid, err)
	}

	// 2. Раскладываем диапазон на рабочие дни
	dates := domain.ExpandWeekdays(req.Range)
	if len(dates) == 0 {
		return nil, uc.reject(req.Service, resultInvalid, domain.ErrNoWeekdaysInRange)
	}

	// 3. Собираем все заполненные даты, без досрочного выхода
	var full []civil.Date
	for _, d := range dates {
		count, err := uc.ledger.CountOn(ctx, d, req.Service)
		if err != nil {
			uc.logger.Error("CheckAvailability: failed to read ledger for %s on %s: %v", req.Service, d, err)
			uc.metrics.ObserveCheck(string(req.Service), resultError)
			return nil, fmt.Errorf("%w: failed to read ledger: %v", ErrInternal, err)
		}
		if count >= domain.MaxCapacity {
			full = append(full, d)
		}
	}

	if len(full) > 0 {
		return nil, uc.reject(req.Service, resultFull, &domain.CapacityExceededError{
			Dates: full,
			Limit: domain.MaxCapacity,
		})
	}

	// 4. Расчет стоимости
	detail := domain.NewServiceBookingDetail(req.Service, dates)

	uc.metrics.ObserveCheck(string(req.Service), resultAvailable)
	uc.logger.Info("CheckAvailability: %s available, days=%d, cost=%d", req.Service, detail.DayCount, detail.Cost)

	return &detail, nil
}

func (uc *UseCase) reject(service domain.ServiceType, result string, err error) error {
	uc.logger.Warn("CheckAvailability: %s rejected: %v", service, err)
	uc.metrics.ObserveCheck(string(service), result)
	return &domain.ServiceError{Service: service, Err: err}
}
