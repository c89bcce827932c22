package attempt_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DayCareBooking/internal/domain"
	"github.com/m04kA/SMC-DayCareBooking/internal/usecase/check_availability"
)

// UseCase use case попытки бронирования по всем выбранным услугам
type UseCase struct {
	checker      AvailabilityChecker
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(checker AvailabilityChecker, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		checker:      checker,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute проверяет все выбранные услуги и сохраняет ожидающее оплаты бронирование в сессии
// Все проблемы по всем услугам возвращаются вместе как domain.Problems
func (uc *UseCase) Execute(ctx context.Context, session *domain.Session, req *Request) (*domain.PendingBooking, error) {
	uc.logger.Info("AttemptBooking: session=%s, selections=%d", session.ID, len(req.Selections))

	// 1. Любая новая попытка сбрасывает предыдущее бронирование
	if session.DiscardPending() {
		uc.logger.Info("AttemptBooking: session=%s, previous pending booking discarded", session.ID)
	}

	if len(req.Selections) == 0 {
		return nil, uc.reject(session, domain.Problems{domain.ErrNoServiceSelected}, nil)
	}

	// 2. Канонический порядок услуг и проверка повторов
	selections, problems := orderSelections(req.Selections)

	// 3. Каждая услуга проверяется независимо, проблемы накапливаются
	details := make([]domain.ServiceBookingDetail, 0, len(selections))
	for _, s := range selections {
		detail, err := uc.checker.Execute(ctx, &check_availability.Request{
			Service: s.Service,
			Range:   s.Range,
		})
		if err != nil {
			if errors.Is(err, check_availability.ErrInternal) {
				uc.logger.Error("AttemptBooking: session=%s, check of %s failed: %v", session.ID, s.Service, err)
				uc.metrics.ObserveAttempt(resultError)
				return nil, fmt.Errorf("%w: failed to check %s: %v", ErrInternal, s.Service, err)
			}
			problems = append(problems, err)
			continue
		}
		details = append(details, *detail)
	}

	if len(problems) > 0 {
		return nil, uc.reject(session, problems, details)
	}

	// 4. Сборка бронирования; нулевая сумма никогда не считается успехом
	pending := domain.NewPendingBooking(details, uc.timeProvider.Now())
	if !pending.IsAvailable() {
		return nil, uc.reject(session, domain.Problems{domain.ErrZeroValidDays}, nil)
	}

	session.SetPending(pending)
	uc.metrics.ObserveAttempt(resultAvailable)

	uc.logger.Info("AttemptBooking: session=%s, pending booking id=%s, days=%d, total=%d",
		session.ID, pending.ID, pending.TotalDays(), pending.TotalCost)

	return pending, nil
}

func (uc *UseCase) reject(session *domain.Session, problems domain.Problems, passed []domain.ServiceBookingDetail) error {
	uc.logger.Warn("AttemptBooking: session=%s, rejected: %v", session.ID, problems)
	uc.metrics.ObserveAttempt(resultRejected)
	return &RejectionError{Problems: problems, Passed: passed}
}
