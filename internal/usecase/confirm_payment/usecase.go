package confirm_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DayCareBooking/internal/domain"
	"github.com/m04kA/SMC-DayCareBooking/internal/infra/storage/ledger"
	"github.com/m04kA/SMC-DayCareBooking/internal/integrations/paymentgateway"
)

// UseCase use case подтверждения оплаты ожидающего бронирования
type UseCase struct {
	gateway      PaymentGateway
	ledger       Ledger
	currency     string
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(gateway PaymentGateway, ledger Ledger, currency string, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		gateway:      gateway,
		ledger:       ledger,
		currency:     currency,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute списывает оплату и только после успеха увеличивает журнал
// При ошибке оплаты журнал не меняется, бронирование возвращается в сессию
func (uc *UseCase) Execute(ctx context.Context, session *domain.Session) (*domain.Receipt, error) {
	uc.logger.Info("ConfirmPayment: session=%s", session.ID)

	// 1. Забираем бронирование из сессии, повторное подтверждение его уже не увидит
	pending := session.TakePending()
	if !pending.IsAvailable() {
		uc.logger.Warn("ConfirmPayment: session=%s has no pending booking", session.ID)
		uc.metrics.ObserveCommit(resultNoPending)
		return nil, domain.ErrNoPendingBooking
	}

	// 2. Оплата
	charge, err := uc.gateway.Charge(ctx, paymentgateway.ChargeRequest{
		BookingID: pending.ID.String(),
		Amount:    pending.TotalCost,
		Currency:  uc.currency,
	})
	if err == nil && charge.Status != paymentgateway.StatusSucceeded {
		err = fmt.Errorf("charge status %q", charge.Status)
	}
	if err != nil {
		session.RestorePending(pending)
		uc.logger.Warn("ConfirmPayment: session=%s, booking=%s, payment failed: %v", session.ID, pending.ID, err)
		uc.metrics.ObserveCommit(resultPaymentFailed)
		return nil, fmt.Errorf("%w: %v", domain.ErrPaymentFailed, err)
	}

	// 3. Ровно одно увеличение на каждую пару (дата, услуга), все или ничего
	if err := uc.ledger.IncrementAll(ctx, pending.LedgerKeys(), domain.MaxCapacity); err != nil {
		var limitErr *ledger.LimitReachedError
		if errors.As(err, &limitErr) {
			uc.logger.Error("ConfirmPayment: session=%s, booking=%s, transaction=%s paid but capacity taken meanwhile: %v",
				session.ID, pending.ID, charge.TransactionID, err)
			uc.metrics.ObserveCommit(resultConflict)
			return nil, fmt.Errorf("%w: %w", domain.ErrCommitConflict, &domain.CapacityExceededError{
				Dates: limitErr.Dates(),
				Limit: limitErr.Limit,
			})
		}

		uc.logger.Error("ConfirmPayment: session=%s, booking=%s, transaction=%s paid but ledger update failed: %v",
			session.ID, pending.ID, charge.TransactionID, err)
		uc.metrics.ObserveCommit(resultError)
		return nil, fmt.Errorf("%w: failed to commit booking: %v", ErrInternal, err)
	}

	// 4. Квитанция показывается один раз
	receipt := domain.NewReceipt(pending, charge.TransactionID, uc.timeProvider.Now())
	session.StoreReceipt(receipt)

	uc.metrics.ObserveCommit(resultSuccess)
	for _, detail := range receipt.Services {
		uc.metrics.ObserveCommittedDays(string(detail.Service), detail.DayCount)
	}
	uc.metrics.ObserveRevenue(receipt.TotalCost)

	uc.logger.Info("ConfirmPayment: session=%s, booking=%s committed, transaction=%s, total=%d",
		session.ID, pending.ID, charge.TransactionID, receipt.TotalCost)

	return receipt, nil
}
