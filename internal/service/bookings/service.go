package bookings

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-DayCareBooking/internal/domain"
	"github.com/m04kA/SMC-DayCareBooking/internal/service/bookings/models"
)

// Service сервис чтения состояния бронирований сессии и журнала вместимости
type Service struct {
	ledger LedgerReader
	logger Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(ledger LedgerReader, logger Logger) *Service {
	return &Service{
		ledger: ledger,
		logger: logger,
	}
}

// GetPending возвращает бронирование сессии, ожидающее оплаты
func (s *Service) GetPending(session *domain.Session) (*models.PendingBookingResponse, error) {
	pending := session.Pending()
	if !pending.IsAvailable() {
		return nil, domain.ErrNoPendingBooking
	}
	return models.FromDomainPending(pending), nil
}

// GetPendingSummary возвращает markdown-сводку ожидающего бронирования
func (s *Service) GetPendingSummary(session *domain.Session) (string, error) {
	pending := session.Pending()
	if !pending.IsAvailable() {
		return "", domain.ErrNoPendingBooking
	}
	return domain.RenderSummary(pending), nil
}

// DiscardPending сбрасывает ожидающее бронирование; false, если его не было
func (s *Service) DiscardPending(session *domain.Session) bool {
	discarded := session.DiscardPending()
	if discarded {
		s.logger.Info("DiscardPending: session=%s, pending booking discarded", session.ID)
	}
	return discarded
}

// TakeReceipt возвращает квитанцию последней оплаты один раз
func (s *Service) TakeReceipt(session *domain.Session) (*models.ReceiptResponse, error) {
	receipt := session.TakeReceipt()
	if receipt == nil {
		return nil, ErrNoReceipt
	}
	s.logger.Info("TakeReceipt: session=%s, receipt id=%s shown", session.ID, receipt.ID)
	return models.FromDomainReceipt(receipt), nil
}

// Capacity возвращает снимок журнала вместимости
func (s *Service) Capacity(ctx context.Context) (*models.CapacityResponse, error) {
	snapshot, err := s.ledger.Snapshot(ctx)
	if err != nil {
		s.logger.Error("Capacity: failed to read ledger snapshot: %v", err)
		return nil, fmt.Errorf("%w: Capacity - ledger error: %v", ErrInternal, err)
	}

	s.logger.Info("Capacity: snapshot with %d dates", len(snapshot))
	return models.FromDomainSnapshot(snapshot), nil
}

// Services возвращает прайс-лист
func (s *Service) Services() *models.ServiceListResponse {
	return models.ServiceList()
}
