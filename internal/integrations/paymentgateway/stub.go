package paymentgateway

import (
	"context"

	"github.com/google/uuid"
)

// Stub платежный шлюз, который всегда подтверждает списание
type Stub struct {
	log Logger
}

// NewStub создает заглушку платежного шлюза
func NewStub(log Logger) *Stub {
	return &Stub{log: log}
}

// Charge всегда завершается успешно
func (s *Stub) Charge(_ context.Context, charge ChargeRequest) (*Charge, error) {
	result := &Charge{
		TransactionID: "stub_" + uuid.NewString(),
		Status:        StatusSucceeded,
	}
	s.log.Info("Stub charge for booking_id=%s, amount=%d %s, transaction_id=%s",
		charge.BookingID, charge.Amount, charge.Currency, result.TransactionID)
	return result, nil
}
