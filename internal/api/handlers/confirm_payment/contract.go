package confirm_payment

import (
	"context"

	"github.com/m04kA/SMC-DayCareBooking/internal/domain"
)

type ConfirmPaymentUseCase interface {
	Execute(ctx context.Context, session *domain.Session) (*domain.Receipt, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
