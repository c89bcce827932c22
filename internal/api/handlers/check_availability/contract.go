package check_availability

import (
	"context"

	"github.com/m04kA/SMC-DayCareBooking/internal/domain"
	attemptBooking "github.com/m04kA/SMC-DayCareBooking/internal/usecase/attempt_booking"
)

type AttemptBookingUseCase interface {
	Execute(ctx context.Context, session *domain.Session, req *attemptBooking.Request) (*domain.PendingBooking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
