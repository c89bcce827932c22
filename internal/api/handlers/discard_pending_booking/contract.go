package discard_pending_booking

import "github.com/m04kA/SMC-DayCareBooking/internal/domain"

type BookingService interface {
	DiscardPending(session *domain.Session) bool
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
