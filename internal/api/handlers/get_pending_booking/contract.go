package get_pending_booking

import (
	"github.com/m04kA/SMC-DayCareBooking/internal/domain"
	"github.com/m04kA/SMC-DayCareBooking/internal/service/bookings/models"
)

type BookingService interface {
	GetPending(session *domain.Session) (*models.PendingBookingResponse, error)
	GetPendingSummary(session *domain.Session) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
