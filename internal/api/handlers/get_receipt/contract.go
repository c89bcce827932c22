package get_receipt

import (
	"github.com/m04kA/SMC-DayCareBooking/internal/domain"
	"github.com/m04kA/SMC-DayCareBooking/internal/service/bookings/models"
)

type BookingService interface {
	TakeReceipt(session *domain.Session) (*models.ReceiptResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
