package get_services

import "github.com/m04kA/SMC-DayCareBooking/internal/service/bookings/models"

type BookingService interface {
	Services() *models.ServiceListResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
