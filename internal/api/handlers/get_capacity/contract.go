package get_capacity

import (
	"context"

	"github.com/m04kA/SMC-DayCareBooking/internal/service/bookings/models"
)

type BookingService interface {
	Capacity(ctx context.Context) (*models.CapacityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
