package attempt_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DayCareBooking/internal/domain"
	"github.com/m04kA/SMC-DayCareBooking/internal/usecase/check_availability"
)

// AvailabilityChecker интерфейс проверки доступности одной услуги
type AvailabilityChecker interface {
	Execute(ctx context.Context, req *check_availability.Request) (*domain.ServiceBookingDetail, error)
}

// Metrics интерфейс бизнес-метрик попыток бронирования
type Metrics interface {
	ObserveAttempt(result string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
