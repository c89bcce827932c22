package check_availability

import (
	"context"

	"cloud.google.com/go/civil"
	"github.com/m04kA/SMC-DayCareBooking/internal/domain"
)

// LedgerReader интерфейс чтения журнала вместимости
type LedgerReader interface {
	CountOn(ctx context.Context, date civil.Date, service domain.ServiceType) (int, error)
}

// Metrics интерфейс бизнес-метрик проверки доступности
type Metrics interface {
	ObserveCheck(service, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
