package bookings

import (
	"context"

	"github.com/m04kA/SMC-DayCareBooking/internal/domain"
)

// LedgerReader интерфейс чтения снимка журнала вместимости
type LedgerReader interface {
	Snapshot(ctx context.Context) (domain.LedgerSnapshot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
