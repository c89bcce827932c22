package confirm_payment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DayCareBooking/internal/domain"
	"github.com/m04kA/SMC-DayCareBooking/internal/integrations/paymentgateway"
)

// PaymentGateway интерфейс платежного шлюза
type PaymentGateway interface {
	Charge(ctx context.Context, charge paymentgateway.ChargeRequest) (*paymentgateway.Charge, error)
}

// Ledger интерфейс записи в журнал вместимости
type Ledger interface {
	IncrementAll(ctx context.Context, keys []domain.LedgerKey, limit int) error
}

// Metrics интерфейс бизнес-метрик оплаты
type Metrics interface {
	ObserveCommit(result string)
	ObserveCommittedDays(service string, days int)
	ObserveRevenue(amount int)
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
