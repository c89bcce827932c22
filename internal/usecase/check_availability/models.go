package check_availability

import "github.com/m04kA/SMC-DayCareBooking/internal/domain"

// Request модель запроса проверки доступности одной услуги
type Request struct {
	Service domain.ServiceType // Услуга
	Range   domain.DateRange   // Диапазон дат, концы могут отсутствовать
}

const (
	resultAvailable = "available"
	resultInvalid   = "invalid"
	resultFull      = "full"
	resultError     = "error"
)
