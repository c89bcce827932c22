package attempt_booking

import "github.com/m04kA/SMC-DayCareBooking/internal/domain"

// Selection выбранная услуга и диапазон дат для нее
type Selection struct {
	Service domain.ServiceType
	Range   domain.DateRange
}

// Request модель попытки бронирования
type Request struct {
	Selections []Selection
}

const (
	resultAvailable = "available"
	resultRejected  = "rejected"
	resultError     = "error"
)
