package attempt_booking

import (
	"errors"

	"github.com/m04kA/SMC-DayCareBooking/internal/domain"
)

var (
	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("attempt_booking: internal error")
)

// RejectionError отказ в бронировании: все проблемы и услуги, которые проверку прошли
// errors.As(err, &domain.Problems{}) продолжает работать через Unwrap
type RejectionError struct {
	Problems domain.Problems
	Passed   []domain.ServiceBookingDetail
}

func (e *RejectionError) Error() string {
	return e.Problems.Error()
}

func (e *RejectionError) Unwrap() error {
	return e.Problems
}
