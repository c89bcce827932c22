package domain

import (
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/civil"
)

var (
	// ErrNoServiceSelected returned when a booking attempt selects no service
	ErrNoServiceSelected = errors.New("please select at least one service type")

	// ErrMissingDate returned when a range lacks its start or end date
	ErrMissingDate = errors.New("please select both a start and end date")

	// ErrInvertedRange returned when the start date is after the end date
	ErrInvertedRange = errors.New("start date cannot be after end date")

	// ErrNoWeekdaysInRange returned when a range covers only weekend days
	ErrNoWeekdaysInRange = errors.New("selected range contains no weekdays (Mon-Fri)")

	// ErrCapacityExceeded returned when at least one date is booked to capacity
	ErrCapacityExceeded = errors.New("capacity limit reached")

	// ErrZeroValidDays returned when an otherwise valid attempt prices to zero
	ErrZeroValidDays = errors.New("selected range(s) resulted in zero valid booking days (Mon-Fri)")

	// ErrPaymentFailed returned when the payment collaborator does not confirm the charge
	ErrPaymentFailed = errors.New("payment failed")

	// ErrUnknownService returned for a service name outside the catalog
	ErrUnknownService = errors.New("unknown service type")

	// ErrDuplicateService returned when one service is selected twice in an attempt
	ErrDuplicateService = errors.New("service selected more than once")

	// ErrNoPendingBooking returned when payment is confirmed without a successful check
	ErrNoPendingBooking = errors.New("no pending booking, check availability first")

	// ErrInvalidDateFormat returned by the input layer for a date that is not YYYY-MM-DD
	ErrInvalidDateFormat = errors.New("invalid date, expected YYYY-MM-DD")

	// ErrDateNotInFuture returned by the input layer for a date that is not after today
	ErrDateNotInFuture = errors.New("date must be in the future")

	// ErrCommitConflict returned when capacity was taken between check and commit
	ErrCommitConflict = errors.New("capacity changed before the booking was committed")
)

// ServiceError binds a problem to the service it was found for
type ServiceError struct {
	Service ServiceType
	Err     error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Service.ShortName(), capitalize(e.Err.Error()))
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// CapacityExceededError lists every date that is already booked to the limit
type CapacityExceededError struct {
	Dates []civil.Date
	Limit int
}

func (e *CapacityExceededError) Error() string {
	dates := make([]string, len(e.Dates))
	for i, d := range e.Dates {
		dates[i] = FormatDisplayDate(d)
	}
	return fmt.Sprintf("capacity limit (%d) reached on: %s", e.Limit, strings.Join(dates, ", "))
}

// Is makes errors.Is(err, ErrCapacityExceeded) match
func (e *CapacityExceededError) Is(target error) bool {
	return target == ErrCapacityExceeded
}

// Problems aggregates every validation and capacity problem of one booking attempt
type Problems []error

func (p Problems) Error() string {
	return strings.Join(p.Messages(), "; ")
}

// Unwrap exposes the individual problems to errors.Is and errors.As
func (p Problems) Unwrap() []error {
	return p
}

// Messages returns one human-readable message per problem
func (p Problems) Messages() []string {
	messages := make([]string, len(p))
	for i, err := range p {
		messages[i] = capitalize(err.Error())
	}
	return messages
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
