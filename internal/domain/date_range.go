package domain

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// DateRange is an inclusive range of calendar dates.
// Either endpoint may be absent when the user has not picked it yet.
type DateRange struct {
	Start *civil.Date
	End   *civil.Date
}

// NewDateRange creates a range with both endpoints set
func NewDateRange(start, end civil.Date) DateRange {
	return DateRange{Start: &start, End: &end}
}

// IsComplete returns true if both endpoints are present
func (r DateRange) IsComplete() bool {
	return r.Start != nil && r.End != nil
}

// Validate checks the range is complete and not inverted
func (r DateRange) Validate() error {
	if !r.IsComplete() {
		return ErrMissingDate
	}
	if r.Start.After(*r.End) {
		return ErrInvertedRange
	}
	return nil
}

// String renders the range as "YYYY-MM-DD..YYYY-MM-DD", "?" for an absent endpoint
func (r DateRange) String() string {
	start, end := "?", "?"
	if r.Start != nil {
		start = r.Start.String()
	}
	if r.End != nil {
		end = r.End.String()
	}
	return start + ".." + end
}

// FormatDisplayDate renders a date as "2006-01-02 (Mon)"
func FormatDisplayDate(d civil.Date) string {
	return d.In(time.UTC).Format(DisplayDateFormat)
}

// ParseBookingDate parses an optional "YYYY-MM-DD" input date.
// An empty value is an absent endpoint. A present date must be strictly after today.
func ParseBookingDate(value string, today civil.Date) (*civil.Date, error) {
	if value == "" {
		return nil, nil
	}

	d, err := civil.ParseDate(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDateFormat, value)
	}
	if !d.After(today) {
		return nil, fmt.Errorf("%w: %s", ErrDateNotInFuture, d)
	}

	return &d, nil
}
