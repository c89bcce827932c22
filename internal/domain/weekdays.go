package domain

import (
	"time"

	"cloud.google.com/go/civil"
)

// IsWeekday returns true for Monday through Friday
func IsWeekday(d civil.Date) bool {
	switch d.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	default:
		return true
	}
}

// ExpandWeekdays returns every Monday–Friday date of the range, both ends inclusive,
// in chronological order. A malformed range (missing endpoint or start after end)
// yields an empty slice.
func ExpandWeekdays(r DateRange) []civil.Date {
	weekdays := make([]civil.Date, 0)
	if r.Validate() != nil {
		return weekdays
	}

	for d := *r.Start; !d.After(*r.End); d = d.AddDays(1) {
		if IsWeekday(d) {
			weekdays = append(weekdays, d)
		}
	}

	return weekdays
}
