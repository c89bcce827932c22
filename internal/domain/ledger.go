package domain

import (
	"sort"

	"cloud.google.com/go/civil"
)

// LedgerKey identifies one capacity counter
type LedgerKey struct {
	Date    civil.Date
	Service ServiceType
}

// DailyOccupancy holds the confirmed booking counts of one date
type DailyOccupancy struct {
	Date   civil.Date
	Counts map[ServiceType]int
}

// Remaining returns the free places left for the service on this date
func (o DailyOccupancy) Remaining(service ServiceType) int {
	remaining := MaxCapacity - o.Counts[service]
	if remaining < 0 {
		return 0
	}
	return remaining
}

// IsFull returns true if the service has no free places on this date
func (o DailyOccupancy) IsFull(service ServiceType) bool {
	return o.Remaining(service) == 0
}

// OccupancyRate returns the occupancy rate of the service as a percentage (0-100)
func (o DailyOccupancy) OccupancyRate(service ServiceType) float64 {
	return float64(o.Counts[service]) / float64(MaxCapacity) * 100
}

// LedgerSnapshot is a read-only copy of the capacity ledger ordered by date
type LedgerSnapshot []DailyOccupancy

// NewLedgerSnapshot builds a date-ordered snapshot from flat counters
func NewLedgerSnapshot(counts map[LedgerKey]int) LedgerSnapshot {
	byDate := make(map[civil.Date]map[ServiceType]int)
	for key, count := range counts {
		if _, ok := byDate[key.Date]; !ok {
			byDate[key.Date] = make(map[ServiceType]int)
		}
		byDate[key.Date][key.Service] = count
	}

	snapshot := make(LedgerSnapshot, 0, len(byDate))
	for d, services := range byDate {
		snapshot = append(snapshot, DailyOccupancy{Date: d, Counts: services})
	}

	sort.Slice(snapshot, func(i, j int) bool {
		return snapshot[i].Date.Before(snapshot[j].Date)
	})

	return snapshot
}

// CountOn returns the count recorded in the snapshot, 0 if absent
func (s LedgerSnapshot) CountOn(d civil.Date, service ServiceType) int {
	for _, day := range s {
		if day.Date == d {
			return day.Counts[service]
		}
	}
	return 0
}
