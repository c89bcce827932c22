package domain

import (
	"sort"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

// ServiceBookingDetail is the priced, availability-confirmed part of a booking for one service
type ServiceBookingDetail struct {
	Service  ServiceType
	Dates    []civil.Date
	DayCount int
	Cost     int
}

// NewServiceBookingDetail prices the given weekdays for the service
func NewServiceBookingDetail(service ServiceType, dates []civil.Date) ServiceBookingDetail {
	copied := make([]civil.Date, len(dates))
	copy(copied, dates)

	return ServiceBookingDetail{
		Service:  service,
		Dates:    copied,
		DayCount: len(copied),
		Cost:     len(copied) * service.UnitPrice(),
	}
}

// PendingBooking is a priced booking proposal awaiting payment
type PendingBooking struct {
	ID        uuid.UUID
	Services  map[ServiceType]ServiceBookingDetail
	TotalCost int
	CreatedAt time.Time
}

// NewPendingBooking assembles a pending booking and sums its total cost
func NewPendingBooking(details []ServiceBookingDetail, now time.Time) *PendingBooking {
	pending := &PendingBooking{
		ID:        uuid.New(),
		Services:  make(map[ServiceType]ServiceBookingDetail, len(details)),
		CreatedAt: now,
	}

	for _, detail := range details {
		pending.Services[detail.Service] = detail
		pending.TotalCost += detail.Cost
	}

	return pending
}

// IsAvailable returns true if the booking can proceed to payment
func (p *PendingBooking) IsAvailable() bool {
	return p != nil && p.TotalCost > 0
}

// Details returns the per-service details in canonical service order
func (p *PendingBooking) Details() []ServiceBookingDetail {
	details := make([]ServiceBookingDetail, 0, len(p.Services))
	for _, detail := range p.Services {
		details = append(details, detail)
	}

	sort.Slice(details, func(i, j int) bool {
		return details[i].Service.Order() < details[j].Service.Order()
	})

	return details
}

// LedgerKeys returns one (date, service) key per booked weekday
func (p *PendingBooking) LedgerKeys() []LedgerKey {
	keys := make([]LedgerKey, 0)
	for _, detail := range p.Details() {
		for _, d := range detail.Dates {
			keys = append(keys, LedgerKey{Date: d, Service: detail.Service})
		}
	}
	return keys
}

// TotalDays returns the number of booked (date, service) pairs
func (p *PendingBooking) TotalDays() int {
	total := 0
	for _, detail := range p.Services {
		total += detail.DayCount
	}
	return total
}

// Receipt summarizes a committed booking
type Receipt struct {
	ID            uuid.UUID
	BookingID     uuid.UUID
	TransactionID string
	TotalCost     int
	DayCounts     map[ServiceType]int
	Services      []ServiceBookingDetail
	PaidAt        time.Time
}

// NewReceipt builds a receipt for a pending booking paid by the given transaction
func NewReceipt(pending *PendingBooking, transactionID string, paidAt time.Time) *Receipt {
	details := pending.Details()
	dayCounts := make(map[ServiceType]int, len(details))
	for _, detail := range details {
		dayCounts[detail.Service] = detail.DayCount
	}

	return &Receipt{
		ID:            uuid.New(),
		BookingID:     pending.ID,
		TransactionID: transactionID,
		TotalCost:     pending.TotalCost,
		DayCounts:     dayCounts,
		Services:      details,
		PaidAt:        paidAt,
	}
}
