package domain

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
)

func TestSession_PendingLifecycle(t *testing.T) {
	now := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	s := NewSession("s-1", now)
	first := NewPendingBooking([]ServiceBookingDetail{
		NewServiceBookingDetail(ServiceElderCare, []civil.Date{date(2026, 10, 20)}),
	}, now)
	second := NewPendingBooking([]ServiceBookingDetail{
		NewServiceBookingDetail(ServiceChildCare, []civil.Date{date(2026, 10, 20)}),
	}, now)

	assert.Nil(t, s.Pending())

	s.SetPending(first)
	assert.Same(t, first, s.Pending())

	taken := s.TakePending()
	assert.Same(t, first, taken)
	assert.Nil(t, s.TakePending())

	// Новый pending, появившийся во время оплаты, не перезаписывается
	s.SetPending(second)
	s.RestorePending(first)
	assert.Same(t, second, s.Pending())

	assert.True(t, s.DiscardPending())
	assert.False(t, s.DiscardPending())

	s.RestorePending(first)
	assert.Same(t, first, s.Pending())
}

func TestSession_ReceiptShownOnce(t *testing.T) {
	now := time.Now()
	s := NewSession("s-1", now)
	pending := NewPendingBooking([]ServiceBookingDetail{
		NewServiceBookingDetail(ServiceElderCare, []civil.Date{date(2026, 10, 20)}),
	}, now)
	receipt := NewReceipt(pending, "txn", now)

	s.StoreReceipt(receipt)

	assert.Same(t, receipt, s.TakeReceipt())
	assert.Nil(t, s.TakeReceipt())
}

func TestSession_IdleSince(t *testing.T) {
	now := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	s := NewSession("s-1", now)

	assert.Equal(t, 10*time.Minute, s.IdleSince(now.Add(10*time.Minute)))

	s.Touch(now.Add(10 * time.Minute))
	assert.Equal(t, time.Duration(0), s.IdleSince(now.Add(10*time.Minute)))
}

func TestDailyOccupancy(t *testing.T) {
	day := DailyOccupancy{
		Date:   date(2026, 10, 20),
		Counts: map[ServiceType]int{ServiceElderCare: 25, ServiceChildCare: 5},
	}

	assert.True(t, day.IsFull(ServiceElderCare))
	assert.Equal(t, 20, day.Remaining(ServiceChildCare))
	assert.InDelta(t, 20.0, day.OccupancyRate(ServiceChildCare), 0.001)
}

func TestNewLedgerSnapshot_SortedByDate(t *testing.T) {
	snapshot := NewLedgerSnapshot(map[LedgerKey]int{
		{Date: date(2026, 10, 21), Service: ServiceElderCare}: 2,
		{Date: date(2026, 10, 20), Service: ServiceChildCare}: 1,
		{Date: date(2026, 10, 20), Service: ServiceElderCare}: 3,
	})

	assert.Len(t, snapshot, 2)
	assert.Equal(t, date(2026, 10, 20), snapshot[0].Date)
	assert.Equal(t, 3, snapshot.CountOn(date(2026, 10, 20), ServiceElderCare))
	assert.Equal(t, 2, snapshot.CountOn(date(2026, 10, 21), ServiceElderCare))
	assert.Equal(t, 0, snapshot.CountOn(date(2026, 10, 22), ServiceElderCare))
}
