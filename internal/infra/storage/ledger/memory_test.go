package ledger

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/m04kA/SMC-DayCareBooking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) civil.Date {
	return civil.Date{Year: year, Month: month, Day: day}
}

func TestMemory_CountOnDoesNotInsert(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	count, err := m.CountOn(ctx, date(2026, 10, 20), domain.ServiceElderCare)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	snapshot, err := m.Snapshot(ctx)
	require.NoError(t, err)
	assert.Empty(t, snapshot)
}

func TestMemory_Increment(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Increment(ctx, date(2026, 10, 20), domain.ServiceElderCare))
	require.NoError(t, m.Increment(ctx, date(2026, 10, 20), domain.ServiceElderCare))

	elder, _ := m.CountOn(ctx, date(2026, 10, 20), domain.ServiceElderCare)
	child, _ := m.CountOn(ctx, date(2026, 10, 20), domain.ServiceChildCare)
	assert.Equal(t, 2, elder)
	assert.Equal(t, 0, child)
}

func TestMemory_IncrementAll_AllOrNothing(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	full := domain.LedgerKey{Date: date(2026, 10, 21), Service: domain.ServiceChildCare}
	for i := 0; i < 3; i++ {
		require.NoError(t, m.Increment(ctx, full.Date, full.Service))
	}

	keys := []domain.LedgerKey{
		{Date: date(2026, 10, 20), Service: domain.ServiceChildCare},
		full,
	}
	err := m.IncrementAll(ctx, keys, 3)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLimitReached)

	var limitErr *LimitReachedError
	require.True(t, errors.As(err, &limitErr))
	assert.Equal(t, []domain.LedgerKey{full}, limitErr.Keys)
	assert.Equal(t, []civil.Date{date(2026, 10, 21)}, limitErr.Dates())

	untouched, _ := m.CountOn(ctx, date(2026, 10, 20), domain.ServiceChildCare)
	assert.Equal(t, 0, untouched)

	require.NoError(t, m.IncrementAll(ctx, keys[:1], 3))
	committed, _ := m.CountOn(ctx, date(2026, 10, 20), domain.ServiceChildCare)
	assert.Equal(t, 1, committed)
}

func TestMemory_IncrementAll_ConcurrentLastPlace(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	key := domain.LedgerKey{Date: date(2026, 10, 20), Service: domain.ServiceElderCare}

	for i := 0; i < domain.MaxCapacity-1; i++ {
		require.NoError(t, m.Increment(ctx, key.Date, key.Service))
	}

	const workers = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := m.IncrementAll(ctx, []domain.LedgerKey{key}, domain.MaxCapacity); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	count, _ := m.CountOn(ctx, key.Date, key.Service)
	assert.Equal(t, domain.MaxCapacity, count)
}

func TestMemory_SnapshotIsCopy(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Increment(ctx, date(2026, 10, 23), domain.ServiceChildCare))
	require.NoError(t, m.Increment(ctx, date(2026, 10, 20), domain.ServiceElderCare))

	snapshot, err := m.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snapshot, 2)
	assert.Equal(t, date(2026, 10, 20), snapshot[0].Date)
	assert.Equal(t, date(2026, 10, 23), snapshot[1].Date)

	snapshot[0].Counts[domain.ServiceElderCare] = 100

	count, _ := m.CountOn(ctx, date(2026, 10, 20), domain.ServiceElderCare)
	assert.Equal(t, 1, count)
}
