package ledger

import (
	"context"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/m04kA/SMC-DayCareBooking/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedis(client, ""), mr
}

func TestRedis_CountOnAndIncrement(t *testing.T) {
	ctx := context.Background()
	repo, mr := newRedis(t)

	count, err := repo.CountOn(ctx, date(2026, 10, 20), domain.ServiceElderCare)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.False(t, mr.Exists(DefaultRedisKey))

	require.NoError(t, repo.Increment(ctx, date(2026, 10, 20), domain.ServiceElderCare))

	count, err = repo.CountOn(ctx, date(2026, 10, 20), domain.ServiceElderCare)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, "1", mr.HGet(DefaultRedisKey, "2026-10-20|elder_care"))
}

func TestRedis_CountOn_InvalidValue(t *testing.T) {
	repo, mr := newRedis(t)
	mr.HSet(DefaultRedisKey, "2026-10-20|elder_care", "many")

	_, err := repo.CountOn(context.Background(), date(2026, 10, 20), domain.ServiceElderCare)

	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestRedis_IncrementAll_AllOrNothing(t *testing.T) {
	ctx := context.Background()
	repo, mr := newRedis(t)
	mr.HSet(DefaultRedisKey, "2026-10-21|child_care", "25")

	keys := []domain.LedgerKey{
		{Date: date(2026, 10, 20), Service: domain.ServiceChildCare},
		{Date: date(2026, 10, 21), Service: domain.ServiceChildCare},
	}

	err := repo.IncrementAll(ctx, keys, domain.MaxCapacity)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLimitReached)
	limitErr, ok := err.(*LimitReachedError)
	require.True(t, ok)
	assert.Equal(t, keys[1:], limitErr.Keys)
	assert.Equal(t, "", mr.HGet(DefaultRedisKey, "2026-10-20|child_care"))

	require.NoError(t, repo.IncrementAll(ctx, keys[:1], domain.MaxCapacity))
	assert.Equal(t, "1", mr.HGet(DefaultRedisKey, "2026-10-20|child_care"))
}

func TestRedis_IncrementAll_ConcurrentLastPlace(t *testing.T) {
	ctx := context.Background()
	repo, mr := newRedis(t)
	mr.HSet(DefaultRedisKey, "2026-10-20|elder_care", "24")

	key := domain.LedgerKey{Date: date(2026, 10, 20), Service: domain.ServiceElderCare}

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := repo.IncrementAll(ctx, []domain.LedgerKey{key}, domain.MaxCapacity); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, "25", mr.HGet(DefaultRedisKey, "2026-10-20|elder_care"))
}

func TestRedis_Snapshot(t *testing.T) {
	ctx := context.Background()
	repo, mr := newRedis(t)
	mr.HSet(DefaultRedisKey, "2026-10-23|child_care", "4")
	mr.HSet(DefaultRedisKey, "2026-10-20|elder_care", "7")

	snapshot, err := repo.Snapshot(ctx)

	require.NoError(t, err)
	require.Len(t, snapshot, 2)
	assert.Equal(t, date(2026, 10, 20), snapshot[0].Date)
	assert.Equal(t, 7, snapshot[0].Counts[domain.ServiceElderCare])
	assert.Equal(t, 4, snapshot.CountOn(date(2026, 10, 23), domain.ServiceChildCare))
}

func TestRedis_Snapshot_MalformedField(t *testing.T) {
	repo, mr := newRedis(t)
	mr.HSet(DefaultRedisKey, "garbage", "1")

	_, err := repo.Snapshot(context.Background())

	assert.ErrorIs(t, err, ErrInvalidValue)
}
