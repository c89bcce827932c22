package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newTestStore(ttl time.Duration) (*Store, *clock) {
	c := &clock{t: time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)}
	s := NewStore(ttl)
	s.now = c.now
	return s, c
}

func TestStore_CreateAndGet(t *testing.T) {
	s, _ := newTestStore(time.Hour)

	created := s.Create()
	require.NotEmpty(t, created.ID)

	got, err := s.Get(created.ID)
	require.NoError(t, err)
	assert.Same(t, created, got)
	assert.Equal(t, 1, s.Len())

	_, err = s.Get("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStore_GetTouches(t *testing.T) {
	s, c := newTestStore(time.Hour)
	created := s.Create()

	c.t = c.t.Add(50 * time.Minute)
	_, err := s.Get(created.ID)
	require.NoError(t, err)

	c.t = c.t.Add(50 * time.Minute)
	_, err = s.Get(created.ID)
	assert.NoError(t, err)
}

func TestStore_ExpiredSessionNotReturned(t *testing.T) {
	s, c := newTestStore(time.Hour)
	created := s.Create()

	c.t = c.t.Add(2 * time.Hour)
	_, err := s.Get(created.ID)

	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Equal(t, 0, s.Len())
}

func TestStore_EvictIdle(t *testing.T) {
	s, c := newTestStore(time.Hour)
	old := s.Create()

	c.t = c.t.Add(45 * time.Minute)
	fresh := s.Create()

	evicted := s.EvictIdle(c.t.Add(30 * time.Minute))

	assert.Equal(t, 1, evicted)
	assert.Equal(t, 1, s.Len())

	_, err := s.Get(old.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = s.Get(fresh.ID)
	assert.NoError(t, err)
}

func TestStore_NoTTLKeepsSessions(t *testing.T) {
	s, c := newTestStore(0)
	created := s.Create()

	assert.Equal(t, 0, s.EvictIdle(c.t.Add(24*time.Hour)))
	c.t = c.t.Add(24 * time.Hour)
	_, err := s.Get(created.ID)
	assert.NoError(t, err)
}
