package ledger

import (
	"context"
	"sync"

	"cloud.google.com/go/civil"
	"github.com/m04kA/SMC-DayCareBooking/internal/domain"
)

// Memory хранит счетчики бронирований в памяти процесса
// Данные теряются при перезапуске
type Memory struct {
	mu     sync.RWMutex
	counts map[domain.LedgerKey]int
}

// NewMemory создает пустой журнал в памяти
func NewMemory() *Memory {
	return &Memory{counts: make(map[domain.LedgerKey]int)}
}

// CountOn возвращает число подтвержденных бронирований, 0 для незнакомой пары
// Чтение никогда не создает запись
func (m *Memory) CountOn(_ context.Context, date civil.Date, service domain.ServiceType) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.counts[domain.LedgerKey{Date: date, Service: service}], nil
}

// Increment увеличивает счетчик на 1 без проверки лимита
func (m *Memory) Increment(_ context.Context, date civil.Date, service domain.ServiceType) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.counts[domain.LedgerKey{Date: date, Service: service}]++
	return nil
}

// IncrementAll атомарно увеличивает все счетчики на 1
// Если хотя бы один счетчик уже >= limit, ничего не меняется
func (m *Memory) IncrementAll(_ context.Context, keys []domain.LedgerKey, limit int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var full []domain.LedgerKey
	for _, key := range keys {
		if m.counts[key] >= limit {
			full = append(full, key)
		}
	}
	if len(full) > 0 {
		return &LimitReachedError{Keys: full, Limit: limit}
	}

	for _, key := range keys {
		m.counts[key]++
	}
	return nil
}

// Snapshot возвращает копию журнала, отсортированную по дате
func (m *Memory) Snapshot(_ context.Context) (domain.LedgerSnapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return domain.NewLedgerSnapshot(m.counts), nil
}
