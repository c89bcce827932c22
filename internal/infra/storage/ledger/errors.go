package ledger

import (
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/m04kA/SMC-DayCareBooking/internal/domain"
)

var (
	// ErrLimitReached возвращается, когда хотя бы один счетчик уже достиг лимита
	ErrLimitReached = errors.New("ledger.repository: limit reached")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("ledger.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения запроса
	ErrExecQuery = errors.New("ledger.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке чтения результата запроса
	ErrScanRow = errors.New("ledger.repository: failed to scan row")

	// ErrInvalidValue возвращается, когда в хранилище лежит значение неожиданного формата
	ErrInvalidValue = errors.New("ledger.repository: invalid stored value")
)

// LimitReachedError перечисляет все ключи, на которых пакетное увеличение было отклонено
type LimitReachedError struct {
	Keys  []domain.LedgerKey
	Limit int
}

func (e *LimitReachedError) Error() string {
	keys := make([]string, len(e.Keys))
	for i, key := range e.Keys {
		keys[i] = fmt.Sprintf("%s/%s", key.Date, key.Service)
	}
	return fmt.Sprintf("%s (%d): %s", ErrLimitReached, e.Limit, strings.Join(keys, ", "))
}

func (e *LimitReachedError) Is(target error) bool {
	return target == ErrLimitReached
}

// Dates возвращает даты отклоненных ключей без повторов в исходном порядке
func (e *LimitReachedError) Dates() []civil.Date {
	seen := make(map[civil.Date]struct{}, len(e.Keys))
	dates := make([]civil.Date, 0, len(e.Keys))
	for _, key := range e.Keys {
		if _, ok := seen[key.Date]; ok {
			continue
		}
		seen[key.Date] = struct{}{}
		dates = append(dates, key.Date)
	}
	return dates
}
