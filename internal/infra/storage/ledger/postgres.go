package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-DayCareBooking/internal/domain"
	"github.com/m04kA/SMC-DayCareBooking/pkg/psqlbuilder"
	"github.com/m04kA/SMC-DayCareBooking/pkg/txmanager"
)

const (
	tableName = "capacity_ledger"

	upsertIncrement = "ON CONFLICT (booking_date, service_type) DO UPDATE SET booked_count = capacity_ledger.booked_count + 1"
)

// Postgres журнал вместимости в таблице capacity_ledger
type Postgres struct {
	db        DBExecutor
	txManager TxManager
}

// NewPostgres создает новый экземпляр журнала поверх PostgreSQL
func NewPostgres(db DBExecutor, txManager TxManager) *Postgres {
	return &Postgres{db: db, txManager: txManager}
}

// CountOn возвращает число подтвержденных бронирований, 0 если строки нет
func (r *Postgres) CountOn(ctx context.Context, date civil.Date, service domain.ServiceType) (int, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("booked_count").
		From(tableName).
		Where(squirrel.Eq{
			"booking_date": date.String(),
			"service_type": string(service),
		}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountOn - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: CountOn - execute select: %v", ErrExecQuery, err)
	}

	return count, nil
}

// Increment увеличивает счетчик на 1 без проверки лимита
func (r *Postgres) Increment(ctx context.Context, date civil.Date, service domain.ServiceType) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("booking_date", "service_type", "booked_count").
		Values(date.String(), string(service), 1).
		Suffix(upsertIncrement).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Increment - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Increment - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// IncrementAll увеличивает все счетчики в одной сериализуемой транзакции
// Обновление строки выполняется только пока booked_count < limit,
// поэтому отсутствие RETURNING означает, что дата уже заполнена
func (r *Postgres) IncrementAll(ctx context.Context, keys []domain.LedgerKey, limit int) error {
	return r.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		executor := txmanager.GetExecutor(ctx, r.db)

		var full []domain.LedgerKey
		for _, key := range keys {
			query, args, err := psqlbuilder.Insert(tableName).
				Columns("booking_date", "service_type", "booked_count").
				Values(key.Date.String(), string(key.Service), 1).
				Suffix(upsertIncrement+" WHERE capacity_ledger.booked_count < ? RETURNING booked_count", limit).
				ToSql()

			if err != nil {
				return fmt.Errorf("%w: IncrementAll - build upsert query: %v", ErrBuildQuery, err)
			}

			var count int
			err = executor.QueryRowContext(ctx, query, args...).Scan(&count)
			if errors.Is(err, sql.ErrNoRows) {
				full = append(full, key)
				continue
			}
			if err != nil {
				return fmt.Errorf("%w: IncrementAll - execute upsert: %w", ErrExecQuery, err)
			}
		}

		// Ошибка откатывает транзакцию вместе с уже увеличенными счетчиками
		if len(full) > 0 {
			return &LimitReachedError{Keys: full, Limit: limit}
		}
		return nil
	})
}

// Snapshot возвращает все счетчики, отсортированные по дате
func (r *Postgres) Snapshot(ctx context.Context) (domain.LedgerSnapshot, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("booking_date", "service_type", "booked_count").
		From(tableName).
		OrderBy("booking_date", "service_type").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Snapshot - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Snapshot - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make(map[domain.LedgerKey]int)
	for rows.Next() {
		var (
			bookingDate time.Time
			service     string
			count       int
		)
		if err := rows.Scan(&bookingDate, &service, &count); err != nil {
			return nil, fmt.Errorf("%w: Snapshot - scan row: %v", ErrScanRow, err)
		}
		counts[domain.LedgerKey{Date: civil.DateOf(bookingDate), Service: domain.ServiceType(service)}] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Snapshot - iterate rows: %v", ErrScanRow, err)
	}

	return domain.NewLedgerSnapshot(counts), nil
}
