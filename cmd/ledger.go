package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-DayCareBooking/internal/config"
	"github.com/m04kA/SMC-DayCareBooking/internal/domain"
	"github.com/m04kA/SMC-DayCareBooking/internal/infra/storage/ledger"
	"github.com/m04kA/SMC-DayCareBooking/pkg/logger"
	"github.com/m04kA/SMC-DayCareBooking/pkg/txmanager"
)

// capacityLedger общий контракт Memory, Postgres и Redis журналов
type capacityLedger interface {
	CountOn(ctx context.Context, date civil.Date, service domain.ServiceType) (int, error)
	IncrementAll(ctx context.Context, keys []domain.LedgerKey, limit int) error
	Snapshot(ctx context.Context) (domain.LedgerSnapshot, error)
}

// openLedger выбирает реализацию журнала по ledger.driver
// Возвращаемая функция закрывает соединения драйвера
func openLedger(ctx context.Context, cfg *config.Config, log *logger.Logger) (capacityLedger, func(), error) {
	switch cfg.Ledger.Driver {
	case config.LedgerDriverPostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open database: %w", err)
		}

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("failed to ping database: %w", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		if cfg.Metrics.Enabled {
			if err := prometheus.Register(collectors.NewDBStatsCollector(db, cfg.Database.DBName)); err != nil {
				log.Warn("Failed to register database pool metrics: %v", err)
			}
		}

		l := ledger.NewPostgres(db, txmanager.NewTransactionManager(db))
		return l, func() { _ = db.Close() }, nil

	case config.LedgerDriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to ping redis: %w", err)
		}
		log.Info("Successfully connected to redis (addr=%s, key=%s)", cfg.Redis.Addr, cfg.Ledger.RedisKey)

		l := ledger.NewRedis(client, cfg.Ledger.RedisKey)
		return l, func() { _ = client.Close() }, nil

	default:
		log.Info("Using in-memory capacity ledger")
		return ledger.NewMemory(), func() {}, nil
	}
}
