package ledger

import (
	"context"

	"github.com/m04kA/SMC-DayCareBooking/pkg/txmanager"
	"github.com/redis/go-redis/v9"
)

// Переиспользуем интерфейс исполнителя запросов из txmanager
type DBExecutor = txmanager.DBExecutor

// TxManager выполняет функцию в сериализуемой транзакции
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// RedisClient подмножество команд go-redis, которое использует журнал
type RedisClient interface {
	redis.Scripter
	HGet(ctx context.Context, key, field string) *redis.StringCmd
	HIncrBy(ctx context.Context, key, field string, incr int64) *redis.IntCmd
	HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd
}
