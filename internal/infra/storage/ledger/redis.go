package ledger

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/m04kA/SMC-DayCareBooking/internal/domain"
	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey хэш, в котором хранятся счетчики
const DefaultRedisKey = "daycare:ledger"

const fieldSeparator = "|"

// incrementAllScript проверяет все поля и только потом увеличивает их
// Возвращает список полей, достигших лимита; пустой список означает успех
var incrementAllScript = redis.NewScript(`
local limit = tonumber(ARGV[1])
local full = {}
for i = 2, #ARGV do
	local current = tonumber(redis.call('HGET', KEYS[1], ARGV[i]) or '0')
	if current >= limit then
		table.insert(full, ARGV[i])
	end
end
if #full > 0 then
	return full
end
for i = 2, #ARGV do
	redis.call('HINCRBY', KEYS[1], ARGV[i], 1)
end
return full
`)

// Redis журнал вместимости в одном хэше Redis
type Redis struct {
	client RedisClient
	key    string
}

// NewRedis создает журнал поверх Redis; пустой key заменяется на DefaultRedisKey
func NewRedis(client RedisClient, key string) *Redis {
	if key == "" {
		key = DefaultRedisKey
	}
	return &Redis{client: client, key: key}
}

// CountOn возвращает число подтвержденных бронирований, 0 если поля нет
func (r *Redis) CountOn(ctx context.Context, date civil.Date, service domain.ServiceType) (int, error) {
	value, err := r.client.HGet(ctx, r.key, field(domain.LedgerKey{Date: date, Service: service})).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: CountOn - hget: %v", ErrExecQuery, err)
	}

	count, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: CountOn - parse %q: %v", ErrInvalidValue, value, err)
	}
	return count, nil
}

// Increment увеличивает счетчик на 1 без проверки лимита
func (r *Redis) Increment(ctx context.Context, date civil.Date, service domain.ServiceType) error {
	if err := r.client.HIncrBy(ctx, r.key, field(domain.LedgerKey{Date: date, Service: service}), 1).Err(); err != nil {
		return fmt.Errorf("%w: Increment - hincrby: %v", ErrExecQuery, err)
	}
	return nil
}

// IncrementAll атомарно увеличивает все счетчики Lua-скриптом
func (r *Redis) IncrementAll(ctx context.Context, keys []domain.LedgerKey, limit int) error {
	if len(keys) == 0 {
		return nil
	}

	args := make([]interface{}, 0, len(keys)+1)
	args = append(args, limit)
	for _, key := range keys {
		args = append(args, field(key))
	}

	fullFields, err := incrementAllScript.Run(ctx, r.client, []string{r.key}, args...).StringSlice()
	if err != nil {
		return fmt.Errorf("%w: IncrementAll - run script: %v", ErrExecQuery, err)
	}
	if len(fullFields) == 0 {
		return nil
	}

	full := make([]domain.LedgerKey, 0, len(fullFields))
	for _, f := range fullFields {
		key, err := parseField(f)
		if err != nil {
			return fmt.Errorf("%w: IncrementAll - %v", ErrInvalidValue, err)
		}
		full = append(full, key)
	}
	return &LimitReachedError{Keys: full, Limit: limit}
}

// Snapshot возвращает все счетчики, отсортированные по дате
func (r *Redis) Snapshot(ctx context.Context) (domain.LedgerSnapshot, error) {
	values, err := r.client.HGetAll(ctx, r.key).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: Snapshot - hgetall: %v", ErrExecQuery, err)
	}

	counts := make(map[domain.LedgerKey]int, len(values))
	for f, value := range values {
		key, err := parseField(f)
		if err != nil {
			return nil, fmt.Errorf("%w: Snapshot - %v", ErrInvalidValue, err)
		}
		count, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("%w: Snapshot - parse %q: %v", ErrInvalidValue, value, err)
		}
		counts[key] = count
	}

	return domain.NewLedgerSnapshot(counts), nil
}

func field(key domain.LedgerKey) string {
	return key.Date.String() + fieldSeparator + string(key.Service)
}

func parseField(f string) (domain.LedgerKey, error) {
	datePart, service, ok := strings.Cut(f, fieldSeparator)
	if !ok {
		return domain.LedgerKey{}, fmt.Errorf("malformed field %q", f)
	}
	d, err := civil.ParseDate(datePart)
	if err != nil {
		return domain.LedgerKey{}, fmt.Errorf("malformed date in field %q: %v", f, err)
	}
	return domain.LedgerKey{Date: d, Service: domain.ServiceType(service)}, nil
}
