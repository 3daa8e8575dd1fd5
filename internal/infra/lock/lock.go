package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/MedConnect-AppointmentService/internal/domain"
	"github.com/m04kA/MedConnect-AppointmentService/pkg/types"
)

var (
	// ErrLockNotAcquired возвращается, когда слот уже бронируется другим запросом
	ErrLockNotAcquired = errors.New("lock: slot lock not acquired")

	// ErrLockBackend возвращается при ошибке обращения к Redis
	ErrLockBackend = errors.New("lock: backend error")
)

// SlotKey слот врача на дату
type SlotKey struct {
	DoctorID int64
	Date     time.Time
	Start    types.TimeOfDay
}

func (k SlotKey) String() string {
	return fmt.Sprintf("lock:slot:%d:%s:%s", k.DoctorID, k.Date.Format(domain.DateFormat), k.Start)
}

// RedisLocker блокировка слота через SET NX PX с освобождением по токену
type RedisLocker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisLocker создает блокировку с TTL ключа
func NewRedisLocker(client *redis.Client, ttl time.Duration) *RedisLocker {
	return &RedisLocker{client: client, ttl: ttl}
}

// WithSlotLock выполняет fn, удерживая блокировку слота.
// Контекст fn ограничен TTL блокировки.
func (l *RedisLocker) WithSlotLock(ctx context.Context, key SlotKey, fn func(ctx context.Context) error) error {
	redisKey := key.String()
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, redisKey, token, l.ttl).Result()
	if err != nil {
		return fmt.Errorf("%w: acquire %s: %v", ErrLockBackend, redisKey, err)
	}
	if !ok {
		return ErrLockNotAcquired
	}

	defer func() {
		// Освобождаем даже при отмене исходного контекста
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second)
		defer cancel()
		_ = l.release(releaseCtx, redisKey, token)
	}()

	lockCtx, cancel := context.WithTimeout(ctx, l.ttl)
	defer cancel()

	return fn(lockCtx)
}

var unlockScript = redis.NewScript(`
local val = redis.call("GET", KEYS[1])
if val == ARGV[1] then
  return redis.call("DEL", KEYS[1])
else
  return 0
end
`)

func (l *RedisLocker) release(ctx context.Context, key, token string) error {
	_, err := unlockScript.Run(ctx, l.client, []string{key}, token).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("%w: release %s: %v", ErrLockBackend, key, err)
	}
	return nil
}

// NopLocker используется, когда Redis выключен; конфликт ловит уникальный индекс БД
type NopLocker struct{}

func (NopLocker) WithSlotLock(ctx context.Context, _ SlotKey, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
