// lockout — счётчик последовательных неудачных попыток аутентификации
// и временная блокировка личности поверх Redis.
//
// Схема ключей:
//   - <prefix>fail:<user_id> — счётчик неудач; TTL ставится один раз при
//     создании (окно катится от первой неудачи, не продлевается);
//   - <prefix>lock:<user_id> — флаг блокировки со своим TTL.
//
// Корректность при конкурентных вызовах обеспечивается атомарностью INCR
// на стороне Redis, in-process блокировок нет.
package lockout

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Counter — контракт счётчика блокировок для сервисного слоя.
type Counter interface {
	// RecordFailure атомарно фиксирует неудачную попытку.
	// Возвращает true, если личность заблокирована этой попыткой.
	RecordFailure(ctx context.Context, userID uuid.UUID) (bool, error)
	// RecordSuccess безусловно сбрасывает счётчик и блокировку.
	RecordSuccess(ctx context.Context, userID uuid.UUID) error
	// IsLocked сообщает о блокировке и оставшемся времени её действия.
	IsLocked(ctx context.Context, userID uuid.UUID) (bool, time.Duration, error)
	// Close закрывает клиент Redis.
	Close() error
}

type redisCounter struct {
	rdb       *redis.Client
	prefix    string
	threshold int
	window    time.Duration
}

// New создаёт счётчик из URL Redis (например, redis://:pass@host:6379/0).
// Если prefix пустой — используется "auth:lo:".
func New(redisURL, prefix string, threshold int, window time.Duration) (Counter, error) {
	if prefix == "" {
		prefix = "auth:lo:"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &redisCounter{rdb: rdb, prefix: prefix, threshold: threshold, window: window}, nil
}

func (c *redisCounter) failKey(id uuid.UUID) string { return c.prefix + "fail:" + id.String() }
func (c *redisCounter) lockKey(id uuid.UUID) string { return c.prefix + "lock:" + id.String() }

func (c *redisCounter) RecordFailure(ctx context.Context, userID uuid.UUID) (bool, error) {
	n, err := c.rdb.Incr(ctx, c.failKey(userID)).Result()
	if err != nil {
		return false, err
	}

	// TTL только при создании счётчика: окно отсчитывается от первой неудачи.
	if n == 1 {
		if err := c.rdb.Expire(ctx, c.failKey(userID), c.window).Err(); err != nil {
			return false, err
		}
	}

	if n < int64(c.threshold) {
		return false, nil
	}

	// Порог достигнут: ставим флаг блокировки со своим окном и гасим счётчик.
	pipe := c.rdb.TxPipeline()
	pipe.Set(ctx, c.lockKey(userID), "1", c.window)
	pipe.Del(ctx, c.failKey(userID))
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}

	return true, nil
}

func (c *redisCounter) RecordSuccess(ctx context.Context, userID uuid.UUID) error {
	return c.rdb.Del(ctx, c.failKey(userID), c.lockKey(userID)).Err()
}

func (c *redisCounter) IsLocked(ctx context.Context, userID uuid.UUID) (bool, time.Duration, error) {
	ttl, err := c.rdb.TTL(ctx, c.lockKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, 0, nil
		}

		return false, 0, err
	}

	// -2 — ключа нет, -1 — ключ без TTL (не наш случай, трактуем как нет).
	if ttl <= 0 {
		return false, 0, nil
	}

	return true, ttl, nil
}

func (c *redisCounter) Close() error { return c.rdb.Close() }
