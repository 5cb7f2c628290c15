// ratelimit — fixed-window лимитер поверх Redis для абуз-чувствительных
// эндпоинтов (регистрация, запрос сброса пароля). Политика граничного слоя,
// в бизнес-логику не входит.
package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter — контракт лимитера для HTTP-мидлвара.
type Limiter interface {
	// Allow атомарно учитывает обращение по ключу и сообщает, пропускать ли его.
	Allow(ctx context.Context, key string) (bool, error)
	// Close закрывает клиент Redis.
	Close() error
}

type redisLimiter struct {
	rdb    *redis.Client
	prefix string
	limit  int
	window time.Duration
}

// New создаёт лимитер из URL Redis. Если prefix пустой — "auth:rl:".
func New(redisURL, prefix string, limit int, window time.Duration) (Limiter, error) {
	if prefix == "" {
		prefix = "auth:rl:"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &redisLimiter{rdb: rdb, prefix: prefix, limit: limit, window: window}, nil
}

func (l *redisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := l.prefix + key

	n, err := l.rdb.Incr(ctx, k).Result()
	if err != nil {
		return false, err
	}

	if n == 1 {
		if err := l.rdb.Expire(ctx, k, l.window).Err(); err != nil {
			return false, err
		}
	}

	return n <= int64(l.limit), nil
}

func (l *redisLimiter) Close() error { return l.rdb.Close() }
