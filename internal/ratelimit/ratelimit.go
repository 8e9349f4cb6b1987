// Package ratelimit throttles contact form submissions per client.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "contact:rl:" // contact:rl:{client}

// Limiter decides whether another attempt is allowed for key.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// Noop allows everything. It is used when Redis is not configured.
type Noop struct{}

func (Noop) Allow(context.Context, string) (bool, error) { return true, nil }

// RedisLimiter is a fixed-window counter: the first hit in a window sets the
// key TTL, later hits increment until the limit is exceeded. A counter found
// without a TTL gets one on the next hit.
type RedisLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

func NewRedisLimiter(client *redis.Client, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		limit:  int64(limit),
		window: window,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if l.limit <= 0 {
		return true, nil
	}

	k := keyPrefix + key
	var (
		incr *redis.IntCmd
		ttl  *redis.DurationCmd
	)
	_, err := l.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		incr = p.Incr(ctx, k)
		ttl = p.TTL(ctx, k)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to increment %s: %w", k, err)
	}

	// a counter without an expiry would never reset, so any hit that finds
	// one arms the window again
	if ttl.Val() < 0 {
		if err := l.client.Expire(ctx, k, l.window).Err(); err != nil {
			return false, fmt.Errorf("failed to set window on %s: %w", k, err)
		}
	}
	return incr.Val() <= l.limit, nil
}

// Remaining reports how many attempts are left in the current window.
func (l *RedisLimiter) Remaining(ctx context.Context, key string) (int64, error) {
	n, err := l.client.Get(ctx, keyPrefix+key).Int64()
	if err == redis.Nil {
		return l.limit, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", keyPrefix+key, err)
	}
	if n >= l.limit {
		return 0, nil
	}
	return l.limit - n, nil
}
