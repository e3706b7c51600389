package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter counts hits per key in fixed windows.
// Key format: ratelimit:<scope>:<client>
type RateLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewRateLimiter allows limit hits per window and key.
func NewRateLimiter(client *redis.Client, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{client: client, limit: int64(limit), window: window}
}

// Allow records a hit for (scope, client) and reports whether it is within
// the limit. The window starts with the first hit. Only INCR, EXPIRE and TTL
// are used, so any Redis version works.
func (l *RateLimiter) Allow(ctx context.Context, scope, client string) (bool, error) {
	key := l.key(scope, client)

	hits, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit %s: %w", key, err)
	}
	if hits == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return false, fmt.Errorf("rate limit %s: expire: %w", key, err)
		}
		return hits <= l.limit, nil
	}
	if hits > l.limit {
		// A counter whose EXPIRE got lost would block the client forever.
		ttl, err := l.client.TTL(ctx, key).Result()
		if err != nil {
			return false, fmt.Errorf("rate limit %s: ttl: %w", key, err)
		}
		if ttl == -1 {
			if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
				return false, fmt.Errorf("rate limit %s: expire: %w", key, err)
			}
		}
	}
	return hits <= l.limit, nil
}

func (l *RateLimiter) key(scope, client string) string {
	return fmt.Sprintf("ratelimit:%s:%s", scope, client)
}
