package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// RateLimitStore implements ports.RateLimitStore with fixed-window counters:
// INCR on a key scoped by window index, EXPIRE on the first increment.
type RateLimitStore struct {
	client *goredis.Client
	prefix string
}

// NewRateLimitStore creates a new Redis-backed rate limit store.
func NewRateLimitStore(client *goredis.Client) *RateLimitStore {
	return &RateLimitStore{
		client: client,
		prefix: "wallet:rl:",
	}
}

// Incr increments the counter for the current window of key and returns the
// post-increment count plus the key's remaining TTL. The TTL is zero when the
// store cannot report one; callers fall back to the full window length.
func (s *RateLimitStore) Incr(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	windowIndex := time.Now().Unix() / int64(window.Seconds())
	redisKey := fmt.Sprintf("%s%s:%d", s.prefix, key, windowIndex)

	ctx, cancel := withOpTimeout(ctx)
	defer cancel()

	count, err := s.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return 0, 0, fmt.Errorf("redis rate limit incr: %w", err)
	}

	// First increment in a window sets the key's expiry to the window length.
	if count == 1 {
		s.client.Expire(ctx, redisKey, window)
	}

	ttl, err := s.client.PTTL(ctx, redisKey).Result()
	if err != nil || ttl < 0 {
		ttl = 0
	}

	return count, ttl, nil
}
