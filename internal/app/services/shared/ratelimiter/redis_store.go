package ratelimiter

import (
	"context"
	"fmt"
	"intake-service/internal/app/contracts"
	"intake-service/internal/pkg/utils"
	"time"
)

// RedisStore shares counters between instances. Keys expire on their own,
// so Sweep has nothing to do.
type RedisStore struct {
	redis  contracts.RedisRepository
	prefix string
}

func NewRedisStore(redis contracts.RedisRepository, prefix string) *RedisStore {
	return &RedisStore{redis: redis, prefix: prefix}
}

// Hit counts denied requests too; they never extend the window, and the
// reported count is what decides.
func (s *RedisStore) Hit(ctx context.Context, key string, limit int, window time.Duration, now time.Time) (contracts.RateLimitEntry, bool, error) {
	redisKey := fmt.Sprintf("%s:%s", s.prefix, utils.HashClientIdentifier(key))
	count, ttl, err := s.redis.IncrementWithTTL(ctx, redisKey, window)
	if err != nil {
		return contracts.RateLimitEntry{}, false, err
	}
	if ttl <= 0 {
		ttl = window
	}

	allowed := count <= limit
	if !allowed {
		count = limit
	}
	return contracts.RateLimitEntry{Count: count, ResetTime: now.Add(ttl)}, allowed, nil
}

func (s *RedisStore) Sweep(ctx context.Context, now time.Time) (int, error) {
	return 0, nil
}
