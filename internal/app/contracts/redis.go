package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Delete(ctx context.Context, key string) error
	// IncrementWithTTL increments key and sets its expiry when the key is new.
	// It returns the count after the increment and the remaining TTL.
	IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, time.Duration, error)
	TTL(ctx context.Context, key string) (time.Duration, error)
}
