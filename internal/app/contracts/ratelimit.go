package contracts

import (
	"context"
	"time"
)

// RateLimitEntry is the counter of one client inside its window.
type RateLimitEntry struct {
	Count     int
	ResetTime time.Time
}

// RateLimitStore keeps fixed-window counters. Hit must be atomic per key:
// it starts a fresh window when none is live, otherwise it increments the
// count unless limit is already reached.
type RateLimitStore interface {
	Hit(ctx context.Context, key string, limit int, window time.Duration, now time.Time) (entry RateLimitEntry, allowed bool, err error)
	// Sweep removes windows that ended before now and returns how many.
	Sweep(ctx context.Context, now time.Time) (int, error)
}
