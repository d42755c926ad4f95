package ratelimiter

import (
	"context"
	"intake-service/internal/app/contracts"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/exceptions"
	"intake-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultWindow        = time.Minute
	DefaultMaxRequests   = 5
	DefaultSweepInterval = 5 * time.Minute
)

// Decision is the outcome of one Check, including what the client is told
// through the X-RateLimit headers.
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetTime time.Time
}

// ResetSeconds is ResetTime as unix seconds, rounded up.
func (d Decision) ResetSeconds() int64 {
	ms := d.ResetTime.UnixMilli()
	return (ms + 999) / 1000
}

// RetryAfter is the whole number of seconds until the window resets, at least one.
func (d Decision) RetryAfter(now time.Time) int {
	wait := d.ResetTime.Sub(now)
	seconds := int((wait + time.Second - 1) / time.Second)
	if seconds < 1 {
		return 1
	}
	return seconds
}

// Limiter enforces a fixed window of limit requests per client.
type Limiter struct {
	store  contracts.RateLimitStore
	limit  int
	window time.Duration
	now    func() time.Time
	log    *zap.Logger
	stop   chan struct{}
}

func NewLimiter(store contracts.RateLimitStore, limit int, window time.Duration, logger *zap.Logger) *Limiter {
	if limit <= 0 {
		limit = DefaultMaxRequests
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &Limiter{
		store:  store,
		limit:  limit,
		window: window,
		now:    time.Now,
		log:    logger,
		stop:   make(chan struct{}),
	}
}

// WithClock replaces the time source, for tests.
func (l *Limiter) WithClock(now func() time.Time) *Limiter {
	l.now = now
	return l
}

func (l *Limiter) Limit() int {
	return l.limit
}

func (l *Limiter) Now() time.Time {
	return l.now()
}

// Check counts one request for clientID. When the store fails the request
// is allowed and the error is returned alongside the decision.
func (l *Limiter) Check(ctx context.Context, clientID string) (Decision, error) {
	now := l.now()
	entry, allowed, err := l.store.Hit(ctx, clientID, l.limit, l.window, now)
	if err != nil {
		l.log.Error("Limiter.Check store failed, allowing request",
			zap.String(constvars.LoggingClientKey, utils.HashClientIdentifier(clientID)),
			zap.Error(err),
		)
		return Decision{Allowed: true, Limit: l.limit, Remaining: l.limit, ResetTime: now.Add(l.window)}, exceptions.ErrRateLimiterStore(err)
	}

	remaining := l.limit - entry.Count
	if remaining < 0 {
		remaining = 0
	}
	return Decision{
		Allowed:   allowed,
		Limit:     l.limit,
		Remaining: remaining,
		ResetTime: entry.ResetTime,
	}, nil
}

// StartSweeper drops expired windows every interval. It returns a stop function.
func (l *Limiter) StartSweeper(ctx context.Context, interval time.Duration) (stop func()) {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-l.stop:
				return
			case <-ticker.C:
				l.Sweep(ctx)
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(l.stop) })
	}
}

// Sweep removes expired windows once and returns how many were removed.
func (l *Limiter) Sweep(ctx context.Context) int {
	removed, err := l.store.Sweep(ctx, l.now())
	if err != nil {
		l.log.Warn("Limiter.Sweep failed", zap.Error(err))
		return 0
	}
	if removed > 0 {
		l.log.Debug("Limiter.Sweep removed expired entries", zap.Int(constvars.LoggingSweptEntriesKey, removed))
	}
	return removed
}
