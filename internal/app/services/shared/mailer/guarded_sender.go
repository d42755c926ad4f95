package mailer

import (
	"context"
	"errors"
	"intake-service/internal/app/contracts"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/exceptions"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type GuardConfig struct {
	RatePerSecond int
	MaxFailures   int
	OpenTimeout   time.Duration
}

// guardedSender throttles a sender and stops calling it after repeated
// failures until the breaker half-opens again.
type guardedSender struct {
	next    contracts.MessageSender
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker
	log     *zap.Logger
}

func NewGuardedSender(next contracts.MessageSender, cfg GuardConfig, logger *zap.Logger) contracts.MessageSender {
	if cfg.RatePerSecond <= 0 {
		cfg.RatePerSecond = 5
	}
	if cfg.MaxFailures <= 0 {
		cfg.MaxFailures = 5
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = 30 * time.Second
	}

	maxFailures := uint32(cfg.MaxFailures)
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        next.Name(),
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		IsSuccessful: func(err error) bool {
			// a caller giving up is not the provider failing
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("guardedSender breaker state changed",
				zap.String(constvars.LoggingTransportKey, name),
				zap.String("from", from.String()),
				zap.String(constvars.LoggingBreakerStateKey, to.String()),
			)
		},
	})

	return &guardedSender{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.RatePerSecond),
		breaker: breaker,
		log:     logger,
	}
}

func (s *guardedSender) Name() string {
	return s.next.Name()
}

func (s *guardedSender) Send(ctx context.Context, notification *requests.Notification) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return exceptions.ErrDispatchNotification(err, s.next.Name())
	}

	_, err := s.breaker.Execute(func() (any, error) {
		return nil, s.next.Send(ctx, notification)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return exceptions.ErrCircuitOpen(err, s.next.Name())
	}
	return err
}
