package middlewares

import (
	"intake-service/internal/app/config"
	"intake-service/internal/app/contracts"
	"intake-service/internal/app/services/shared/ratelimiter"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	RateLimiter    *ratelimiter.Limiter
	Metrics        contracts.SubmissionMetrics
}
