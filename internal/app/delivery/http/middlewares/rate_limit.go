package middlewares

import (
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/exceptions"
	"intake-service/internal/pkg/utils"
	"net/http"
	"path"
	"strconv"

	"go.uber.org/zap"
)

// SubmissionRateLimit counts the request against the client's window before
// the body is read and refuses it with 429 once the window is spent.
func (m *Middlewares) SubmissionRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := utils.ClientIdentifier(r)
		decision, err := m.RateLimiter.Check(r.Context(), clientID)
		if err != nil {
			m.Log.Warn("SubmissionRateLimit limiter unavailable, request allowed",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.Error(err),
			)
		}

		header := w.Header()
		header.Set(constvars.HeaderXRateLimitLimit, strconv.Itoa(decision.Limit))
		header.Set(constvars.HeaderXRateLimitRemaining, strconv.Itoa(decision.Remaining))
		header.Set(constvars.HeaderXRateLimitReset, strconv.FormatInt(decision.ResetSeconds(), 10))

		if decision.Allowed {
			next.ServeHTTP(w, r)
			return
		}

		hashedClient := utils.HashClientIdentifier(clientID)
		flowType := path.Base(r.URL.Path)
		if m.Metrics != nil {
			m.Metrics.ObserveRateLimited(flowType)
		}
		utils.LogSecurityEvent(m.Log, "rate_limited", utils.GetRequestID(r.Context()), "low",
			zap.String(constvars.LoggingClientKey, hashedClient),
			zap.String(constvars.LoggingFlowTypeKey, flowType),
			zap.Int64(constvars.LoggingResetTimeKey, decision.ResetSeconds()),
		)

		header.Set(constvars.HeaderRetryAfter, strconv.Itoa(decision.RetryAfter(m.RateLimiter.Now())))
		utils.BuildErrorResponse(m.Log, w, exceptions.ErrRateLimited(nil, hashedClient, decision.Limit))
	})
}
