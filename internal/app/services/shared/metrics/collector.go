package metrics

import (
	"intake-service/internal/pkg/schema"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "intake"

const (
	OutcomeSuccess  = "success"
	OutcomeInvalid  = "invalid"
	OutcomeFailed   = "failed"
	OutcomeArchived = "archive_failed"
)

// Collector holds the intake metrics on its own registry.
type Collector struct {
	registry *prometheus.Registry

	Submissions      *prometheus.CounterVec
	RateLimited      *prometheus.CounterVec
	DispatchDuration *prometheus.HistogramVec
}

func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	submissions := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Intake submissions by flow and outcome",
		},
		[]string{"flow", "outcome"},
	)
	rateLimited := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_total",
			Help:      "Submissions refused by the per-client rate limit",
		},
		[]string{"flow"},
	)
	dispatchDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "dispatch_duration_seconds",
			Help:      "Time spent handing a notification to its transport",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"transport"},
	)

	registry.MustRegister(submissions, rateLimited, dispatchDuration)

	return &Collector{
		registry:         registry,
		Submissions:      submissions,
		RateLimited:      rateLimited,
		DispatchDuration: dispatchDuration,
	}
}

func (c *Collector) ObserveSubmission(flowType schema.FlowType, outcome string) {
	c.Submissions.WithLabelValues(flowType.String(), outcome).Inc()
}

func (c *Collector) ObserveRateLimited(flowType string) {
	c.RateLimited.WithLabelValues(flowType).Inc()
}

func (c *Collector) ObserveDispatch(transport string, seconds float64) {
	c.DispatchDuration.WithLabelValues(transport).Observe(seconds)
}

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
