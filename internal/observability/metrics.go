package observability

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// OperationMetrics records service-level operation outcomes. Every module
// service records attempts, failures, and durations through this interface so
// dashboards stay uniform across modules.
type OperationMetrics interface {
	RecordOperationAttempt(ctx context.Context, operation, guildID string)
	RecordOperationFailure(ctx context.Context, operation, guildID string)
	RecordOperationDuration(ctx context.Context, operation, guildID string, duration time.Duration)
}

// PrometheusMetrics implements OperationMetrics on a prometheus registry.
type PrometheusMetrics struct {
	attempts  *prometheus.CounterVec
	failures  *prometheus.CounterVec
	durations *prometheus.HistogramVec
}

// NewPrometheusMetrics registers the operation collectors for one subsystem
// (e.g. "rank", "guild") on the given registerer.
func NewPrometheusMetrics(reg prometheus.Registerer, subsystem string) *PrometheusMetrics {
	m := &PrometheusMetrics{
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rankbot",
			Subsystem: subsystem,
			Name:      "operation_attempts_total",
			Help:      "Number of service operation attempts.",
		}, []string{"operation", "guild_id"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rankbot",
			Subsystem: subsystem,
			Name:      "operation_failures_total",
			Help:      "Number of service operation failures.",
		}, []string{"operation", "guild_id"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "rankbot",
			Subsystem: subsystem,
			Name:      "operation_duration_seconds",
			Help:      "Duration of service operations.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation", "guild_id"}),
	}
	reg.MustRegister(m.attempts, m.failures, m.durations)
	return m
}

func (m *PrometheusMetrics) RecordOperationAttempt(_ context.Context, operation, guildID string) {
	m.attempts.WithLabelValues(operation, guildID).Inc()
}

func (m *PrometheusMetrics) RecordOperationFailure(_ context.Context, operation, guildID string) {
	m.failures.WithLabelValues(operation, guildID).Inc()
}

func (m *PrometheusMetrics) RecordOperationDuration(_ context.Context, operation, guildID string, duration time.Duration) {
	m.durations.WithLabelValues(operation, guildID).Observe(duration.Seconds())
}

// NoOpMetrics satisfies OperationMetrics without recording anything.
type NoOpMetrics struct{}

func (NoOpMetrics) RecordOperationAttempt(context.Context, string, string) {}

func (NoOpMetrics) RecordOperationFailure(context.Context, string, string) {}

func (NoOpMetrics) RecordOperationDuration(context.Context, string, string, time.Duration) {}

var _ OperationMetrics = (*PrometheusMetrics)(nil)

var _ OperationMetrics = NoOpMetrics{}
