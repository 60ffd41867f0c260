// Package observability exposes pipeline lifecycle events as Prometheus
// metrics via the engine's lifecycle hooks.
package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/nithin218/mindmate/pkg/domain"
)

// Metrics holds the pipeline collectors.
type Metrics struct {
	stageVisits   *prometheus.CounterVec
	stageDuration *prometheus.HistogramVec
	retries       prometheus.Counter
}

// New registers the pipeline collectors with the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		stageVisits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mindmate_stage_visits_total",
				Help: "Total number of stage invocations, including retries.",
			},
			[]string{"node"},
		),
		stageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mindmate_stage_duration_seconds",
				Help:    "Duration of stage executions.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"node"},
		),
		retries: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "mindmate_retries_total",
				Help: "Total number of ethical-rejection retries.",
			},
		),
	}
	reg.MustRegister(m.stageVisits, m.stageDuration, m.retries)
	return m
}

// Hooks returns lifecycle hooks that feed the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStageEnter: func(_ context.Context, e *domain.StageEvent) {
			m.stageVisits.WithLabelValues(e.Node).Inc()
			if e.Node == domain.NodeIncrementRetry {
				m.retries.Inc()
			}
		},
		OnStageLeave: func(_ context.Context, e *domain.StageEvent) {
			m.stageDuration.WithLabelValues(e.Node).Observe(e.Duration.Seconds())
		},
	}
}
