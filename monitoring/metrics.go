// Package monitoring exposes the service's Prometheus metrics, scraped via
// the /metrics route.
package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	enhanceRequests *prometheus.CounterVec
	enhanceDuration prometheus.Histogram
}

// NewMetrics creates and registers the service metrics on the given
// registerer. Pass prometheus.DefaultRegisterer in production; tests use a
// fresh registry to avoid duplicate registration.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	m := &Metrics{
		enhanceRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "prompthub_enhance_requests_total",
				Help: "Enhance requests by outcome.",
			},
			[]string{"outcome"},
		),
		enhanceDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "prompthub_enhance_duration_seconds",
				Help:    "End-to-end duration of enhance requests.",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
	registerer.MustRegister(m.enhanceRequests, m.enhanceDuration)
	return m
}

// RecordEnhance records one completed enhance request. outcome is "success"
// or the failure condition name.
func (m *Metrics) RecordEnhance(outcome string, duration time.Duration) {
	m.enhanceRequests.WithLabelValues(outcome).Inc()
	m.enhanceDuration.Observe(duration.Seconds())
}
