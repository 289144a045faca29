// Package metrics owns the Prometheus instruments for the service. A single
// Metrics value is constructed in main and passed down; services treat a nil
// *Metrics as "metrics disabled" so tests can skip registration.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	SessionsCreated     prometheus.Counter
	RFPsGenerated       prometheus.Counter
	GenerationFallbacks prometheus.Counter
	GenerationDuration  prometheus.Histogram
	AuditEventsDropped  prometheus.Counter
	RequestDuration     *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics on the default registry.
// Call at most once per process.
func New() *Metrics {
	return &Metrics{
		SessionsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "rfpforge_sessions_created_total",
			Help: "Total number of user sessions created",
		}),
		RFPsGenerated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "rfpforge_rfps_generated_total",
			Help: "Total number of RFP documents created",
		}),
		GenerationFallbacks: promauto.NewCounter(prometheus.CounterOpts{
			Name: "rfpforge_generation_fallbacks_total",
			Help: "RFP documents rendered from the deterministic template because remote generation was unavailable or failed",
		}),
		GenerationDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "rfpforge_generation_duration_seconds",
			Help:    "Latency of remote generation calls",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 30, 45, 60},
		}),
		AuditEventsDropped: promauto.NewCounter(prometheus.CounterOpts{
			Name: "rfpforge_audit_events_dropped_total",
			Help: "Audit events dropped because the sink buffer was full",
		}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rfpforge_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "status"}),
	}
}

// ObserveRequest records one HTTP request. Safe on a nil receiver.
func (m *Metrics) ObserveRequest(route, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RequestDuration.WithLabelValues(route, status).Observe(elapsed.Seconds())
}

// ObserveGeneration records one remote generation attempt. Safe on a nil
// receiver.
func (m *Metrics) ObserveGeneration(elapsed time.Duration) {
	if m == nil {
		return
	}
	m.GenerationDuration.Observe(elapsed.Seconds())
}
