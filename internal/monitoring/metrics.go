// Package monitoring collects Prometheus metrics for store operations and
// the HTTP surface.
package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus collectors. Each Metrics instance owns its
// registry so repeated construction (tests, embedded use) never collides.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Store operation metrics
	OpsTotal   *prometheus.CounterVec
	OpDuration *prometheus.HistogramVec
}

// NewMetrics creates a new metrics collector.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	m := &Metrics{
		registry: registry,

		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "savestore_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "savestore_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"method", "path"},
		),
		OpsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "savestore_operations_total",
				Help: "Total number of store operations",
			},
			[]string{"op", "status"},
		),
		OpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "savestore_operation_duration_seconds",
				Help:    "Store operation duration in seconds",
				Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
			},
			[]string{"op"},
		),
	}

	registry.MustRegister(m.RequestsTotal, m.RequestDuration, m.OpsTotal, m.OpDuration)
	return m
}

// RecordHTTPRequest records metrics for one HTTP request.
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordOp records one store operation outcome.
func (m *Metrics) RecordOp(op, status string, duration time.Duration) {
	m.OpsTotal.WithLabelValues(op, status).Inc()
	m.OpDuration.WithLabelValues(op).Observe(duration.Seconds())
}

// Handler exposes the collected metrics in Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Timer measures one store operation.
type Timer struct {
	start   time.Time
	metrics *Metrics
	op      string
}

// NewTimer starts timing an operation.
func NewTimer(metrics *Metrics, op string) *Timer {
	return &Timer{start: time.Now(), metrics: metrics, op: op}
}

// Stop records the operation with its final status.
func (t *Timer) Stop(status string) {
	t.metrics.RecordOp(t.op, status, time.Since(t.start))
}
