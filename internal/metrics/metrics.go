package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Operation outcome labels.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Metrics bundles the service collectors behind a dedicated registry so
// multiple instances can coexist in tests.
type Metrics struct {
	registry *prometheus.Registry

	operationsTotal *prometheus.CounterVec
	requestLatency  *prometheus.HistogramVec
	storageUp       prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		operationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_operations_total",
				Help: "Total ledger operations by type and outcome",
			},
			[]string{"type", "outcome"},
		),
		requestLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_requests_latency_seconds",
				Help:    "Latency of HTTP requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		storageUp: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "storage_up",
				Help: "Whether the storage backend answers health checks",
			},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		m.operationsTotal,
		m.requestLatency,
		m.storageUp,
	)
	return m
}

// RecordOperation counts a finished ledger operation.
func (m *Metrics) RecordOperation(opType, outcome string) {
	m.operationsTotal.WithLabelValues(opType, outcome).Inc()
}

// ObserveRequest records latency of a handled HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.requestLatency.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// SetStorageUp reflects the last storage health probe.
func (m *Metrics) SetStorageUp(up bool) {
	if up {
		m.storageUp.Set(1)
		return
	}
	m.storageUp.Set(0)
}

// Handler exposes the registry for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
