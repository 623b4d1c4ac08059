package infrastructure

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors of the dashboard process.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPActiveRequests  prometheus.Gauge

	FilterDispatches  *prometheus.CounterVec
	AggregateDuration *prometheus.HistogramVec
	SnapshotRecords   *prometheus.GaugeVec
}

// NewMetrics registers the collectors on a private registry together with
// the Go runtime and process collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		HTTPActiveRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "http_active_requests",
			Help: "Number of active HTTP requests",
		}),
		FilterDispatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "filter_dispatches_total",
			Help: "Filter actions dispatched, by action type",
		}, []string{"action"}),
		AggregateDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "aggregate_duration_seconds",
			Help:    "Time spent filtering and aggregating one view",
			Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5},
		}, []string{"dataset", "view"}),
		SnapshotRecords: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "snapshot_records",
			Help: "Records loaded from the snapshot, by collection",
		}, []string{"collection"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.HTTPActiveRequests,
		m.FilterDispatches,
		m.AggregateDuration,
		m.SnapshotRecords,
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
