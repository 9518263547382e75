// Package metrics owns the Prometheus collectors exported on /metrics.
package metrics

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "locator"

// Metrics groups the HTTP and domain collectors. A nil *Metrics records nothing.
type Metrics struct {
	gatherer prometheus.Gatherer

	httpRequestsTotal     *prometheus.CounterVec
	httpRequestDuration   *prometheus.HistogramVec
	httpActiveConnections prometheus.Gauge

	geocodeLookups  *prometheus.CounterVec
	searchResults   prometheus.Histogram
	importRows      *prometheus.CounterVec
	rateLimitDenied prometheus.Counter

	dbOpenConns   prometheus.Gauge
	dbInUseConns  prometheus.Gauge
	dbWaitSeconds prometheus.Counter
}

// New registers the collectors on the default Prometheus registry.
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
}

// NewWithRegistry registers the collectors on reg and serves them from gatherer.
func NewWithRegistry(reg prometheus.Registerer, gatherer prometheus.Gatherer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		gatherer: gatherer,

		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency in seconds",
				Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		httpActiveConnections: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_active_requests",
				Help:      "Number of in-flight HTTP requests",
			},
		),
		geocodeLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "geocode_lookups_total",
				Help:      "Geocode lookups by outcome (hit, miss, no_match, error)",
			},
			[]string{"outcome"},
		),
		searchResults: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "search_results",
				Help:      "Number of stores returned per search",
				Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250},
			},
		),
		importRows: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "import_rows_total",
				Help:      "Imported CSV rows by status",
			},
			[]string{"status"},
		),
		rateLimitDenied: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rate_limit_denied_total",
				Help:      "Requests rejected by the per-client rate limit",
			},
		),
		dbOpenConns: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "db_open_connections",
				Help:      "Open connections in the Postgres pool",
			},
		),
		dbInUseConns: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "db_in_use_connections",
				Help:      "Postgres connections currently in use",
			},
		),
		dbWaitSeconds: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "db_wait_seconds_total",
				Help:      "Time spent waiting for a Postgres connection",
			},
		),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func (m *Metrics) RequestStarted() {
	if m == nil {
		return
	}
	m.httpActiveConnections.Inc()
}

func (m *Metrics) RequestFinished(method, path, status string, seconds float64) {
	if m == nil {
		return
	}
	m.httpActiveConnections.Dec()
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(seconds)
}

func (m *Metrics) GeocodeLookup(outcome string) {
	if m == nil {
		return
	}
	m.geocodeLookups.WithLabelValues(outcome).Inc()
}

func (m *Metrics) SearchCompleted(results int) {
	if m == nil {
		return
	}
	m.searchResults.Observe(float64(results))
}

func (m *Metrics) ImportRow(status string) {
	if m == nil {
		return
	}
	m.importRows.WithLabelValues(status).Inc()
}

func (m *Metrics) RateLimitDenied() {
	if m == nil {
		return
	}
	m.rateLimitDenied.Inc()
}

// DBPoolSampled records a pool snapshot; waited is the wait time since the previous sample.
func (m *Metrics) DBPoolSampled(stats sql.DBStats, waited time.Duration) {
	if m == nil {
		return
	}
	m.dbOpenConns.Set(float64(stats.OpenConnections))
	m.dbInUseConns.Set(float64(stats.InUse))
	if waited > 0 {
		m.dbWaitSeconds.Add(waited.Seconds())
	}
}
