package gateway

import (
	"net/http"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics tracks request counters twice: as Prometheus series for scraping
// and as atomics for the /status snapshot. Both views update together.
type Metrics struct {
	registry *prometheus.Registry

	appendsTotal         prometheus.Counter
	searchesTotal        prometheus.Counter
	classificationsTotal prometheus.Counter
	errorsTotal          prometheus.Counter
	searchSeconds        prometheus.Histogram

	appends         atomic.Int64
	searches        atomic.Int64
	classifications atomic.Int64
	errors          atomic.Int64
}

// NewMetrics creates the gateway metric set on a private registry, so tests
// can run multiple gateways without duplicate-registration panics.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		appendsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mnemo_memory_appends_total",
			Help: "Number of memory entries appended through the API.",
		}),
		searchesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mnemo_memory_searches_total",
			Help: "Number of memory searches served.",
		}),
		classificationsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mnemo_classifications_total",
			Help: "Number of personality mode classifications served.",
		}),
		errorsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mnemo_gateway_errors_total",
			Help: "Number of API requests that failed.",
		}),
		searchSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "mnemo_memory_search_seconds",
			Help:    "Latency of memory searches.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.appendsTotal, m.searchesTotal, m.classificationsTotal, m.errorsTotal, m.searchSeconds)
	return m
}

// Handler returns the scrape endpoint for this metric set.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordAppend records a successful memory append.
func (m *Metrics) RecordAppend() {
	m.appendsTotal.Inc()
	m.appends.Add(1)
}

// RecordSearch records a served search and its latency in seconds.
func (m *Metrics) RecordSearch(seconds float64) {
	m.searchesTotal.Inc()
	m.searchSeconds.Observe(seconds)
	m.searches.Add(1)
}

// RecordClassification records a served classification.
func (m *Metrics) RecordClassification() {
	m.classificationsTotal.Inc()
	m.classifications.Add(1)
}

// RecordError records a failed API request.
func (m *Metrics) RecordError() {
	m.errorsTotal.Inc()
	m.errors.Add(1)
}

// Snapshot returns a consistent point-in-time view of the counters.
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Appends:         m.appends.Load(),
		Searches:        m.searches.Load(),
		Classifications: m.classifications.Load(),
		Errors:          m.errors.Load(),
	}
}

// MetricsSnapshot is a serializable point-in-time metrics view.
type MetricsSnapshot struct {
	Appends         int64 `json:"appends"`
	Searches        int64 `json:"searches"`
	Classifications int64 `json:"classifications"`
	Errors          int64 `json:"errors"`
}
