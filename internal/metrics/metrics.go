package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ip_search"

// Outcome labels
const (
	OutcomeOK       = "ok"
	OutcomeFallback = "fallback"
	OutcomeError    = "error"
	OutcomeNotFound = "not_found"
	OutcomeMock     = "mock"
)

// Metrics holds all the application metrics.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	// HTTP request metrics
	HTTPRequestTotal    *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Search pipeline metrics
	SearchTotal *prometheus.CounterVec
	LLMTotal    *prometheus.CounterVec

	// Registry and metadata metrics
	RegistryRequestTotal *prometheus.CounterVec
	MetadataFetchTotal   *prometheus.CounterVec

	// Batch lookup metrics
	BatchSize prometheus.Histogram

	gatherer prometheus.Gatherer
}

// New creates the metrics and registers them on reg.
// gatherer is used to serve /metrics and may be nil when not served.
func New(reg prometheus.Registerer, gatherer prometheus.Gatherer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),

		SearchTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Total number of searches by branch and outcome",
		}, []string{"branch", "outcome"}),

		LLMTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "llm_calls_total",
			Help:      "Total number of language model calls by purpose and outcome",
		}, []string{"purpose", "outcome"}),

		RegistryRequestTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registry_requests_total",
			Help:      "Total number of registry API requests by operation and outcome",
		}, []string{"operation", "outcome"}),

		MetadataFetchTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "metadata_fetches_total",
			Help:      "Total number of metadata document fetches by outcome",
		}, []string{"outcome"}),

		BatchSize: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_lookup_size",
			Help:      "Number of identifiers per batch lookup",
			Buckets:   []float64{1, 2, 5, 10, 20, 50},
		}),

		gatherer: gatherer,
	}
}

// ObserveHTTP records one handled HTTP request
func (m *Metrics) ObserveHTTP(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveSearch records one search by branch (identifier, search, batch) and outcome
func (m *Metrics) ObserveSearch(branch, outcome string) {
	if m == nil {
		return
	}
	m.SearchTotal.WithLabelValues(branch, outcome).Inc()
}

// ObserveLLM records one language model call by purpose and outcome
func (m *Metrics) ObserveLLM(purpose, outcome string) {
	if m == nil {
		return
	}
	m.LLMTotal.WithLabelValues(purpose, outcome).Inc()
}

// ObserveRegistry records one registry API request
func (m *Metrics) ObserveRegistry(operation, outcome string) {
	if m == nil {
		return
	}
	m.RegistryRequestTotal.WithLabelValues(operation, outcome).Inc()
}

// ObserveMetadataFetch records one metadata document fetch
func (m *Metrics) ObserveMetadataFetch(outcome string) {
	if m == nil {
		return
	}
	m.MetadataFetchTotal.WithLabelValues(outcome).Inc()
}

// ObserveBatch records the size of one batch lookup
func (m *Metrics) ObserveBatch(size int) {
	if m == nil {
		return
	}
	m.BatchSize.Observe(float64(size))
}

// Handler returns the Prometheus metrics HTTP handler
func (m *Metrics) Handler() http.Handler {
	if m == nil || m.gatherer == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
