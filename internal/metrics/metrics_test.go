package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func newTestMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	return New(reg, reg)
}

func TestMetrics_Observe(t *testing.T) {
	m := newTestMetrics()

	m.ObserveSearch("identifier", OutcomeOK)
	m.ObserveSearch("identifier", OutcomeOK)
	m.ObserveSearch("search", OutcomeError)
	m.ObserveLLM("parse", OutcomeFallback)
	m.ObserveRegistry("get_asset", OutcomeNotFound)
	m.ObserveMetadataFetch(OutcomeError)
	m.ObserveHTTP(http.MethodPost, "/api/search", http.StatusOK, 10*time.Millisecond)
	m.ObserveBatch(3)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.SearchTotal.WithLabelValues("identifier", OutcomeOK)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.SearchTotal.WithLabelValues("search", OutcomeError)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.LLMTotal.WithLabelValues("parse", OutcomeFallback)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RegistryRequestTotal.WithLabelValues("get_asset", OutcomeNotFound)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.MetadataFetchTotal.WithLabelValues(OutcomeError)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.HTTPRequestTotal.WithLabelValues(http.MethodPost, "/api/search", "200")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveSearch("search", OutcomeOK)
		m.ObserveLLM("parse", OutcomeOK)
		m.ObserveRegistry("query_assets", OutcomeOK)
		m.ObserveMetadataFetch(OutcomeOK)
		m.ObserveHTTP(http.MethodGet, "/", http.StatusOK, time.Second)
		m.ObserveBatch(1)
	})

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetrics_Handler(t *testing.T) {
	m := newTestMetrics()
	m.ObserveSearch("search", OutcomeOK)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ip_search_searches_total")
}
