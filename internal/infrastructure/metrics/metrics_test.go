package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMetrics() *Metrics {
	return NewWithRegistry(prometheus.NewRegistry())
}

func TestObserveUpstream(t *testing.T) {
	m := newTestMetrics()

	m.ObserveUpstream("", 120*time.Millisecond, 4)
	m.ObserveUpstream("", 80*time.Millisecond, 0)
	m.ObserveUpstream("transport", time.Second, 0)
	m.ObserveUpstream("status", 10*time.Millisecond, 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.UpstreamRequests.WithLabelValues(OutcomeSuccess, "")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.UpstreamRequests.WithLabelValues(OutcomeError, "transport")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.UpstreamRequests.WithLabelValues(OutcomeError, "status")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.UpstreamRequests.WithLabelValues(OutcomeError, "decode")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.UpstreamDuration))
}

func TestObserveHTTP(t *testing.T) {
	m := newTestMetrics()

	m.ObserveHTTP(http.MethodGet, "/api/v1/flights/search", http.StatusOK, time.Millisecond)
	m.ObserveHTTP(http.MethodGet, "/api/v1/flights/search", http.StatusBadGateway, time.Millisecond)
	m.ObserveHTTP(http.MethodGet, "/api/v1/flights/search", http.StatusOK, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/api/v1/flights/search", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/api/v1/flights/search", "502")))
}

func TestSetSessions(t *testing.T) {
	m := newTestMetrics()

	m.SetSessions(3)
	m.SetSessions(1)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Sessions))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveUpstream("decode", time.Millisecond, 0)
		m.ObserveHTTP("GET", "/", 200, time.Millisecond)
		m.SetSessions(2)
	})
	assert.NotNil(t, m.Handler())
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := New()
	m.ObserveUpstream("", time.Millisecond, 1)
	m.SetSessions(5)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), "flight_search_console_upstream_requests_total")
	assert.Contains(t, string(body), "flight_search_console_sessions_active 5")
	assert.Contains(t, string(body), "go_goroutines")
}
