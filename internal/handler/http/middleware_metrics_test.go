package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-user-posts/internal/service"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithMetrics_CountsByRoutePattern(t *testing.T) {
	h := newTestHandler(t, &service.Services{})
	router := h.Init()

	for range 2 {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/test", nil))
	}
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, float64(2), testutil.ToFloat64(h.metrics.requestsTotal.WithLabelValues(http.MethodGet, "/test", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(h.metrics.requestsTotal.WithLabelValues(http.MethodGet, unmatchedRoute, "404")))
}

func TestMetricsEndpoint_ExposesRequestCounter(t *testing.T) {
	h := newTestHandler(t, &service.Services{})
	router := h.Init()

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "http_requests_total"), "exposition must contain the request counter")
	assert.Contains(t, body, "http_request_duration_seconds")
}
