package handler

import (
	"net/http"
	"testing"

	"locator/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := metrics.NewWithRegistry(registry, registry)
	m.SearchCompleted(3)

	h := NewHealthHandler(HealthHandlerParams{Metrics: m})
	e := newTestEcho()
	e.GET("/health", h.Health)
	e.GET("/metrics", h.Metrics)

	rec := doJSON(e, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy","message":"Store locator service is running"}`, string(decodeEnvelope(t, rec).Data))

	rec = doJSON(e, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "locator_search_results_count 1")
}

func TestHealthHandler_MetricsDisabled(t *testing.T) {
	h := NewHealthHandler(HealthHandlerParams{})
	e := newTestEcho()
	e.GET("/metrics", h.Metrics)

	rec := doJSON(e, http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
