package metrics

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Record(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegistry(reg, reg)

	m.GeocodeLookup("hit")
	m.GeocodeLookup("hit")
	m.ImportRow("created")
	m.RequestStarted()
	m.RequestFinished("POST", "/api/stores/search", "200", 0.01)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.geocodeLookups.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.importRows.WithLabelValues("created")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.httpActiveConnections))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "locator_geocode_lookups_total")
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.GeocodeLookup("miss")
		m.SearchCompleted(3)
		m.ImportRow("failed")
		m.RateLimitDenied()
		m.RequestStarted()
		m.RequestFinished("GET", "/", "200", 0)
		m.DBPoolSampled(sql.DBStats{}, time.Second)
	})
}

func TestMetrics_DBPoolSampled(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegistry(reg, reg)

	m.DBPoolSampled(sql.DBStats{OpenConnections: 8, InUse: 5}, 250*time.Millisecond)
	m.DBPoolSampled(sql.DBStats{OpenConnections: 6, InUse: 2}, 0)

	assert.Equal(t, 6.0, testutil.ToFloat64(m.dbOpenConns))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.dbInUseConns))
	assert.InDelta(t, 0.25, testutil.ToFloat64(m.dbWaitSeconds), 1e-9)
}
