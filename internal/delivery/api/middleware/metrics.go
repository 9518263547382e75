package middleware

import (
	"strconv"
	"time"

	deliverymiddleware "locator/internal/delivery/middleware"
	"locator/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records request counts, latencies and in-flight requests.
type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

// NewMetricsMiddleware is the constructor for MetricsMiddleware.
func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

// Record wraps next with request instrumentation. Routes are labelled by their pattern.
func (m *MetricsMiddleware) Record(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		m.metrics.RequestStarted()
		start := time.Now()

		err := next(c)

		status := c.Response().Status
		if err != nil {
			status = deliverymiddleware.StatusFromError(err)
		}

		path := c.Path()
		if path == "" {
			path = "unmatched"
		}

		m.metrics.RequestFinished(c.Request().Method, path, strconv.Itoa(status), time.Since(start).Seconds())

		return err
	}
}
