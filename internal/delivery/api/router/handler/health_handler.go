package handler

import (
	"net/http"

	"locator/internal/delivery/api/response"
	"locator/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	Metrics *metrics.Metrics `optional:"true"`
}

// HealthHandler serves liveness and metrics endpoints
type HealthHandler struct {
	metrics *metrics.Metrics
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{metrics: params.Metrics}
}

// Health reports that the process is serving requests
func (h *HealthHandler) Health(c echo.Context) error {
	return response.OK(c, map[string]string{
		"status":  "healthy",
		"message": "Store locator service is running",
	})
}

// Metrics exposes collectors in the Prometheus text format
func (h *HealthHandler) Metrics(c echo.Context) error {
	if h.metrics == nil {
		return echo.NewHTTPError(http.StatusNotFound, "metrics are disabled")
	}

	h.metrics.Handler().ServeHTTP(c.Response(), c.Request())

	return nil
}
