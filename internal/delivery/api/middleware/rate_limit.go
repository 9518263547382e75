package middleware

import (
	"log/slog"
	"math"
	"strconv"
	"time"

	"locator/config"
	deliverycontext "locator/internal/delivery/context"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/service"
	"locator/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const rateLimitKeyPrefix = "ratelimit:"

type rateWindow struct {
	name   string
	length time.Duration
	limit  int
}

// RateLimitMiddleware enforces fixed-window request limits per client IP.
type RateLimitMiddleware struct {
	counter service.RequestCounter
	enabled bool
	windows []rateWindow
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// RateLimitParams holds dependencies for RateLimitMiddleware, injected by Fx.
type RateLimitParams struct {
	fx.In

	Counter service.RequestCounter
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

// NewRateLimitMiddleware is the constructor for RateLimitMiddleware.
func NewRateLimitMiddleware(params RateLimitParams) *RateLimitMiddleware {
	cfg := params.Config.RateLimit

	return &RateLimitMiddleware{
		counter: params.Counter,
		enabled: cfg.Enabled,
		windows: []rateWindow{
			{name: "minute", length: time.Minute, limit: cfg.PerMinute},
			{name: "hour", length: time.Hour, limit: cfg.PerHour},
		},
		metrics: params.Metrics,
		logger:  params.Logger,
	}
}

// Limit counts the request against every window and answers 429 once one is exhausted.
// Counter failures let the request through.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.enabled {
			return next(c)
		}

		ctx := c.Request().Context()
		ip := c.RealIP()

		for _, window := range m.windows {
			count, resetIn, err := m.counter.Increment(ctx, rateLimitKeyPrefix+window.name+":"+ip, window.length)
			if err != nil {
				deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Rate limit counter unavailable",
					slog.String("window", window.name),
					slog.Any("error", err),
				)

				return next(c)
			}

			if count > int64(window.limit) {
				m.metrics.RateLimitDenied()
				c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(resetIn)))

				return domainerrors.ErrRateLimited.WithDetails(
					"Too many requests from " + ip + ". Please try again after a " + window.name + ".")
			}
		}

		return next(c)
	}
}

func retryAfterSeconds(resetIn time.Duration) int {
	seconds := int(math.Ceil(resetIn.Seconds()))
	if seconds < 1 {
		return 1
	}

	return seconds
}
