package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"locator/config"
	"locator/internal/errors"
	mockService "locator/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newRateLimitedEcho(t *testing.T, counter *mockService.MockRequestCounter, enabled bool) *echo.Echo {
	m := NewRateLimitMiddleware(RateLimitParams{
		Counter: counter,
		Config: &config.Config{RateLimit: &config.RateLimitConfig{
			Enabled:   enabled,
			PerMinute: 2,
			PerHour:   5,
		}},
		Logger: newDiscardLogger(),
	})

	e := newTestEcho()
	e.GET("/search", okHandler, m.Limit)

	return e
}

func searchFrom(e *echo.Echo, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/search", nil)
	req.RemoteAddr = ip + ":5555"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestRateLimitMiddleware_Limit(t *testing.T) {
	t.Run("under both limits", func(t *testing.T) {
		counter := mockService.NewMockRequestCounter(t)
		counter.EXPECT().Increment(mock.Anything, "ratelimit:minute:10.0.0.1", time.Minute).Return(2, 30*time.Second, nil)
		counter.EXPECT().Increment(mock.Anything, "ratelimit:hour:10.0.0.1", time.Hour).Return(5, 30*time.Minute, nil)

		rec := searchFrom(newRateLimitedEcho(t, counter, true), "10.0.0.1")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("minute window exhausted", func(t *testing.T) {
		counter := mockService.NewMockRequestCounter(t)
		counter.EXPECT().Increment(mock.Anything, "ratelimit:minute:10.0.0.1", time.Minute).Return(3, 1500*time.Millisecond, nil)

		rec := searchFrom(newRateLimitedEcho(t, counter, true), "10.0.0.1")

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "2", rec.Header().Get("Retry-After"))
		body := decodeError(t, rec)
		assert.Equal(t, "RATE_LIMITED", body.Error.Code)
		assert.Contains(t, body.Error.Details, "10.0.0.1")
		assert.Contains(t, body.Error.Details, "minute")
	})

	t.Run("hour window exhausted", func(t *testing.T) {
		counter := mockService.NewMockRequestCounter(t)
		counter.EXPECT().Increment(mock.Anything, "ratelimit:minute:10.0.0.2", time.Minute).Return(1, time.Minute, nil)
		counter.EXPECT().Increment(mock.Anything, "ratelimit:hour:10.0.0.2", time.Hour).Return(6, 10*time.Minute, nil)

		rec := searchFrom(newRateLimitedEcho(t, counter, true), "10.0.0.2")

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "600", rec.Header().Get("Retry-After"))
	})

	t.Run("counter failure lets request through", func(t *testing.T) {
		counter := mockService.NewMockRequestCounter(t)
		counter.EXPECT().Increment(mock.Anything, mock.Anything, time.Minute).Return(0, 0, errors.New("connection refused"))

		rec := searchFrom(newRateLimitedEcho(t, counter, true), "10.0.0.3")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("disabled", func(t *testing.T) {
		counter := mockService.NewMockRequestCounter(t)

		rec := searchFrom(newRateLimitedEcho(t, counter, false), "10.0.0.4")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRetryAfterSeconds(t *testing.T) {
	assert.Equal(t, 1, retryAfterSeconds(0))
	assert.Equal(t, 1, retryAfterSeconds(200*time.Millisecond))
	assert.Equal(t, 60, retryAfterSeconds(time.Minute))
	assert.Equal(t, 61, retryAfterSeconds(time.Minute+time.Millisecond))
}
