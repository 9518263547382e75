package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"locator/config"
	"locator/internal/domain/service"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestConfig returns a config with defaults applied and geocode throttling disabled.
func newTestConfig() *config.Config {
	cfg := &config.Config{
		Geocoding: &config.GeocodingConfig{MinInterval: -1},
	}
	cfg.ApplyDefaults()

	return cfg
}

func ptr[T any](v T) *T {
	return &v
}

// memoryCache is an in-process service.Cache that ignores TTLs.
type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.entries[key]
	if !ok {
		return nil, service.ErrCacheMiss
	}

	return v, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = value

	return nil
}

func (c *memoryCache) Exists(_ context.Context, key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.entries[key]

	return ok, nil
}

func (c *memoryCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}
