package service

import (
	"context"
	"time"

	"locator/internal/errors"
)

// ErrCacheMiss is returned by Cache.Get when the key is absent or expired.
var ErrCacheMiss = errors.New("cache: miss")

// Cache is a key-value store with expiring entries, shared by the geocode and
// search result caches under distinct key prefixes.
type Cache interface {
	// Get returns the raw value or ErrCacheMiss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key for ttl.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Exists reports whether key is present.
	Exists(ctx context.Context, key string) (bool, error)
}

// RequestCounter counts events in fixed windows, backing per-client rate limits.
type RequestCounter interface {
	// Increment bumps the counter for key and returns the new count together with
	// the time left until the window resets.
	Increment(ctx context.Context, key string, window time.Duration) (count int64, resetIn time.Duration, err error)
}
