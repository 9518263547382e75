package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"geocoding": map[string]any{
			"minInterval": "1s",
			"cacheTTL":    "720h",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"rateLimit": map[string]any{
			"perMinute": 10,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "GEOCODING_MININTERVAL", want: "geocoding.minInterval"},
		{envKey: "GEOCODING_CACHETTL", want: "geocoding.cacheTTL"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "RATELIMIT_PERMINUTE", want: "rateLimit.perMinute"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 30*24*time.Hour, cfg.Geocoding.CacheTTL)
	assert.Equal(t, 5*time.Second, cfg.Geocoding.Timeout)
	assert.Equal(t, time.Second, cfg.Geocoding.MinInterval)
	assert.Equal(t, "store_locator_service", cfg.Geocoding.UserAgent)
	assert.Equal(t, 10*time.Minute, cfg.Search.CacheTTL)
	assert.InDelta(t, 10.0, cfg.Search.DefaultRadiusMiles, 0)
	assert.InDelta(t, 100.0, cfg.Search.MaxRadiusMiles, 0)
	assert.Equal(t, 500, cfg.Import.ProgressEvery)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.RefreshTokenTTL)
	assert.Equal(t, 10, cfg.RateLimit.PerMinute)
	assert.Equal(t, 100, cfg.RateLimit.PerHour)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Geocoding: &GeocodingConfig{MinInterval: -1, CacheTTL: time.Hour},
		Search:    &SearchConfig{CacheTTL: time.Minute, DefaultRadiusMiles: 5},
	}
	cfg.ApplyDefaults()

	assert.Equal(t, time.Duration(-1), cfg.Geocoding.MinInterval)
	assert.Equal(t, time.Hour, cfg.Geocoding.CacheTTL)
	assert.Equal(t, time.Minute, cfg.Search.CacheTTL)
	assert.InDelta(t, 5.0, cfg.Search.DefaultRadiusMiles, 0)
}
