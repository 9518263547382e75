package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"locator/config"
	deliverycontext "locator/internal/delivery/context"
	"locator/internal/domain/entity"
	"locator/internal/domain/service"
	"locator/internal/errors"
	"locator/internal/infra/metrics"
	"locator/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const geocodeKeyPrefix = "geocoding:"

// geocodeService implements usecase.GeocodeUsecase as a read-through cache.
type geocodeService struct {
	cache    service.Cache
	geocoder service.Geocoder
	limiter  *rate.Limiter
	timeout  time.Duration
	ttl      time.Duration
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// GeocodeServiceParams holds dependencies for geocodeService, injected by Fx.
type GeocodeServiceParams struct {
	fx.In

	Cache    service.Cache
	Geocoder service.Geocoder
	Config   *config.Config
	Logger   *slog.Logger
	Metrics  *metrics.Metrics `optional:"true"`
}

// NewGeocodeService is the constructor for geocodeService. Provider calls on cache
// misses are spaced at least Geocoding.MinInterval apart; cache hits are never throttled.
func NewGeocodeService(params GeocodeServiceParams) usecase.GeocodeUsecase {
	cfg := params.Config.Geocoding

	limit := rate.Inf
	if cfg.MinInterval > 0 {
		limit = rate.Every(cfg.MinInterval)
	}

	return &geocodeService{
		cache:    params.Cache,
		geocoder: params.Geocoder,
		limiter:  rate.NewLimiter(limit, 1),
		timeout:  cfg.Timeout,
		ttl:      cfg.CacheTTL,
		metrics:  params.Metrics,
		logger:   params.Logger,
	}
}

func (srv *geocodeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve looks query up in the cache and falls back to the provider. Failures are
// never cached and never returned as errors.
func (srv *geocodeService) Resolve(ctx context.Context, query string) (entity.Coordinates, bool) {
	if strings.TrimSpace(query) == "" {
		return entity.Coordinates{}, false
	}

	key := geocodeKeyPrefix + query

	if coords, ok := srv.fromCache(ctx, key); ok {
		srv.metrics.GeocodeLookup("hit")

		return coords, true
	}
	srv.metrics.GeocodeLookup("miss")

	if err := srv.limiter.Wait(ctx); err != nil {
		srv.log(ctx).Warn("Geocode throttle aborted", slog.String("query", query), slog.Any("error", err))

		return entity.Coordinates{}, false
	}

	callCtx := ctx
	if srv.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, srv.timeout)
		defer cancel()
	}

	coords, err := srv.geocoder.Geocode(callCtx, query)
	if err != nil {
		if errors.Is(err, service.ErrGeocodeNoMatch) {
			srv.metrics.GeocodeLookup("no_match")
			srv.log(ctx).Info("Geocode found no match", slog.String("query", query))
		} else {
			srv.metrics.GeocodeLookup("error")
			srv.log(ctx).Warn("Geocode provider failed", slog.String("query", query), slog.Any("error", err))
		}

		return entity.Coordinates{}, false
	}

	srv.store(ctx, key, coords)

	return coords, true
}

func (srv *geocodeService) fromCache(ctx context.Context, key string) (entity.Coordinates, bool) {
	raw, err := srv.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, service.ErrCacheMiss) {
			srv.log(ctx).Warn("Geocode cache read failed", slog.String("key", key), slog.Any("error", err))
		}

		return entity.Coordinates{}, false
	}

	var coords entity.Coordinates
	if err := json.Unmarshal(raw, &coords); err != nil {
		srv.log(ctx).Warn("Discarding malformed geocode cache entry", slog.String("key", key), slog.Any("error", err))

		return entity.Coordinates{}, false
	}

	return coords, true
}

func (srv *geocodeService) store(ctx context.Context, key string, coords entity.Coordinates) {
	raw, err := json.Marshal(coords)
	if err != nil {
		return
	}

	if err := srv.cache.Set(ctx, key, raw, srv.ttl); err != nil {
		srv.log(ctx).Warn("Geocode cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}
