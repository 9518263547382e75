package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strings"
	"time"

	"locator/config"
	deliverycontext "locator/internal/delivery/context"
	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/geo"
	"locator/internal/domain/repository"
	"locator/internal/domain/service"
	"locator/internal/errors"
	"locator/internal/infra/metrics"
	"locator/internal/usecase"

	"go.uber.org/fx"
)

const searchKeyPrefix = "search:"

// searchService implements usecase.SearchUsecase.
type searchService struct {
	storeRepo     repository.StoreRepository
	geocode       usecase.GeocodeUsecase
	cache         service.Cache
	clock         service.Clock
	cacheTTL      time.Duration
	defaultRadius float64
	maxRadius     float64
	metrics       *metrics.Metrics
	logger        *slog.Logger
}

// SearchServiceParams holds dependencies for searchService, injected by Fx.
type SearchServiceParams struct {
	fx.In

	StoreRepo repository.StoreRepository
	Geocode   usecase.GeocodeUsecase
	Cache     service.Cache
	Clock     service.Clock
	Config    *config.Config
	Logger    *slog.Logger
	Metrics   *metrics.Metrics `optional:"true"`
}

// NewSearchService is the constructor for searchService.
func NewSearchService(params SearchServiceParams) usecase.SearchUsecase {
	return &searchService{
		storeRepo:     params.StoreRepo,
		geocode:       params.Geocode,
		cache:         params.Cache,
		clock:         params.Clock,
		cacheTTL:      params.Config.Search.CacheTTL,
		defaultRadius: params.Config.Search.DefaultRadiusMiles,
		maxRadius:     params.Config.Search.MaxRadiusMiles,
		metrics:       params.Metrics,
		logger:        params.Logger,
	}
}

func (srv *searchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Search serves from the result cache when an identical normalised request was answered
// within the TTL; otherwise it runs the bounding-box query and refines it by exact distance.
func (srv *searchService) Search(ctx context.Context, req *usecase.SearchRequest) (*usecase.SearchResponse, error) {
	normalized := srv.normalize(req)

	if radius := normalized.Filters.RadiusMiles; radius <= 0 || radius > srv.maxRadius {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("radius_miles must be greater than 0 and at most %g", srv.maxRadius))
	}

	key, err := searchCacheKey(normalized)
	if err != nil {
		return nil, err
	}

	if cached, ok := srv.fromCache(ctx, key); ok {
		srv.log(ctx).Debug("Search served from cache", slog.String("key", key))

		return cached, nil
	}

	origin, err := srv.resolveOrigin(ctx, normalized.Location)
	if err != nil {
		return nil, err
	}

	radius := normalized.Filters.RadiusMiles
	candidates, err := srv.storeRepo.FindActiveWithin(ctx, &repository.StoreSearchQuery{
		Box:        geo.CalculateBoundingBox(origin.Latitude, origin.Longitude, radius),
		Services:   normalized.Filters.Services,
		StoreTypes: normalized.Filters.StoreTypes,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to query candidate stores")
	}

	now := srv.clock.Now()
	results := make([]usecase.SearchResult, 0, len(candidates))
	for _, store := range candidates {
		distance := geo.Distance(origin.Latitude, origin.Longitude, store.Location.Latitude, store.Location.Longitude)
		if distance > radius {
			continue
		}

		isOpen := store.IsOpenAt(now)
		if normalized.Filters.OpenNow && !isOpen {
			continue
		}

		results = append(results, usecase.SearchResult{
			StoreView: usecase.NewStoreView(store),
			Distance:  distance,
			IsOpenNow: isOpen,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})

	response := &usecase.SearchResponse{
		Stores: results,
		Metadata: usecase.SearchMetadata{
			SearchedLocation: normalized.Location,
			AppliedFilters:   normalized.Filters,
			TotalResults:     len(results),
		},
	}

	srv.metrics.SearchCompleted(len(results))
	srv.store(ctx, key, response)

	return response, nil
}

// normalize applies defaults and canonicalises list filters so that equivalent
// requests share a cache key.
func (srv *searchService) normalize(req *usecase.SearchRequest) *usecase.SearchRequest {
	normalized := &usecase.SearchRequest{
		Location: usecase.SearchLocation{
			Latitude:   req.Location.Latitude,
			Longitude:  req.Location.Longitude,
			Address:    strings.TrimSpace(req.Location.Address),
			PostalCode: strings.TrimSpace(req.Location.PostalCode),
		},
		Filters: usecase.SearchFilters{
			RadiusMiles: req.Filters.RadiusMiles,
			Services:    entity.NormalizeServiceNames(req.Filters.Services),
			StoreTypes:  make([]entity.StoreType, 0, len(req.Filters.StoreTypes)),
			OpenNow:     req.Filters.OpenNow,
		},
	}

	if normalized.Filters.RadiusMiles == 0 {
		normalized.Filters.RadiusMiles = srv.defaultRadius
	}

	slices.Sort(normalized.Filters.Services)

	for _, t := range req.Filters.StoreTypes {
		if !slices.Contains(normalized.Filters.StoreTypes, t) {
			normalized.Filters.StoreTypes = append(normalized.Filters.StoreTypes, t)
		}
	}
	slices.Sort(normalized.Filters.StoreTypes)

	return normalized
}

func searchCacheKey(req *usecase.SearchRequest) (string, error) {
	raw, err := json.Marshal(req)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode search cache key")
	}

	return searchKeyPrefix + string(raw), nil
}

// resolveOrigin picks coordinates, then address, then postal code.
func (srv *searchService) resolveOrigin(ctx context.Context, loc usecase.SearchLocation) (entity.Coordinates, error) {
	switch {
	case loc.HasCoordinates():
		return entity.Coordinates{Latitude: *loc.Latitude, Longitude: *loc.Longitude}, nil
	case loc.Address != "":
		coords, ok := srv.geocode.Resolve(ctx, loc.Address)
		if !ok {
			return entity.Coordinates{}, domainerrors.ErrLocationUnresolvable.WithDetails("could not geocode address: " + loc.Address)
		}

		return coords, nil
	case loc.PostalCode != "":
		coords, ok := srv.geocode.Resolve(ctx, loc.PostalCode)
		if !ok {
			return entity.Coordinates{}, domainerrors.ErrLocationUnresolvable.WithDetails("could not geocode postal code: " + loc.PostalCode)
		}

		return coords, nil
	default:
		return entity.Coordinates{}, domainerrors.ErrLocationRequired
	}
}

func (srv *searchService) fromCache(ctx context.Context, key string) (*usecase.SearchResponse, bool) {
	raw, err := srv.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, service.ErrCacheMiss) {
			srv.log(ctx).Warn("Search cache read failed", slog.Any("error", err))
		}

		return nil, false
	}

	var response usecase.SearchResponse
	if err := json.Unmarshal(raw, &response); err != nil {
		srv.log(ctx).Warn("Discarding malformed search cache entry", slog.Any("error", err))

		return nil, false
	}

	return &response, true
}

func (srv *searchService) store(ctx context.Context, key string, response *usecase.SearchResponse) {
	raw, err := json.Marshal(response)
	if err != nil {
		srv.log(ctx).Warn("Failed to encode search response for cache", slog.Any("error", err))

		return
	}

	if err := srv.cache.Set(ctx, key, raw, srv.cacheTTL); err != nil {
		srv.log(ctx).Warn("Search cache write failed", slog.Any("error", err))
	}
}
