package usecase

import (
	"context"

	"locator/internal/domain/entity"
)

// GeocodeUsecase resolves location strings through a read-through cache in front of
// the geocoding provider.
type GeocodeUsecase interface {
	// Resolve returns the coordinates for query. The boolean is false when the location
	// could not be resolved for any reason, including provider timeouts and errors.
	Resolve(ctx context.Context, query string) (entity.Coordinates, bool)
}
