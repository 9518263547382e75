package service

import (
	"context"

	"locator/internal/domain/entity"
	"locator/internal/errors"
)

// ErrGeocodeNoMatch is returned when the provider knows no location for the query.
var ErrGeocodeNoMatch = errors.New("geocode: no match")

// Geocoder resolves free-text addresses or postal codes to coordinates.
type Geocoder interface {
	// Geocode returns ErrGeocodeNoMatch when nothing matches; any other error is a
	// transport, timeout or provider failure.
	Geocode(ctx context.Context, query string) (entity.Coordinates, error)
}
