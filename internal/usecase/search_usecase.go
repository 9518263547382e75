package usecase

import (
	"context"

	"locator/internal/domain/entity"
)

// --- Input DTOs ---

// SearchLocation specifies where to search. Exactly one of coordinates, address or
// postal code is expected; coordinates win over address, address over postal code.
type SearchLocation struct {
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
	Address    string   `json:"address,omitempty"`
	PostalCode string   `json:"postal_code,omitempty"`
}

// HasCoordinates reports whether both latitude and longitude are set.
func (l SearchLocation) HasCoordinates() bool {
	return l.Latitude != nil && l.Longitude != nil
}

// SearchFilters narrows a search. A zero RadiusMiles means the default radius.
type SearchFilters struct {
	RadiusMiles float64            `json:"radius_miles"`
	Services    []string           `json:"services"`
	StoreTypes  []entity.StoreType `json:"store_types"`
	OpenNow     bool               `json:"open_now"`
}

// SearchRequest is a single proximity search.
type SearchRequest struct {
	Location SearchLocation `json:"location"`
	Filters  SearchFilters  `json:"filters"`
}

// --- Output DTOs ---

// SearchResult is a matching store with its distance from the search point.
type SearchResult struct {
	StoreView
	Distance  float64 `json:"distance"`
	IsOpenNow bool    `json:"is_open_now"`
}

// SearchMetadata echoes the normalised request.
type SearchMetadata struct {
	SearchedLocation SearchLocation `json:"searched_location"`
	AppliedFilters   SearchFilters  `json:"applied_filters"`
	TotalResults     int            `json:"total_results"`
}

// SearchResponse is the full search outcome, cached verbatim.
type SearchResponse struct {
	Stores   []SearchResult `json:"stores"`
	Metadata SearchMetadata `json:"metadata"`
}

// SearchUsecase runs proximity searches.
type SearchUsecase interface {
	Search(ctx context.Context, req *SearchRequest) (*SearchResponse, error)
}
