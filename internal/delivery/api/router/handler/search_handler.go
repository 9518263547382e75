package handler

import (
	"encoding/json"
	"strings"

	"locator/internal/delivery/api/response"
	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SearchHandlerParams holds dependencies for SearchHandler, injected by Fx.
type SearchHandlerParams struct {
	fx.In

	SearchUC usecase.SearchUsecase
}

// SearchHandler serves store search
type SearchHandler struct {
	searchUC usecase.SearchUsecase
}

// NewSearchHandler is the constructor for SearchHandler
func NewSearchHandler(params SearchHandlerParams) *SearchHandler {
	return &SearchHandler{searchUC: params.SearchUC}
}

// SearchLocationRequest is the origin of a search. Exactly one form must be given.
type SearchLocationRequest struct {
	Latitude   *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude  *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Address    *string  `json:"address"`
	PostalCode *string  `json:"postal_code"`
}

// SearchFiltersRequest narrows the result set
type SearchFiltersRequest struct {
	RadiusMiles *float64 `json:"radius_miles" validate:"omitempty,gt=0,lte=100"`
	Services    []string `json:"services"`
	StoreTypes  []string `json:"store_types" validate:"omitempty,dive,oneof=flagship regular outlet express"`
	OpenNow     *bool    `json:"open_now"`
}

// SearchStoresRequest represents the request body for store search
type SearchStoresRequest struct {
	Location *SearchLocationRequest `json:"location" validate:"required"`
	Filters  *SearchFiltersRequest  `json:"filters"`
}

// Search finds active stores around a location
func (h *SearchHandler) Search(c echo.Context) error {
	var req SearchStoresRequest

	decoder := json.NewDecoder(c.Request().Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid search payload: " + err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	location, err := toSearchLocation(req.Location)
	if err != nil {
		return err
	}

	searchReq := &usecase.SearchRequest{Location: location}
	if f := req.Filters; f != nil {
		if f.RadiusMiles != nil {
			searchReq.Filters.RadiusMiles = *f.RadiusMiles
		}
		if f.OpenNow != nil {
			searchReq.Filters.OpenNow = *f.OpenNow
		}
		searchReq.Filters.Services = f.Services
		for _, t := range f.StoreTypes {
			searchReq.Filters.StoreTypes = append(searchReq.Filters.StoreTypes, entity.StoreType(t))
		}
	}

	result, err := h.searchUC.Search(c.Request().Context(), searchReq)
	if err != nil {
		return err
	}

	return response.OK(c, result)
}

func toSearchLocation(req *SearchLocationRequest) (usecase.SearchLocation, error) {
	if (req.Latitude == nil) != (req.Longitude == nil) {
		return usecase.SearchLocation{}, domainerrors.ErrValidationFailed.WithDetails("latitude and longitude must be given together")
	}

	location := usecase.SearchLocation{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}
	given := 0
	if location.HasCoordinates() {
		given++
	}
	if req.Address != nil && strings.TrimSpace(*req.Address) != "" {
		location.Address = *req.Address
		given++
	}
	if req.PostalCode != nil && strings.TrimSpace(*req.PostalCode) != "" {
		location.PostalCode = *req.PostalCode
		given++
	}

	switch given {
	case 0:
		return usecase.SearchLocation{}, domainerrors.ErrLocationRequired
	case 1:
		return location, nil
	default:
		return usecase.SearchLocation{}, domainerrors.ErrValidationFailed.WithDetails(
			"location must contain exactly one of coordinates, address or postal_code")
	}
}
