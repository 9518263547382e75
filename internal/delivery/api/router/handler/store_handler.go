package handler

import (
	"net/http"
	"time"

	"locator/internal/delivery/api/response"
	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StoreHandlerParams holds dependencies for StoreHandler, injected by Fx.
type StoreHandlerParams struct {
	fx.In

	StoreUC usecase.StoreUsecase
}

// StoreHandler serves store administration
type StoreHandler struct {
	storeUC usecase.StoreUsecase
}

// NewStoreHandler is the constructor for StoreHandler
func NewStoreHandler(params StoreHandlerParams) *StoreHandler {
	return &StoreHandler{storeUC: params.StoreUC}
}

// WeeklyHoursRequest holds optional per-day hours, each "closed" or "HH:MM-HH:MM"
type WeeklyHoursRequest struct {
	HoursMon *string `json:"hours_mon"`
	HoursTue *string `json:"hours_tue"`
	HoursWed *string `json:"hours_wed"`
	HoursThu *string `json:"hours_thu"`
	HoursFri *string `json:"hours_fri"`
	HoursSat *string `json:"hours_sat"`
	HoursSun *string `json:"hours_sun"`
}

func (r WeeklyHoursRequest) toMap() map[time.Weekday]string {
	hours := make(map[time.Weekday]string)
	for day, value := range map[time.Weekday]*string{
		time.Monday:    r.HoursMon,
		time.Tuesday:   r.HoursTue,
		time.Wednesday: r.HoursWed,
		time.Thursday:  r.HoursThu,
		time.Friday:    r.HoursFri,
		time.Saturday:  r.HoursSat,
		time.Sunday:    r.HoursSun,
	} {
		if value != nil {
			hours[day] = *value
		}
	}

	return hours
}

// CreateStoreRequest represents the request body for creating a store
type CreateStoreRequest struct {
	StoreID           string   `json:"store_id" validate:"required,max=50"`
	Name              string   `json:"name" validate:"required"`
	StoreType         string   `json:"store_type" validate:"omitempty,oneof=flagship regular outlet express"`
	Status            string   `json:"status" validate:"omitempty,oneof=active inactive temporarily_closed"`
	Latitude          *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude         *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	AddressStreet     string   `json:"address_street"`
	AddressCity       string   `json:"address_city"`
	AddressState      string   `json:"address_state"`
	AddressPostalCode string   `json:"address_postal_code"`
	AddressCountry    string   `json:"address_country"`
	Phone             string   `json:"phone"`
	Services          []string `json:"services"`
	WeeklyHoursRequest
}

// UpdateStoreRequest represents the request body for a partial store update
type UpdateStoreRequest struct {
	Name     *string   `json:"name" validate:"omitempty,min=1"`
	Phone    *string   `json:"phone"`
	Status   *string   `json:"status" validate:"omitempty,oneof=active inactive temporarily_closed"`
	Services *[]string `json:"services"`
	WeeklyHoursRequest
}

// ListStoresRequest holds pagination query parameters
type ListStoresRequest struct {
	Page     int `query:"page" validate:"omitempty,min=1"`
	PageSize int `query:"page_size" validate:"omitempty,min=1,max=100"`
}

// CreateStore adds a store
func (h *StoreHandler) CreateStore(c echo.Context) error {
	var req CreateStoreRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid store payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	store, err := h.storeUC.CreateStore(c.Request().Context(), &usecase.CreateStoreInput{
		StoreID:   req.StoreID,
		Name:      req.Name,
		StoreType: entity.StoreType(req.StoreType),
		Status:    entity.StoreStatus(req.Status),
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Address: entity.Address{
			Street:     req.AddressStreet,
			City:       req.AddressCity,
			State:      req.AddressState,
			PostalCode: req.AddressPostalCode,
			Country:    req.AddressCountry,
		},
		Phone:    req.Phone,
		Services: req.Services,
		Hours:    req.toMap(),
	})
	if err != nil {
		return err
	}

	return response.Created(c, store)
}

// ListStores returns one page of stores
func (h *StoreHandler) ListStores(c echo.Context) error {
	var req ListStoresRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid pagination parameters")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	list, err := h.storeUC.ListStores(c.Request().Context(), &usecase.ListStoresInput{
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		return err
	}

	return response.OK(c, list)
}

// GetStore returns a single store
func (h *StoreHandler) GetStore(c echo.Context) error {
	store, err := h.storeUC.GetStore(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.OK(c, store)
}

// UpdateStore applies a partial update
func (h *StoreHandler) UpdateStore(c echo.Context) error {
	var req UpdateStoreRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid store payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := &usecase.UpdateStoreInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Services: req.Services,
		Hours:    req.toMap(),
	}
	if req.Status != nil {
		status := entity.StoreStatus(*req.Status)
		input.Status = &status
	}

	store, err := h.storeUC.UpdateStore(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}

	return response.OK(c, store)
}

// DeactivateStore soft-deletes a store
func (h *StoreHandler) DeactivateStore(c echo.Context) error {
	storeID := c.Param("id")
	if err := h.storeUC.DeactivateStore(c.Request().Context(), storeID); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"message":  "Store deactivated",
		"store_id": storeID,
	})
}
