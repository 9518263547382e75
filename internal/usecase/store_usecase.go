package usecase

import (
	"context"
	"time"

	"locator/internal/domain/entity"
)

// --- Input DTOs ---

// CreateStoreInput defines the data required to create a store. Either both coordinates
// or a complete address must be given.
type CreateStoreInput struct {
	StoreID   string
	Name      string
	StoreType entity.StoreType
	Status    entity.StoreStatus
	Latitude  *float64
	Longitude *float64
	Address   entity.Address
	Phone     string
	Services  []string
	Hours     map[time.Weekday]string
}

// UpdateStoreInput is a partial update of an existing store.
type UpdateStoreInput struct {
	Name     *string
	Phone    *string
	Status   *entity.StoreStatus
	Services *[]string
	Hours    map[time.Weekday]string
}

// ListStoresInput selects a page. Page is 1-based.
type ListStoresInput struct {
	Page     int
	PageSize int
}

// --- Output DTOs ---

// StoreList is one page of stores.
type StoreList struct {
	Stores     []StoreView `json:"stores"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int         `json:"total_pages"`
}

// StoreUsecase defines administrative store management.
type StoreUsecase interface {
	CreateStore(ctx context.Context, input *CreateStoreInput) (*StoreView, error)
	GetStore(ctx context.Context, storeID string) (*StoreView, error)
	ListStores(ctx context.Context, input *ListStoresInput) (*StoreList, error)
	UpdateStore(ctx context.Context, storeID string, input *UpdateStoreInput) (*StoreView, error)
	DeactivateStore(ctx context.Context, storeID string) error
}
