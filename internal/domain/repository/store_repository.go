// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"locator/internal/domain/entity"
	"locator/internal/domain/geo"
	"locator/internal/errors"
)

// Domain-specific errors for store persistence.
var (
	// ErrStoreNotFound is returned when no store has the requested store ID.
	ErrStoreNotFound = errors.New("store not found")
	// ErrDuplicateStore is returned when inserting a store ID that already exists.
	ErrDuplicateStore = errors.New("store already exists")
)

// StoreSearchQuery narrows the coarse candidate set of a proximity search.
type StoreSearchQuery struct {
	Box geo.BoundingBox

	// Services must all be attached to a candidate.
	Services []string

	// StoreTypes matches candidates of any listed type. Empty means every type.
	StoreTypes []entity.StoreType
}

// StoreRepository defines persistence operations for stores and their service tag associations.
type StoreRepository interface {
	// FindByStoreID retrieves a store, including its service names.
	FindByStoreID(ctx context.Context, storeID string) (*entity.Store, error)

	// FindActiveWithin returns active stores inside the query's bounding box that
	// carry every requested service and match any requested type.
	FindActiveWithin(ctx context.Context, query *StoreSearchQuery) ([]*entity.Store, error)

	// List returns a page of stores ordered by store ID and the total store count.
	List(ctx context.Context, offset, limit int) ([]*entity.Store, int64, error)

	// Create inserts the store row. Service associations are written by ReplaceServices.
	Create(ctx context.Context, store *entity.Store) error

	// Update applies the set fields of update to the stored row. Services are ignored.
	Update(ctx context.Context, storeID string, update *entity.StoreUpdate) error

	// ReplaceServices sets the store's service associations to exactly tags.
	ReplaceServices(ctx context.Context, storeID string, tags []*entity.ServiceTag) error
}
