package repository

import (
	"context"

	"locator/internal/domain/entity"
)

// ServiceTagRepository defines persistence operations for service tags.
type ServiceTagRepository interface {
	// FindAll returns every known tag.
	FindAll(ctx context.Context) ([]*entity.ServiceTag, error)

	// FindOrCreateByName atomically inserts the tag if the name is unused and returns the stored tag.
	FindOrCreateByName(ctx context.Context, name string) (*entity.ServiceTag, error)
}
