package repository

import (
	"context"

	"locator/internal/domain/entity"
	"locator/internal/errors"

	"github.com/google/uuid"
)

// ErrRefreshTokenNotFound is returned when no live session matches the lookup.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository persists login sessions so refresh tokens can be revoked.
type RefreshTokenRepository interface {
	// Create stores a newly issued session.
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindByHash returns the session whose token hash matches, revoked or not.
	FindByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// Revoke marks a session revoked. Already revoked or unknown sessions yield ErrRefreshTokenNotFound.
	Revoke(ctx context.Context, id uuid.UUID) error
}
