package usecase

import (
	"context"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// TokenOutput returns issued tokens.
type TokenOutput struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

// AuthUsecase authenticates back-office users.
type AuthUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*TokenOutput, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenOutput, error)

	// Logout revokes one of userID's refresh tokens.
	Logout(ctx context.Context, userID uuid.UUID, refreshToken string) error

	// SeedDefaultAdmin creates the configured admin account when no user has its email.
	SeedDefaultAdmin(ctx context.Context) error
}
