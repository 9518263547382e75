package entity

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

// RefreshToken is a stored login session. Only the hash of the raw token is kept.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string // hex SHA-256 of the raw refresh token
	ExpiresAt time.Time
	CreatedAt time.Time
	Revoked   bool
}

// NewRefreshToken records a freshly issued raw token for userID.
func NewRefreshToken(userID uuid.UUID, raw string, expiresAt time.Time) *RefreshToken {
	return &RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: HashRefreshToken(raw),
		ExpiresAt: expiresAt,
	}
}

// HashRefreshToken returns the lookup key stored for a raw refresh token.
func HashRefreshToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))

	return hex.EncodeToString(sum[:])
}

// Usable reports whether the session may still mint access tokens at now.
func (t *RefreshToken) Usable(now time.Time) bool {
	return !t.Revoked && now.Before(t.ExpiresAt)
}
