package service

import (
	"time"

	"github.com/google/uuid"
)

// AccessClaims is the identity carried by a verified access token.
type AccessClaims struct {
	UserID    uuid.UUID
	Roles     []string
	ExpiresAt time.Time
}

// TokenService issues and verifies access tokens.
type TokenService interface {
	GenerateAccessToken(userID uuid.UUID, roles []string) (string, error)
	// ValidateAccessToken rejects expired, malformed and wrongly signed tokens.
	ValidateAccessToken(token string) (*AccessClaims, error)
	AccessTokenDuration() time.Duration
}
