package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in the "type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID uuid.UUID
	Roles  []string
	Type   string
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given user.
	GenerateTokens(userID uuid.UUID, roles []string) (accessToken string, refreshToken string, err error)

	// ValidateToken checks the validity of a token string against the secret of its type.
	ValidateToken(tokenString string) (*Claims, error)

	// HashToken returns the digest stored in place of a raw refresh token.
	HashToken(token string) string

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
