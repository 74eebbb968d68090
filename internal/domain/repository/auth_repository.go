package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// Domain-specific errors for authentication persistence.
// This allows the application layer to handle specific outcomes without depending on database-specific errors.
var (
	// ErrAuthNotFound is returned when an authentication method is not found.
	ErrAuthNotFound = errors.New("authentication method not found")
)

// AuthRepository defines the standard operations for authentication-related persistence.
type AuthRepository interface {
	// CreateAuthentication persists a new authentication method (email/password or Google).
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error

	// FindAuthentication retrieves an authentication method by its provider and provider-specific ID.
	FindAuthentication(ctx context.Context, provider string, providerUserID string) (*entity.Authentication, error)
}
