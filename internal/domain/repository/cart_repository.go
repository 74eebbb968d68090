package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CartRepository persists one cart per user.
type CartRepository interface {
	// Get returns the user's cart, empty when nothing is stored.
	Get(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// Lock holds the user's cart exclusively until the surrounding transaction ends,
	// so concurrent mutations of one cart apply one after another.
	Lock(ctx context.Context, userID uuid.UUID) error

	// Save replaces the stored lines with the cart's current lines.
	Save(ctx context.Context, cart *entity.Cart) error
}
