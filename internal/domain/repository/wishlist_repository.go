package repository

import (
	"context"

	"github.com/google/uuid"
)

// WishlistRepository persists the set of saved products per user.
type WishlistRepository interface {
	// List returns saved product ids in the order they were added.
	List(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	// Add saves a product. Saving it again is a no-op and reports added=false.
	Add(ctx context.Context, userID, productID uuid.UUID) (added bool, err error)

	// Remove reports whether a row was deleted.
	Remove(ctx context.Context, userID, productID uuid.UUID) (bool, error)

	Clear(ctx context.Context, userID uuid.UUID) error
}
