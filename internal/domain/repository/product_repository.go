package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductScope narrows the rows loaded before the in-memory catalog filter runs.
// Zero values mean no restriction.
type ProductScope struct {
	CategoryID   *uuid.UUID
	CollectionID *uuid.UUID
	Search       string
}

// ProductRepository persists catalog products.
// Lookups of a missing product return domainerrors.ErrProductNotFound.
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Product, error)

	// FindByIDs returns the products that exist among ids, in no particular order.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	List(ctx context.Context, scope ProductScope) ([]*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error

	// LockByIDs loads the products with SELECT ... FOR UPDATE in ascending id order.
	// It must run inside a transaction.
	LockByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	// AdjustInventory adds delta to the stock of a product. A negative delta that would
	// take the stock below zero fails with domainerrors.ErrOutOfStock.
	AdjustInventory(ctx context.Context, id uuid.UUID, delta int) error

	// UpdateRating stores the aggregate computed from the product's reviews.
	UpdateRating(ctx context.Context, id uuid.UUID, rating entity.Rating) error

	// FindLowStock lists products with inventory at or below threshold, lowest first.
	FindLowStock(ctx context.Context, threshold int, ids []uuid.UUID) ([]*entity.Product, error)

	CountLowStock(ctx context.Context, threshold int) (int, error)
	Count(ctx context.Context) (int, error)
}
