package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CollectionRepository persists collections and their product membership.
type CollectionRepository interface {
	List(ctx context.Context) ([]*entity.Collection, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Collection, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Collection, error)
	Create(ctx context.Context, collection *entity.Collection) error
	Update(ctx context.Context, collection *entity.Collection) error
	Delete(ctx context.Context, id uuid.UUID) error

	// SetProducts replaces the membership of a collection.
	SetProducts(ctx context.Context, collectionID uuid.UUID, productIDs []uuid.UUID) error

	Count(ctx context.Context) (int, error)
}
