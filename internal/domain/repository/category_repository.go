package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CategoryRepository persists categories.
type CategoryRepository interface {
	List(ctx context.Context) ([]*entity.Category, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Category, error)
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes the category; its products keep existing without a category.
	Delete(ctx context.Context, id uuid.UUID) error

	Count(ctx context.Context) (int, error)
}
