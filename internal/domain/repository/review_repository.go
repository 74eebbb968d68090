package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewRepository persists product reviews.
type ReviewRepository interface {
	// ListByProduct returns a product's reviews newest first.
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error)

	// List returns one page of all reviews newest first, with the total count.
	List(ctx context.Context, page entity.PageRequest) ([]*entity.Review, int, error)

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// Create fails with domainerrors.ErrReviewAlreadyExists when the user already reviewed the product.
	Create(ctx context.Context, review *entity.Review) error

	Delete(ctx context.Context, id uuid.UUID) error

	// Aggregate computes the rating of a product from its stored reviews.
	Aggregate(ctx context.Context, productID uuid.UUID) (entity.Rating, error)

	Count(ctx context.Context) (int, error)
}
