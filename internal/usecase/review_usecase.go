package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateReviewInput is a customer's review of a product.
type CreateReviewInput struct {
	ProductSlug string
	Rating      int
	Comment     string
}

// ReviewUsecase manages product reviews and keeps product ratings in sync with them.
type ReviewUsecase interface {
	ListProductReviews(ctx context.Context, productSlug string) ([]*entity.Review, error)
	CreateReview(ctx context.Context, userID uuid.UUID, input *CreateReviewInput) (*entity.Review, error)

	// DeleteOwnReview removes a review written by userID.
	DeleteOwnReview(ctx context.Context, userID, reviewID uuid.UUID) error

	ListReviews(ctx context.Context, page entity.PageRequest) (entity.Page[*entity.Review], error)
	DeleteReview(ctx context.Context, reviewID uuid.UUID) error
}
