package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type reviewService struct {
	txManager       repository.TransactionManager
	reviewRepo      repository.ReviewRepository
	productRepo     repository.ProductRepository
	userRepo        repository.UserRepository
	defaultPageSize int
	maxPageSize     int
	logger          *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ReviewRepo  repository.ReviewRepository
	ProductRepo repository.ProductRepository
	UserRepo    repository.UserRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewReviewService creates the review use case.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	defaultPageSize, maxPageSize := pageLimits(params.Config)

	return &reviewService{
		txManager:       params.TxManager,
		reviewRepo:      params.ReviewRepo,
		productRepo:     params.ProductRepo,
		userRepo:        params.UserRepo,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
		logger:          params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *reviewService) ListProductReviews(ctx context.Context, productSlug string) ([]*entity.Review, error) {
	product, err := srv.productRepo.FindBySlug(ctx, productSlug)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	reviews, err := srv.reviewRepo.ListByProduct(ctx, product.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

func (srv *reviewService) CreateReview(ctx context.Context, userID uuid.UUID, input *usecase.CreateReviewInput) (*entity.Review, error) {
	if input.Rating < entity.MinReviewRating || input.Rating > entity.MaxReviewRating {
		return nil, errors.WithStack(domainerrors.ErrInvalidRating.WithDetails(
			fmt.Sprintf("rating must be between %d and %d", entity.MinReviewRating, entity.MaxReviewRating),
		))
	}

	product, err := srv.productRepo.FindBySlug(ctx, input.ProductSlug)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find review author")
	}

	review := &entity.Review{
		ProductID: product.ID,
		User:      entity.ReviewAuthor{ID: user.ID, Name: user.Name},
		Rating:    input.Rating,
		Comment:   strings.TrimSpace(input.Comment),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := lockProduct(ctx, repoFactory, product.ID); err != nil {
			return err
		}
		if err := repoFactory.ReviewRepo().Create(ctx, review); err != nil {
			return errors.Wrap(err, "failed to create review")
		}

		return refreshRating(ctx, repoFactory, product.ID)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save review")
	}

	srv.log(ctx).Info("Review created",
		slog.Any("reviewID", review.ID),
		slog.Any("productID", product.ID),
		slog.Int("rating", review.Rating),
	)

	return review, nil
}

func (srv *reviewService) DeleteOwnReview(ctx context.Context, userID, reviewID uuid.UUID) error {
	return srv.deleteReview(ctx, reviewID, func(review *entity.Review) error {
		if review.User.ID != userID {
			return errors.WithStack(domainerrors.ErrReviewForbidden)
		}

		return nil
	})
}

func (srv *reviewService) ListReviews(ctx context.Context, page entity.PageRequest) (entity.Page[*entity.Review], error) {
	page = page.Normalize(srv.defaultPageSize, srv.maxPageSize)

	reviews, total, err := srv.reviewRepo.List(ctx, page)
	if err != nil {
		return entity.Page[*entity.Review]{}, errors.Wrap(err, "failed to list reviews")
	}

	return entity.NewPage(reviews, total, page), nil
}

func (srv *reviewService) DeleteReview(ctx context.Context, reviewID uuid.UUID) error {
	return srv.deleteReview(ctx, reviewID, nil)
}

// deleteReview removes a review and refreshes the product rating. authorize, when set,
// may veto the deletion after the review is loaded.
func (srv *reviewService) deleteReview(ctx context.Context, reviewID uuid.UUID, authorize func(*entity.Review) error) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.ReviewRepo()

		review, err := reviewRepo.FindByID(ctx, reviewID)
		if err != nil {
			return errors.Wrap(err, "failed to find review")
		}

		if authorize != nil {
			if err := authorize(review); err != nil {
				return err
			}
		}

		if err := lockProduct(ctx, repoFactory, review.ProductID); err != nil {
			return err
		}
		if err := reviewRepo.Delete(ctx, review.ID); err != nil {
			return errors.Wrap(err, "failed to delete review")
		}

		return refreshRating(ctx, repoFactory, review.ProductID)
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete review")
	}

	srv.log(ctx).Info("Review deleted", slog.Any("reviewID", reviewID))

	return nil
}

// lockProduct holds the product row so rating aggregates of one product are computed in turn.
func lockProduct(ctx context.Context, repoFactory repository.RepositoryFactory, productID uuid.UUID) error {
	locked, err := repoFactory.ProductRepo().LockByIDs(ctx, []uuid.UUID{productID})
	if err != nil {
		return errors.Wrap(err, "failed to lock product")
	}
	if len(locked) == 0 {
		return errors.WithStack(domainerrors.ErrProductNotFound)
	}

	return nil
}

// refreshRating stores the aggregate of the product's current reviews on the product.
func refreshRating(ctx context.Context, repoFactory repository.RepositoryFactory, productID uuid.UUID) error {
	rating, err := repoFactory.ReviewRepo().Aggregate(ctx, productID)
	if err != nil {
		return errors.Wrap(err, "failed to aggregate ratings")
	}

	if err := repoFactory.ProductRepo().UpdateRating(ctx, productID, rating); err != nil {
		return errors.Wrap(err, "failed to update product rating")
	}

	return nil
}
