package postgres

import (
	"context"
	"math"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository implements the domain.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (repo *reviewRepository) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel
	err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC, id ASC").
		Find(&reviewModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list product reviews")
	}

	return toReviewDomains(reviewModels), nil
}

func (repo *reviewRepository) List(ctx context.Context, page entity.PageRequest) ([]*entity.Review, int, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.ReviewModel{}).Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count reviews")
	}

	var reviewModels []*model.ReviewModel
	err := repo.db.WithContext(ctx).
		Order("created_at DESC, id ASC").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&reviewModels).Error
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list reviews")
	}

	return toReviewDomains(reviewModels), int(total), nil
}

func (repo *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrReviewNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find review")
	}

	return toReviewDomain(&reviewM), nil
}

func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Omit("Product", "User").Create(reviewM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrReviewAlreadyExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidRating
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt

	return nil
}

func (repo *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ReviewModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete review")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrReviewNotFound
	}

	return nil
}

// Aggregate computes the mean rating, rounded to two decimals, and the review count.
func (repo *reviewRepository) Aggregate(ctx context.Context, productID uuid.UUID) (entity.Rating, error) {
	var row struct {
		Average float64
		Count   int
	}
	err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS count").
		Where("product_id = ?", productID).
		Scan(&row).Error
	if err != nil {
		return entity.Rating{}, domainerrors.NewDatabaseExecuteError(err, "failed to aggregate reviews")
	}

	return entity.Rating{
		Average: math.Round(row.Average*100) / 100,
		Count:   row.Count,
	}, nil
}

func (repo *reviewRepository) Count(ctx context.Context) (int, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ReviewModel{}).Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count reviews")
	}

	return int(count), nil
}

func toReviewDomains(models []*model.ReviewModel) []*entity.Review {
	reviews := make([]*entity.Review, 0, len(models))
	for _, m := range models {
		reviews = append(reviews, toReviewDomain(m))
	}

	return reviews
}

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:        data.ID,
		ProductID: data.ProductID,
		User:      entity.ReviewAuthor{ID: data.UserID, Name: data.UserName},
		Rating:    data.Rating,
		Comment:   data.Comment,
		CreatedAt: data.CreatedAt,
	}
}

func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:        data.ID,
		ProductID: data.ProductID,
		UserID:    data.User.ID,
		UserName:  data.User.Name,
		Rating:    data.Rating,
		Comment:   data.Comment,
	}
}
