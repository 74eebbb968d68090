package postgres

import (
	"context"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// wishlistRepository implements the domain.WishlistRepository interface.
type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository is the constructor for wishlistRepository.
func NewWishlistRepository(db *gorm.DB) repository.WishlistRepository {
	return &wishlistRepository{db: db}
}

func (repo *wishlistRepository) List(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var productIDs []uuid.UUID
	err := repo.db.WithContext(ctx).
		Model(&model.WishlistItemModel{}).
		Where("user_id = ?", userID).
		Order("created_at ASC, product_id ASC").
		Pluck("product_id", &productIDs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list wishlist")
	}
	if productIDs == nil {
		productIDs = []uuid.UUID{}
	}

	return productIDs, nil
}

// Add relies on the (user_id, product_id) primary key; a duplicate insert affects no row.
func (repo *wishlistRepository) Add(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Omit("Product").
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.WishlistItemModel{UserID: userID, ProductID: productID})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return false, domainerrors.ErrProductNotFound
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to add wishlist item")
	}

	return result.RowsAffected > 0, nil
}

func (repo *wishlistRepository) Remove(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.WishlistItemModel{})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove wishlist item")
	}

	return result.RowsAffected > 0, nil
}

func (repo *wishlistRepository) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.WishlistItemModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear wishlist")
	}

	return nil
}
