package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cartRepository implements the domain.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// Get loads the user's lines in insertion order.
func (repo *cartRepository) Get(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	var itemModels []*model.CartItemModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("position ASC").
		Find(&itemModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load cart")
	}

	items := make([]entity.CartItem, 0, len(itemModels))
	var updatedAt time.Time
	for _, m := range itemModels {
		items = append(items, toCartItemDomain(m))
		if m.UpdatedAt.After(updatedAt) {
			updatedAt = m.UpdatedAt
		}
	}

	cart := entity.NewCart(userID, items)
	cart.UpdatedAt = updatedAt

	return cart, nil
}

// Lock takes the owner's user row FOR NO KEY UPDATE. The row exists even when the cart is
// empty, so two first adds to the same cart also queue behind each other.
func (repo *cartRepository) Lock(ctx context.Context, userID uuid.UUID) error {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "NO KEY UPDATE"}).
		Select("id").
		Where("id = ?", userID).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to lock cart")
	}

	return nil
}

// Save replaces every stored line of the user with the cart's lines.
func (repo *cartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	db := repo.db.WithContext(ctx)
	if err := db.Where("user_id = ?", cart.UserID).Delete(&model.CartItemModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear cart")
	}
	if cart.IsEmpty() {
		return nil
	}

	now := time.Now()
	rows := make([]*model.CartItemModel, 0, len(cart.Items))
	for i := range cart.Items {
		row := fromCartItemDomain(cart.UserID, &cart.Items[i], i)
		row.UpdatedAt = now
		rows = append(rows, row)
	}
	if err := db.Omit("Product").Create(&rows).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidQuantity
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save cart")
	}
	cart.UpdatedAt = now

	return nil
}

func toCartItemDomain(data *model.CartItemModel) entity.CartItem {
	return entity.CartItem{
		ProductID: data.ProductID,
		Title:     data.Title,
		Slug:      data.Slug,
		Image:     data.Image,
		Price:     data.Price,
		Size:      data.Size,
		Color:     data.Color,
		Quantity:  data.Quantity,
	}
}

func fromCartItemDomain(userID uuid.UUID, data *entity.CartItem, position int) *model.CartItemModel {
	return &model.CartItemModel{
		UserID:    userID,
		ProductID: data.ProductID,
		Size:      data.Size,
		Color:     data.Color,
		Title:     data.Title,
		Slug:      data.Slug,
		Image:     data.Image,
		Price:     data.Price,
		Quantity:  data.Quantity,
		Position:  position,
	}
}
