package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// collectionRepository implements the domain.CollectionRepository interface.
type collectionRepository struct {
	db *gorm.DB
}

// NewCollectionRepository is the constructor for collectionRepository.
func NewCollectionRepository(db *gorm.DB) repository.CollectionRepository {
	return &collectionRepository{db: db}
}

func (repo *collectionRepository) withProducts(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Preload("Products", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC, product_id ASC")
	})
}

func (repo *collectionRepository) List(ctx context.Context) ([]*entity.Collection, error) {
	var collectionModels []*model.CollectionModel
	if err := repo.withProducts(ctx).Order("title ASC, id ASC").Find(&collectionModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list collections")
	}

	collections := make([]*entity.Collection, 0, len(collectionModels))
	for _, m := range collectionModels {
		collections = append(collections, toCollectionDomain(m))
	}

	return collections, nil
}

func (repo *collectionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Collection, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *collectionRepository) FindBySlug(ctx context.Context, slug string) (*entity.Collection, error) {
	return repo.findOne(ctx, "slug = ?", slug)
}

func (repo *collectionRepository) findOne(ctx context.Context, cond string, arg any) (*entity.Collection, error) {
	var collectionM model.CollectionModel
	if err := repo.withProducts(ctx).Where(cond, arg).First(&collectionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrCollectionNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find collection")
	}

	return toCollectionDomain(&collectionM), nil
}

func (repo *collectionRepository) Create(ctx context.Context, collection *entity.Collection) error {
	collectionM := fromCollectionDomain(collection)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(collectionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrCollectionSlugExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create collection")
	}

	collection.ID = collectionM.ID
	collection.CreatedAt = collectionM.CreatedAt

	return repo.SetProducts(ctx, collection.ID, collection.ProductIDs)
}

func (repo *collectionRepository) Update(ctx context.Context, collection *entity.Collection) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CollectionModel{}).
		Where("id = ?", collection.ID).
		Updates(map[string]any{
			"title":       collection.Title,
			"slug":        collection.Slug,
			"description": collection.Description,
			"image":       collection.Image,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrCollectionSlugExists
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update collection")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCollectionNotFound
	}

	return repo.SetProducts(ctx, collection.ID, collection.ProductIDs)
}

func (repo *collectionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CollectionModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete collection")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCollectionNotFound
	}

	return nil
}

// SetProducts replaces the membership, keeping the given order as the display position.
func (repo *collectionRepository) SetProducts(ctx context.Context, collectionID uuid.UUID, productIDs []uuid.UUID) error {
	db := repo.db.WithContext(ctx)
	if err := db.Where("collection_id = ?", collectionID).Delete(&model.CollectionProductModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear collection products")
	}
	if len(productIDs) == 0 {
		return nil
	}

	rows := make([]model.CollectionProductModel, 0, len(productIDs))
	for i, productID := range productIDs {
		rows = append(rows, model.CollectionProductModel{CollectionID: collectionID, ProductID: productID, Position: i})
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to set collection products")
	}

	return nil
}

func (repo *collectionRepository) Count(ctx context.Context) (int, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.CollectionModel{}).Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count collections")
	}

	return int(count), nil
}

func toCollectionDomain(data *model.CollectionModel) *entity.Collection {
	if data == nil {
		return nil
	}

	productIDs := make([]uuid.UUID, 0, len(data.Products))
	for _, membership := range data.Products {
		productIDs = append(productIDs, membership.ProductID)
	}

	return &entity.Collection{
		ID:          data.ID,
		Title:       data.Title,
		Slug:        data.Slug,
		Description: data.Description,
		Image:       data.Image,
		ProductIDs:  productIDs,
		CreatedAt:   data.CreatedAt,
	}
}

func fromCollectionDomain(data *entity.Collection) *model.CollectionModel {
	if data == nil {
		return nil
	}

	return &model.CollectionModel{
		ID:          data.ID,
		Title:       data.Title,
		Slug:        data.Slug,
		Description: data.Description,
		Image:       data.Image,
	}
}
