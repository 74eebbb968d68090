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
)

// categoryRepository implements the domain.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (repo *categoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel
	if err := repo.db.WithContext(ctx).Order("title ASC, id ASC").Find(&categoryModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, m := range categoryModels {
		categories = append(categories, toCategoryDomain(m))
	}

	return categories, nil
}

func (repo *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *categoryRepository) FindBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	return repo.findOne(ctx, "slug = ?", slug)
}

func (repo *categoryRepository) findOne(ctx context.Context, cond string, arg any) (*entity.Category, error) {
	var categoryM model.CategoryModel
	if err := repo.db.WithContext(ctx).Where(cond, arg).First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find category")
	}

	return toCategoryDomain(&categoryM), nil
}

func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryM := fromCategoryDomain(category)

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrCategorySlugExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	category.ID = categoryM.ID
	category.CreatedAt = categoryM.CreatedAt

	return nil
}

func (repo *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("id = ?", category.ID).
		Updates(map[string]any{
			"title":       category.Title,
			"slug":        category.Slug,
			"description": category.Description,
			"image":       category.Image,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrCategorySlugExists
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update category")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCategoryNotFound
	}

	return nil
}

// Delete removes the category. The foreign key sets category_id to NULL on its products.
func (repo *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CategoryModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete category")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCategoryNotFound
	}

	return nil
}

func (repo *categoryRepository) Count(ctx context.Context) (int, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.CategoryModel{}).Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count categories")
	}

	return int(count), nil
}

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:          data.ID,
		Title:       data.Title,
		Slug:        data.Slug,
		Description: data.Description,
		Image:       data.Image,
		CreatedAt:   data.CreatedAt,
	}
}

func fromCategoryDomain(data *entity.Category) *model.CategoryModel {
	if data == nil {
		return nil
	}

	return &model.CategoryModel{
		ID:          data.ID,
		Title:       data.Title,
		Slug:        data.Slug,
		Description: data.Description,
		Image:       data.Image,
	}
}
