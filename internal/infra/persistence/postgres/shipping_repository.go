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

// shippingMethodRepository implements the domain.ShippingMethodRepository interface.
type shippingMethodRepository struct {
	db *gorm.DB
}

// NewShippingMethodRepository is the constructor for shippingMethodRepository.
func NewShippingMethodRepository(db *gorm.DB) repository.ShippingMethodRepository {
	return &shippingMethodRepository{db: db}
}

func (repo *shippingMethodRepository) List(ctx context.Context, activeOnly bool) ([]*entity.ShippingMethod, error) {
	query := repo.db.WithContext(ctx)
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var methodModels []*model.ShippingMethodModel
	if err := query.Order("sort_order ASC, name ASC").Find(&methodModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list shipping methods")
	}

	methods := make([]*entity.ShippingMethod, 0, len(methodModels))
	for _, m := range methodModels {
		methods = append(methods, toShippingMethodDomain(m))
	}

	return methods, nil
}

func (repo *shippingMethodRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ShippingMethod, error) {
	var methodM model.ShippingMethodModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&methodM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrShippingMethodNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find shipping method")
	}

	return toShippingMethodDomain(&methodM), nil
}

func (repo *shippingMethodRepository) Create(ctx context.Context, method *entity.ShippingMethod) error {
	methodM := fromShippingMethodDomain(method)

	if err := repo.db.WithContext(ctx).Create(methodM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("rate must not be negative")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shipping method")
	}
	method.ID = methodM.ID

	return nil
}

func (repo *shippingMethodRepository) Update(ctx context.Context, method *entity.ShippingMethod) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ShippingMethodModel{}).
		Where("id = ?", method.ID).
		Updates(map[string]any{
			"name":        method.Name,
			"description": method.Description,
			"rate":        method.Rate,
			"min_days":    method.MinDays,
			"max_days":    method.MaxDays,
			"active":      method.Active,
			"sort_order":  method.SortOrder,
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WithDetails("rate must not be negative")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update shipping method")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrShippingMethodNotFound
	}

	return nil
}

func (repo *shippingMethodRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ShippingMethodModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete shipping method")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrShippingMethodNotFound
	}

	return nil
}

func toShippingMethodDomain(data *model.ShippingMethodModel) *entity.ShippingMethod {
	return &entity.ShippingMethod{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Rate:        data.Rate,
		MinDays:     data.MinDays,
		MaxDays:     data.MaxDays,
		Active:      data.Active,
		SortOrder:   data.SortOrder,
	}
}

func fromShippingMethodDomain(data *entity.ShippingMethod) *model.ShippingMethodModel {
	return &model.ShippingMethodModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Rate:        data.Rate,
		MinDays:     data.MinDays,
		MaxDays:     data.MaxDays,
		Active:      data.Active,
		SortOrder:   data.SortOrder,
	}
}
