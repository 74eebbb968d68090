package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// settingsRepository implements the domain.SettingsRepository interface over a single row.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository is the constructor for settingsRepository.
func NewSettingsRepository(db *gorm.DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

func (repo *settingsRepository) Get(ctx context.Context) (*entity.StoreSettings, error) {
	var settingsM model.StoreSettingsModel
	if err := repo.db.WithContext(ctx).Where("id = ?", model.StoreSettingsID).First(&settingsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load store settings")
	}

	return &entity.StoreSettings{
		StoreName:             settingsM.StoreName,
		SupportEmail:          settingsM.SupportEmail,
		Currency:              settingsM.Currency,
		TaxRate:               settingsM.TaxRate,
		FreeShippingThreshold: settingsM.FreeShippingThreshold,
		LowStockThreshold:     settingsM.LowStockThreshold,
		UpdatedAt:             settingsM.UpdatedAt,
	}, nil
}

// Save upserts the settings row.
func (repo *settingsRepository) Save(ctx context.Context, settings *entity.StoreSettings) error {
	settingsM := &model.StoreSettingsModel{
		ID:                    model.StoreSettingsID,
		StoreName:             settings.StoreName,
		SupportEmail:          settings.SupportEmail,
		Currency:              settings.Currency,
		TaxRate:               settings.TaxRate,
		FreeShippingThreshold: settings.FreeShippingThreshold,
		LowStockThreshold:     settings.LowStockThreshold,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(settingsM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save store settings")
	}
	settings.UpdatedAt = settingsM.UpdatedAt

	return nil
}
