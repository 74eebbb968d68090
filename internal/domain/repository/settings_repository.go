package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// SettingsRepository persists the single store settings row.
type SettingsRepository interface {
	// Get returns nil without error until settings are saved for the first time.
	Get(ctx context.Context) (*entity.StoreSettings, error)
	Save(ctx context.Context, settings *entity.StoreSettings) error
}
