package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ShippingMethodRepository persists shipping options.
type ShippingMethodRepository interface {
	// List returns methods by sort order; activeOnly hides disabled ones.
	List(ctx context.Context, activeOnly bool) ([]*entity.ShippingMethod, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ShippingMethod, error)
	Create(ctx context.Context, method *entity.ShippingMethod) error
	Update(ctx context.Context, method *entity.ShippingMethod) error
	Delete(ctx context.Context, id uuid.UUID) error
}
