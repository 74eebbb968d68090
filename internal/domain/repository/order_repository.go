package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderRepository persists orders.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// LockByID loads the order and holds its row until the surrounding transaction ends.
	LockByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByIdempotencyKey returns nil without error when no order carries the key.
	FindByIdempotencyKey(ctx context.Context, userID uuid.UUID, key string) (*entity.Order, error)

	FindByPaymentReference(ctx context.Context, reference string) (*entity.Order, error)

	// List returns one page of orders newest first, with the total count.
	List(ctx context.Context, filter entity.OrderFilter) ([]*entity.Order, int, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error
	UpdatePayment(ctx context.Context, id uuid.UUID, payment entity.Payment) error

	CountByStatus(ctx context.Context) (map[entity.OrderStatus]int, error)

	// SumRevenue totals orders that were paid and not cancelled.
	SumRevenue(ctx context.Context) (decimal.Decimal, error)
}
