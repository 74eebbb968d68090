package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
)

// CheckoutInput turns the user's cart into an order.
type CheckoutInput struct {
	ShippingAddress  entity.Address
	ShippingMethodID uuid.UUID
	// IdempotencyKey makes retried submissions return the order created first.
	IdempotencyKey string
}

// CheckoutOutput is the placed order and the payment session that collects it.
type CheckoutOutput struct {
	Order   *entity.Order          `json:"order"`
	Payment *service.PaymentSession `json:"payment"`
}

// VerifyPaymentInput is the gateway callback relayed by the client.
type VerifyPaymentInput struct {
	Reference string
	PaymentID string
	Signature string
}

// CheckoutUsecase places orders and confirms their payment.
type CheckoutUsecase interface {
	Checkout(ctx context.Context, userID uuid.UUID, input *CheckoutInput) (*CheckoutOutput, error)
	VerifyPayment(ctx context.Context, userID uuid.UUID, input *VerifyPaymentInput) (*entity.Order, error)
}

// OrderUsecase reads orders and drives their fulfilment lifecycle.
type OrderUsecase interface {
	ListUserOrders(ctx context.Context, userID uuid.UUID, page entity.PageRequest) (entity.Page[*entity.Order], error)

	// GetUserOrder returns the order only when it belongs to userID.
	GetUserOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)

	ListOrders(ctx context.Context, status *entity.OrderStatus, page entity.PageRequest) (entity.Page[*entity.Order], error)
	GetOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error)

	// UpdateStatus moves an order along its lifecycle. Cancelling returns the units to stock.
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error)
}
