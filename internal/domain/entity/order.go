package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPendingPayment OrderStatus = "pending_payment"
	OrderStatusPaid           OrderStatus = "paid"
	OrderStatusProcessing     OrderStatus = "processing"
	OrderStatusShipped        OrderStatus = "shipped"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPendingPayment: {OrderStatusPaid, OrderStatusCancelled},
	OrderStatusPaid:           {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing:     {OrderStatusShipped},
	OrderStatusShipped:        {OrderStatusDelivered},
}

// IsValid checks if the status is a known value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPendingPayment, OrderStatusPaid, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether an order in status s may move to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// OrderItem is the priced snapshot of a cart line taken at checkout.
type OrderItem struct {
	ProductID uuid.UUID       `json:"productId"`
	Title     string          `json:"title"`
	Slug      string          `json:"slug"`
	Image     string          `json:"image"`
	Price     decimal.Decimal `json:"price"`
	Size      string          `json:"size,omitempty"`
	Color     string          `json:"color,omitempty"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// Address is a postal shipping address.
type Address struct {
	FullName   string `json:"fullName"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
}

// ShippingSnapshot freezes the chosen shipping method on the order.
type ShippingSnapshot struct {
	MethodID uuid.UUID       `json:"methodId"`
	Name     string          `json:"name"`
	Rate     decimal.Decimal `json:"rate"`
}

// Payment records the gateway session that collects the order total.
type Payment struct {
	Provider    string     `json:"provider"`
	Reference   string     `json:"reference"`             // Gateway-side order/session id.
	PaymentID   string     `json:"paymentId,omitempty"`   // Set once the customer pays.
	RedirectURL string     `json:"redirectUrl,omitempty"` // Where the client sends the customer to pay.
	PaidAt      *time.Time `json:"paidAt,omitempty"`
}

// Order is a placed checkout.
type Order struct {
	ID              uuid.UUID        `json:"id"`
	Number          string           `json:"number"`
	UserID          uuid.UUID        `json:"userId"`
	Email           string           `json:"email"`
	Items           []OrderItem      `json:"items"`
	ShippingAddress Address          `json:"shippingAddress"`
	Shipping        ShippingSnapshot `json:"shipping"`
	Subtotal        decimal.Decimal  `json:"subtotal"`
	ShippingFee     decimal.Decimal  `json:"shippingFee"`
	Tax             decimal.Decimal  `json:"tax"`
	Total           decimal.Decimal  `json:"total"`
	Currency        string           `json:"currency"`
	Status          OrderStatus      `json:"status"`
	Payment         Payment          `json:"payment"`
	IdempotencyKey  string           `json:"-"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// ItemCount sums the quantities of all lines.
func (o *Order) ItemCount() int {
	count := 0
	for i := range o.Items {
		count += o.Items[i].Quantity
	}

	return count
}

// OrderFilter narrows order listings.
type OrderFilter struct {
	UserID *uuid.UUID
	Status *OrderStatus
	Page   PageRequest
}
