package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderEventPayload is the order data carried by order events.
type OrderEventPayload struct {
	OrderID    string          `json:"order_id"`
	Number     string          `json:"number"`
	Email      string          `json:"email"`
	Status     string          `json:"status"`
	Total      decimal.Decimal `json:"total"`
	Currency   string          `json:"currency"`
	ItemCount  int             `json:"item_count"`
	ProductIDs []string        `json:"product_ids"`
}

// ContactEventPayload is the contact form data carried by contact events.
type ContactEventPayload struct {
	MessageID string `json:"message_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
}

// DomainEvent is published by the storefront and processed by the order worker.
type DomainEvent struct {
	ID         string               `json:"id"`
	Type       string               `json:"type"`
	RequestID  string               `json:"request_id,omitempty"` // For distributed tracing
	OccurredAt time.Time            `json:"occurred_at"`
	Order      *OrderEventPayload   `json:"order,omitempty"`
	Contact    *ContactEventPayload `json:"contact,omitempty"`
}

// NewDomainEvent stamps a new event of the given type.
func NewDomainEvent(eventType, requestID string) *DomainEvent {
	return &DomainEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		RequestID:  requestID,
		OccurredAt: time.Now().UTC(),
	}
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish sends an event for asynchronous processing.
	Publish(ctx context.Context, event *DomainEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
