package usecase

import (
	"context"

	"storefront/internal/domain/service"
)

// OrderEventUsecase reacts to domain events delivered to the order worker.
type OrderEventUsecase interface {
	// HandleEvent processes one event. Errors for which IsRetryable reports true
	// should be redelivered; any other error is final.
	HandleEvent(ctx context.Context, event *service.DomainEvent) error

	IsRetryable(err error) bool
}
