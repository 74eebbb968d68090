package impl

import (
	"context"
	"log/slog"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	fallbackPageSize    = 24
	fallbackMaxPageSize = 100
)

// pageLimits reads listing limits from cfg, falling back when the section is missing.
func pageLimits(cfg *config.Config) (defaultSize, maxSize int) {
	defaultSize, maxSize = fallbackPageSize, fallbackMaxPageSize
	if cfg == nil || cfg.Catalog == nil {
		return defaultSize, maxSize
	}
	if cfg.Catalog.DefaultPageSize > 0 {
		defaultSize = cfg.Catalog.DefaultPageSize
	}
	if cfg.Catalog.MaxPageSize > 0 {
		maxSize = cfg.Catalog.MaxPageSize
	}

	return defaultSize, maxSize
}

// newOrderEvent builds an order event stamped with the request id carried by ctx.
func newOrderEvent(ctx context.Context, eventType string, order *entity.Order) *service.DomainEvent {
	productIDs := make([]string, 0, len(order.Items))
	seen := make(map[uuid.UUID]struct{}, len(order.Items))
	for i := range order.Items {
		id := order.Items[i].ProductID
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		productIDs = append(productIDs, id.String())
	}

	event := service.NewDomainEvent(eventType, deliverycontext.GetRequestIDFromContext(ctx))
	event.Order = &service.OrderEventPayload{
		OrderID:    order.ID.String(),
		Number:     order.Number,
		Email:      order.Email,
		Status:     string(order.Status),
		Total:      order.Total,
		Currency:   order.Currency,
		ItemCount:  order.ItemCount(),
		ProductIDs: productIDs,
	}

	return event
}

// publishEvent hands event to the publisher. A failure is logged and not returned since the
// triggering write has already committed.
func publishEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *service.DomainEvent) {
	if publisher == nil {
		return
	}

	if err := publisher.Publish(ctx, event); err != nil {
		logger.Error("Failed to publish event",
			slog.String("eventID", event.ID),
			slog.String("eventType", event.Type),
			slog.Any("error", err),
		)

		return
	}

	logger.Debug("Event published", slog.String("eventID", event.ID), slog.String("eventType", event.Type))
}

var decimalOne = decimal.NewFromInt(1)
