package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ErrUnknownEvent is returned for event types the worker does not handle.
var ErrUnknownEvent = errors.New("unknown event type")

// ErrMalformedEvent is returned when an event lacks the payload its type requires.
var ErrMalformedEvent = errors.New("malformed event")

type orderEventService struct {
	productRepo  repository.ProductRepository
	settingsRepo repository.SettingsRepository
	notifier     service.NotificationService
	currency     string
	logger       *slog.Logger
}

// OrderEventServiceParams holds dependencies for OrderEventService, injected by Fx.
type OrderEventServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	SettingsRepo repository.SettingsRepository
	Notifier     service.NotificationService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewOrderEventService creates the use case run by the order worker.
func NewOrderEventService(params OrderEventServiceParams) usecase.OrderEventUsecase {
	currency := "INR"
	if params.Config != nil && params.Config.Checkout != nil && params.Config.Checkout.Currency != "" {
		currency = params.Config.Checkout.Currency
	}

	return &orderEventService{
		productRepo:  params.ProductRepo,
		settingsRepo: params.SettingsRepo,
		notifier:     params.Notifier,
		currency:     currency,
		logger:       params.Logger,
	}
}

func (srv *orderEventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *orderEventService) HandleEvent(ctx context.Context, event *service.DomainEvent) error {
	logger := srv.log(ctx).With(slog.String("eventID", event.ID), slog.String("eventType", event.Type))

	switch event.Type {
	case constants.EventOrderPlaced:
		if event.Order == nil {
			return errors.Wrap(ErrMalformedEvent, "order payload missing")
		}
		if err := srv.notifyOrder(ctx, event.Order, "New order "+event.Order.Number); err != nil {
			return err
		}

		return srv.scanLowStock(ctx, event.Order)

	case constants.EventOrderPaid:
		if event.Order == nil {
			return errors.Wrap(ErrMalformedEvent, "order payload missing")
		}

		return srv.notifyOrder(ctx, event.Order, "Order paid "+event.Order.Number)

	case constants.EventOrderStatus:
		if event.Order == nil {
			return errors.Wrap(ErrMalformedEvent, "order payload missing")
		}
		// Status changes are made from the back-office itself.
		logger.Info("Order status changed", slog.String("orderNumber", event.Order.Number), slog.String("status", event.Order.Status))

		return nil

	case constants.EventContactSubmitted:
		if event.Contact == nil {
			return errors.Wrap(ErrMalformedEvent, "contact payload missing")
		}

		return srv.notifyContact(ctx, event.Contact)

	default:
		return errors.Wrapf(ErrUnknownEvent, "%q", event.Type)
	}
}

func (srv *orderEventService) notifyOrder(ctx context.Context, order *service.OrderEventPayload, title string) error {
	body := fmt.Sprintf("%d item(s), total %s %s", order.ItemCount, order.Total.StringFixed(2), order.Currency)
	data := map[string]string{
		"order_id": order.OrderID,
		"number":   order.Number,
		"status":   order.Status,
	}

	if err := srv.notifier.SendTopicNotification(ctx, constants.TopicAdminOrders, title, body, data); err != nil {
		return errors.Wrap(err, "failed to notify order")
	}

	srv.log(ctx).Info("Order notification sent", slog.String("orderNumber", order.Number), slog.String("title", title))

	return nil
}

func (srv *orderEventService) notifyContact(ctx context.Context, contact *service.ContactEventPayload) error {
	subject := contact.Subject
	if subject == "" {
		subject = "(no subject)"
	}
	data := map[string]string{
		"message_id": contact.MessageID,
		"email":      contact.Email,
	}

	err := srv.notifier.SendTopicNotification(ctx, constants.TopicAdminContact,
		"New message from "+contact.Name, subject, data)
	if err != nil {
		return errors.Wrap(err, "failed to notify contact message")
	}

	return nil
}

// scanLowStock alerts the back-office about ordered products at or below the threshold.
func (srv *orderEventService) scanLowStock(ctx context.Context, order *service.OrderEventPayload) error {
	ids := make([]uuid.UUID, 0, len(order.ProductIDs))
	for _, raw := range order.ProductIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			srv.log(ctx).Warn("Skipping invalid product id in event", slog.String("productID", raw))

			continue
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil
	}

	settings, err := srv.settingsRepo.Get(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load store settings")
	}
	if settings == nil {
		settings = entity.DefaultStoreSettings(srv.currency)
	}

	products, err := srv.productRepo.FindLowStock(ctx, settings.LowStockThreshold, ids)
	if err != nil {
		return errors.Wrap(err, "failed to scan stock")
	}
	if len(products) == 0 {
		return nil
	}

	lines := make([]string, 0, len(products))
	data := make(map[string]string, len(products)+1)
	data["order_id"] = order.OrderID
	for _, p := range products {
		lines = append(lines, fmt.Sprintf("%s (%d left)", p.Title, p.Inventory))
		data[p.ID.String()] = fmt.Sprintf("%d", p.Inventory)
	}

	title := fmt.Sprintf("%d product(s) running low", len(products))
	if err := srv.notifier.SendTopicNotification(ctx, constants.TopicAdminStock, title, strings.Join(lines, ", "), data); err != nil {
		return errors.Wrap(err, "failed to notify low stock")
	}

	srv.log(ctx).Info("Low stock alert sent", slog.Int("productCount", len(products)))

	return nil
}

// IsRetryable reports whether redelivering the event may succeed: transient push failures,
// transaction conflicts, database errors and deadlines qualify.
func (srv *orderEventService) IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, service.ErrNotificationUnavailable) ||
		errors.Is(err, domainerrors.ErrTransactionConflict) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var dbErr *domainerrors.DatabaseExecuteError

	return errors.As(err, &dbErr)
}
