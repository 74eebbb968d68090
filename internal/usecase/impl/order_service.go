package impl

import (
	"context"
	"fmt"
	"log/slog"

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

type orderService struct {
	txManager       repository.TransactionManager
	orderRepo       repository.OrderRepository
	eventPublisher  service.EventPublisher
	defaultPageSize int
	maxPageSize     int
	logger          *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	OrderRepo      repository.OrderRepository
	EventPublisher service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewOrderService creates the order use case.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	defaultPageSize, maxPageSize := pageLimits(params.Config)

	return &orderService{
		txManager:       params.TxManager,
		orderRepo:       params.OrderRepo,
		eventPublisher:  params.EventPublisher,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
		logger:          params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *orderService) ListUserOrders(ctx context.Context, userID uuid.UUID, page entity.PageRequest) (entity.Page[*entity.Order], error) {
	return srv.list(ctx, entity.OrderFilter{UserID: &userID, Page: page})
}

func (srv *orderService) GetUserOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	// Another customer's order is reported as missing.
	if order.UserID != userID {
		return nil, errors.WithStack(domainerrors.ErrOrderNotFound)
	}

	return order, nil
}

func (srv *orderService) ListOrders(ctx context.Context, status *entity.OrderStatus, page entity.PageRequest) (entity.Page[*entity.Order], error) {
	if status != nil && !status.IsValid() {
		return entity.Page[*entity.Order]{}, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("unknown order status %q", *status),
		))
	}

	return srv.list(ctx, entity.OrderFilter{Status: status, Page: page})
}

func (srv *orderService) list(ctx context.Context, filter entity.OrderFilter) (entity.Page[*entity.Order], error) {
	filter.Page = filter.Page.Normalize(srv.defaultPageSize, srv.maxPageSize)

	orders, total, err := srv.orderRepo.List(ctx, filter)
	if err != nil {
		return entity.Page[*entity.Order]{}, errors.Wrap(err, "failed to list orders")
	}

	return entity.NewPage(orders, total, filter.Page), nil
}

func (srv *orderService) GetOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// UpdateStatus applies an allowed transition. Cancelling puts every ordered unit back in stock
// within the same transaction.
func (srv *orderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("unknown order status %q", status),
		))
	}

	var order *entity.Order
	var previous entity.OrderStatus
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		// The row lock makes concurrent transitions of one order apply in turn, so a
		// cancel restocks at most once.
		current, err := orderRepo.LockByID(ctx, orderID)
		if err != nil {
			return errors.Wrap(err, "failed to find order")
		}
		if !current.Status.CanTransitionTo(status) {
			return errors.WithStack(domainerrors.ErrInvalidOrderTransition.WithDetails(
				fmt.Sprintf("%s -> %s", current.Status, status),
			))
		}

		if status == entity.OrderStatusCancelled {
			productRepo := repoFactory.ProductRepo()
			for i := range current.Items {
				item := current.Items[i]
				err := productRepo.AdjustInventory(ctx, item.ProductID, item.Quantity)
				// A deleted product has nothing to restock.
				if err != nil && !errors.Is(err, domainerrors.ErrProductNotFound) {
					return errors.Wrap(err, "failed to restock product")
				}
			}
		}

		if err := orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
			return errors.Wrap(err, "failed to update order status")
		}

		previous = current.Status
		current.Status = status
		order = current

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to change order status")
	}

	srv.log(ctx).Info("Order status changed",
		slog.String("orderNumber", order.Number),
		slog.String("from", string(previous)),
		slog.String("to", string(status)),
	)

	publishEvent(ctx, srv.eventPublisher, srv.log(ctx), newOrderEvent(ctx, constants.EventOrderStatus, order))

	return order, nil
}
