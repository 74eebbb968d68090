package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

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
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	defaultOrderNumberPrefix = "SF-"
	checkoutRetryBackoff     = 50 * time.Millisecond
)

type checkoutService struct {
	txManager      repository.TransactionManager
	orderRepo      repository.OrderRepository
	gateway        service.PaymentGateway
	eventPublisher service.EventPublisher
	currency       string
	numberPrefix   string
	maxAttempts    int
	logger         *slog.Logger
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	OrderRepo      repository.OrderRepository
	Gateway        service.PaymentGateway
	EventPublisher service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewCheckoutService creates the checkout use case.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	srv := &checkoutService{
		txManager:      params.TxManager,
		orderRepo:      params.OrderRepo,
		gateway:        params.Gateway,
		eventPublisher: params.EventPublisher,
		currency:       "INR",
		numberPrefix:   defaultOrderNumberPrefix,
		maxAttempts:    1,
		logger:         params.Logger,
	}
	if params.Config != nil && params.Config.Checkout != nil {
		if params.Config.Checkout.Currency != "" {
			srv.currency = params.Config.Checkout.Currency
		}
		if params.Config.Checkout.OrderNumberPrefix != "" {
			srv.numberPrefix = params.Config.Checkout.OrderNumberPrefix
		}
		if params.Config.Checkout.MaxAttempts > 0 {
			srv.maxAttempts = params.Config.Checkout.MaxAttempts
		}
	}

	return srv
}

func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout places an order for the user's cart. Inventory is reserved and the cart cleared in
// one transaction; the payment session is opened after it commits.
func (srv *checkoutService) Checkout(ctx context.Context, userID uuid.UUID, input *usecase.CheckoutInput) (*usecase.CheckoutOutput, error) {
	key := strings.TrimSpace(input.IdempotencyKey)
	if key != "" {
		existing, err := srv.orderRepo.FindByIdempotencyKey(ctx, userID, key)
		if err != nil {
			return nil, errors.Wrap(err, "failed to look up idempotency key")
		}
		if existing != nil {
			srv.log(ctx).Info("Checkout replayed", slog.String("orderNumber", existing.Number))

			return srv.resume(ctx, existing)
		}
	}

	var order *entity.Order
	var err error
	for attempt := 1; attempt <= srv.maxAttempts; attempt++ {
		order, err = srv.placeOrder(ctx, userID, input, key)
		if err == nil || !errors.Is(err, domainerrors.ErrTransactionConflict) || attempt == srv.maxAttempts {
			break
		}

		srv.log(ctx).Warn("Checkout transaction conflict, retrying", slog.Int("attempt", attempt), slog.Any("error", err))

		select {
		case <-ctx.Done():
			return nil, errors.Wrap(ctx.Err(), "checkout cancelled")
		case <-time.After(checkoutRetryBackoff * time.Duration(attempt)):
		}
	}
	if err != nil {
		// A concurrent submission with the same key won the insert.
		if key != "" && errors.Is(err, domainerrors.ErrConflict) {
			if existing, findErr := srv.orderRepo.FindByIdempotencyKey(ctx, userID, key); findErr == nil && existing != nil {
				return srv.resume(ctx, existing)
			}
		}

		return nil, errors.Wrap(err, "failed to place order")
	}

	srv.log(ctx).Info("Order placed",
		slog.Any("orderID", order.ID),
		slog.String("orderNumber", order.Number),
		slog.String("total", order.Total.StringFixed(2)),
		slog.Int("itemCount", order.ItemCount()),
	)

	publishEvent(ctx, srv.eventPublisher, srv.log(ctx), newOrderEvent(ctx, constants.EventOrderPlaced, order))

	return srv.resume(ctx, order)
}

// resume returns the order with its payment session, opening one when the order has none yet.
func (srv *checkoutService) resume(ctx context.Context, order *entity.Order) (*usecase.CheckoutOutput, error) {
	if order.Payment.Reference != "" || order.Status != entity.OrderStatusPendingPayment {
		return &usecase.CheckoutOutput{
			Order: order,
			Payment: &service.PaymentSession{
				Provider:    order.Payment.Provider,
				Reference:   order.Payment.Reference,
				RedirectURL: order.Payment.RedirectURL,
			},
		}, nil
	}

	session, err := srv.gateway.CreatePayment(ctx, service.PaymentRequest{
		OrderID:  order.ID.String(),
		Receipt:  order.Number,
		Amount:   order.Total,
		Currency: order.Currency,
		Email:    order.Email,
	})
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPaymentFailed.WithDetails(err.Error()), "failed to create payment session")
	}

	payment := entity.Payment{
		Provider:    session.Provider,
		Reference:   session.Reference,
		RedirectURL: session.RedirectURL,
	}
	if err := srv.orderRepo.UpdatePayment(ctx, order.ID, payment); err != nil {
		return nil, errors.Wrap(err, "failed to store payment reference")
	}
	order.Payment = payment

	return &usecase.CheckoutOutput{Order: order, Payment: session}, nil
}

func (srv *checkoutService) placeOrder(ctx context.Context, userID uuid.UUID, input *usecase.CheckoutInput, key string) (*entity.Order, error) {
	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		cartRepo := repoFactory.CartRepo()
		if err := cartRepo.Lock(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to lock cart")
		}
		cart, err := cartRepo.Get(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to load cart")
		}
		if cart.IsEmpty() {
			return errors.WithStack(domainerrors.ErrCartEmpty)
		}

		method, err := repoFactory.ShippingMethodRepo().FindByID(ctx, input.ShippingMethodID)
		if err != nil {
			return errors.Wrap(err, "failed to find shipping method")
		}
		if !method.Active {
			return errors.WithStack(domainerrors.ErrShippingMethodInactive)
		}

		settings, err := repoFactory.SettingsRepo().Get(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to load store settings")
		}
		if settings == nil {
			settings = entity.DefaultStoreSettings(srv.currency)
		}

		items, err := reserveInventory(ctx, repoFactory.ProductRepo(), cart)
		if err != nil {
			return err
		}

		subtotal := decimal.Zero
		for i := range items {
			subtotal = subtotal.Add(items[i].LineTotal)
		}
		shippingFee := settings.ShippingFee(subtotal, method.Rate)
		tax := settings.Tax(subtotal)

		order = &entity.Order{
			Number:          srv.orderNumber(),
			UserID:          userID,
			Email:           user.Email,
			Items:           items,
			ShippingAddress: input.ShippingAddress,
			Shipping: entity.ShippingSnapshot{
				MethodID: method.ID,
				Name:     method.Name,
				Rate:     method.Rate,
			},
			Subtotal:       subtotal,
			ShippingFee:    shippingFee,
			Tax:            tax,
			Total:          subtotal.Add(shippingFee).Add(tax),
			Currency:       settings.Currency,
			Status:         entity.OrderStatusPendingPayment,
			Payment:        entity.Payment{Provider: srv.gateway.Provider()},
			IdempotencyKey: key,
		}
		if err := repoFactory.OrderRepo().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		cart.Clear()
		if err := cartRepo.Save(ctx, cart); err != nil {
			return errors.Wrap(err, "failed to clear cart")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// reserveInventory locks the cart's products, checks stock for every product across its lines,
// takes the units and prices each line at the current product price.
func reserveInventory(ctx context.Context, productRepo repository.ProductRepository, cart *entity.Cart) ([]entity.OrderItem, error) {
	products, err := productRepo.LockByIDs(ctx, cart.ProductIDs())
	if err != nil {
		return nil, errors.Wrap(err, "failed to lock products")
	}

	byID := make(map[uuid.UUID]*entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	for _, id := range cart.ProductIDs() {
		product, ok := byID[id]
		if !ok {
			return nil, errors.WithStack(domainerrors.ErrProductNotFound.WithDetails(
				fmt.Sprintf("product %s is no longer available", id),
			))
		}
		if err := checkStock(product, cart.QuantityOfProduct(id)); err != nil {
			return nil, err
		}
		if err := productRepo.AdjustInventory(ctx, id, -cart.QuantityOfProduct(id)); err != nil {
			return nil, errors.Wrap(err, "failed to reserve inventory")
		}
	}

	items := make([]entity.OrderItem, 0, len(cart.Items))
	for i := range cart.Items {
		line := cart.Items[i]
		product := byID[line.ProductID]
		image := product.PrimaryImage()
		if image == "" {
			image = line.Image
		}
		items = append(items, entity.OrderItem{
			ProductID: product.ID,
			Title:     product.Title,
			Slug:      product.Slug,
			Image:     image,
			Price:     product.Price,
			Size:      line.Size,
			Color:     line.Color,
			Quantity:  line.Quantity,
			LineTotal: product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))),
		})
	}

	return items, nil
}

func (srv *checkoutService) orderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])

	return srv.numberPrefix + time.Now().UTC().Format("060102") + "-" + suffix
}

// VerifyPayment checks the gateway signature for the user's pending order and marks it paid.
func (srv *checkoutService) VerifyPayment(ctx context.Context, userID uuid.UUID, input *usecase.VerifyPaymentInput) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByPaymentReference(ctx, input.Reference)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order")
	}
	if order.UserID != userID {
		return nil, errors.WithStack(domainerrors.ErrOrderNotFound)
	}
	if order.Status != entity.OrderStatusPendingPayment {
		return nil, errors.WithStack(domainerrors.ErrOrderNotPayable.WithDetails(
			fmt.Sprintf("order %s is %s", order.Number, order.Status),
		))
	}

	if !srv.gateway.VerifySignature(service.PaymentConfirmation{
		Reference: input.Reference,
		PaymentID: input.PaymentID,
		Signature: input.Signature,
	}) {
		srv.log(ctx).Warn("Payment signature rejected", slog.String("orderNumber", order.Number))

		return nil, errors.WithStack(domainerrors.ErrPaymentSignatureInvalid)
	}

	paidAt := time.Now().UTC()
	payment := order.Payment
	payment.PaymentID = input.PaymentID
	payment.PaidAt = &paidAt

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		// Re-read under a row lock so a concurrent cancel is not overwritten.
		current, err := orderRepo.LockByID(ctx, order.ID)
		if err != nil {
			return errors.Wrap(err, "failed to reload order")
		}
		if !current.Status.CanTransitionTo(entity.OrderStatusPaid) {
			return errors.WithStack(domainerrors.ErrOrderNotPayable.WithDetails(
				fmt.Sprintf("order %s is %s", current.Number, current.Status),
			))
		}

		if err := orderRepo.UpdatePayment(ctx, order.ID, payment); err != nil {
			return errors.Wrap(err, "failed to store payment")
		}
		if err := orderRepo.UpdateStatus(ctx, order.ID, entity.OrderStatusPaid); err != nil {
			return errors.Wrap(err, "failed to mark order paid")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to confirm payment")
	}

	order.Payment = payment
	order.Status = entity.OrderStatusPaid

	srv.log(ctx).Info("Order paid", slog.String("orderNumber", order.Number), slog.String("paymentID", payment.PaymentID))

	publishEvent(ctx, srv.eventPublisher, srv.log(ctx), newOrderEvent(ctx, constants.EventOrderPaid, order))

	return order, nil
}
