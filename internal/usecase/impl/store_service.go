package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

type storeService struct {
	shippingRepo   repository.ShippingMethodRepository
	settingsRepo   repository.SettingsRepository
	productRepo    repository.ProductRepository
	categoryRepo   repository.CategoryRepository
	collectionRepo repository.CollectionRepository
	reviewRepo     repository.ReviewRepository
	orderRepo      repository.OrderRepository
	contactRepo    repository.ContactRepository
	userRepo       repository.UserRepository
	currency       string
	logger         *slog.Logger
}

// StoreServiceParams holds dependencies for StoreService, injected by Fx.
type StoreServiceParams struct {
	fx.In

	ShippingRepo   repository.ShippingMethodRepository
	SettingsRepo   repository.SettingsRepository
	ProductRepo    repository.ProductRepository
	CategoryRepo   repository.CategoryRepository
	CollectionRepo repository.CollectionRepository
	ReviewRepo     repository.ReviewRepository
	OrderRepo      repository.OrderRepository
	ContactRepo    repository.ContactRepository
	UserRepo       repository.UserRepository
	Config         *config.Config
	Logger         *slog.Logger
}

// NewStoreService creates the shipping, settings and dashboard use case.
func NewStoreService(params StoreServiceParams) usecase.StoreUsecase {
	currency := "INR"
	if params.Config != nil && params.Config.Checkout != nil && params.Config.Checkout.Currency != "" {
		currency = params.Config.Checkout.Currency
	}

	return &storeService{
		shippingRepo:   params.ShippingRepo,
		settingsRepo:   params.SettingsRepo,
		productRepo:    params.ProductRepo,
		categoryRepo:   params.CategoryRepo,
		collectionRepo: params.CollectionRepo,
		reviewRepo:     params.ReviewRepo,
		orderRepo:      params.OrderRepo,
		contactRepo:    params.ContactRepo,
		userRepo:       params.UserRepo,
		currency:       currency,
		logger:         params.Logger,
	}
}

func (srv *storeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *storeService) ListShippingMethods(ctx context.Context, activeOnly bool) ([]*entity.ShippingMethod, error) {
	methods, err := srv.shippingRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shipping methods")
	}

	return methods, nil
}

func (srv *storeService) CreateShippingMethod(ctx context.Context, input *usecase.ShippingMethodInput) (*entity.ShippingMethod, error) {
	method := &entity.ShippingMethod{}
	if err := applyShippingInput(method, input); err != nil {
		return nil, err
	}

	if err := srv.shippingRepo.Create(ctx, method); err != nil {
		return nil, errors.Wrap(err, "failed to create shipping method")
	}

	srv.log(ctx).Info("Shipping method created", slog.Any("methodID", method.ID), slog.String("name", method.Name))

	return method, nil
}

func (srv *storeService) UpdateShippingMethod(ctx context.Context, id uuid.UUID, input *usecase.ShippingMethodInput) (*entity.ShippingMethod, error) {
	method, err := srv.shippingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find shipping method")
	}
	if err := applyShippingInput(method, input); err != nil {
		return nil, err
	}

	if err := srv.shippingRepo.Update(ctx, method); err != nil {
		return nil, errors.Wrap(err, "failed to update shipping method")
	}

	return method, nil
}

func (srv *storeService) DeleteShippingMethod(ctx context.Context, id uuid.UUID) error {
	if err := srv.shippingRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete shipping method")
	}

	srv.log(ctx).Info("Shipping method deleted", slog.Any("methodID", id))

	return nil
}

func applyShippingInput(method *entity.ShippingMethod, input *usecase.ShippingMethodInput) error {
	name := strings.TrimSpace(input.Name)
	switch {
	case name == "":
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("name is required"))
	case input.Rate.IsNegative():
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("rate must not be negative"))
	case input.MinDays < 0 || input.MaxDays < input.MinDays:
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("invalid delivery window %d-%d days", input.MinDays, input.MaxDays),
		))
	}

	method.Name = name
	method.Description = input.Description
	method.Rate = input.Rate
	method.MinDays = input.MinDays
	method.MaxDays = input.MaxDays
	method.Active = input.Active
	method.SortOrder = input.SortOrder

	return nil
}

func (srv *storeService) GetSettings(ctx context.Context) (*entity.StoreSettings, error) {
	settings, err := srv.settingsRepo.Get(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load store settings")
	}
	if settings == nil {
		return entity.DefaultStoreSettings(srv.currency), nil
	}

	return settings, nil
}

func (srv *storeService) UpdateSettings(ctx context.Context, input *usecase.StoreSettingsInput) (*entity.StoreSettings, error) {
	switch {
	case input.TaxRate.IsNegative() || input.TaxRate.GreaterThanOrEqual(decimalOne):
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("taxRate must be a fraction in [0, 1)"))
	case input.FreeShippingThreshold.IsNegative():
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("freeShippingThreshold must not be negative"))
	case input.LowStockThreshold < 0:
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("lowStockThreshold must not be negative"))
	}

	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if currency == "" {
		currency = srv.currency
	}

	settings := &entity.StoreSettings{
		StoreName:             strings.TrimSpace(input.StoreName),
		SupportEmail:          strings.TrimSpace(input.SupportEmail),
		Currency:              currency,
		TaxRate:               input.TaxRate,
		FreeShippingThreshold: input.FreeShippingThreshold,
		LowStockThreshold:     input.LowStockThreshold,
		UpdatedAt:             time.Now().UTC(),
	}
	if err := srv.settingsRepo.Save(ctx, settings); err != nil {
		return nil, errors.Wrap(err, "failed to save store settings")
	}

	srv.log(ctx).Info("Store settings updated", slog.String("currency", settings.Currency))

	return settings, nil
}

// Dashboard gathers the back-office counters concurrently.
func (srv *storeService) Dashboard(ctx context.Context) (*entity.DashboardStats, error) {
	settings, err := srv.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	stats := &entity.DashboardStats{}
	group, groupCtx := errgroup.WithContext(ctx)

	count := func(dst *int, name string, fn func(context.Context) (int, error)) {
		group.Go(func() error {
			n, err := fn(groupCtx)
			if err != nil {
				return errors.Wrapf(err, "failed to count %s", name)
			}
			*dst = n

			return nil
		})
	}
	count(&stats.Products, "products", srv.productRepo.Count)
	count(&stats.Categories, "categories", srv.categoryRepo.Count)
	count(&stats.Collections, "collections", srv.collectionRepo.Count)
	count(&stats.Reviews, "reviews", srv.reviewRepo.Count)
	count(&stats.ContactMessages, "contact messages", srv.contactRepo.Count)
	count(&stats.Customers, "customers", srv.userRepo.Count)
	count(&stats.LowStockProducts, "low stock products", func(ctx context.Context) (int, error) {
		return srv.productRepo.CountLowStock(ctx, settings.LowStockThreshold)
	})

	group.Go(func() error {
		byStatus, err := srv.orderRepo.CountByStatus(groupCtx)
		if err != nil {
			return errors.Wrap(err, "failed to count orders")
		}
		stats.OrdersByStatus = byStatus

		return nil
	})
	group.Go(func() error {
		revenue, err := srv.orderRepo.SumRevenue(groupCtx)
		if err != nil {
			return errors.Wrap(err, "failed to sum revenue")
		}
		stats.Revenue = revenue

		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}
	if stats.OrdersByStatus == nil {
		stats.OrdersByStatus = map[entity.OrderStatus]int{}
	}

	return stats, nil
}
