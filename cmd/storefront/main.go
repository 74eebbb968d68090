package main

import (
	"context"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/api"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/auth/google"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/payment"
	"storefront/internal/infra/persistence/postgres"
	"storefront/internal/infra/pubsub"
	"storefront/internal/infra/qrcode"
	"storefront/internal/infra/storage"
	"storefront/internal/usecase/impl"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	// Money is rendered as JSON numbers, e.g. "price": 1299.5
	decimal.MarshalJSONWithoutQuotes = true

	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewTransactionManager,
			postgres.NewProductRepository,
			postgres.NewCategoryRepository,
			postgres.NewCollectionRepository,
			postgres.NewReviewRepository,
			postgres.NewCartRepository,
			postgres.NewWishlistRepository,
			postgres.NewOrderRepository,
			postgres.NewShippingMethodRepository,
			postgres.NewSettingsRepository,
			postgres.NewContactRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			google.NewAuthService,
			qrcode.NewQRCodeService,
			storage.NewBlobStorage,
			payment.NewPaymentGateway,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewCatalogService,
			impl.NewAdminCatalogService,
			impl.NewReviewService,
			impl.NewCartService,
			impl.NewWishlistService,
			impl.NewCheckoutService,
			impl.NewOrderService,
			impl.NewStoreService,
			impl.NewUploadService,
			impl.NewContactService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewCatalogHandler,
			handler.NewReviewHandler,
			handler.NewCartHandler,
			handler.NewCheckoutHandler,
			handler.NewContactHandler,
			handler.NewAdminCatalogHandler,
			handler.NewAdminStoreHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
