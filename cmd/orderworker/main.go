package main

import (
	"context"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/worker"
	"storefront/internal/delivery/worker/handler"
	"storefront/internal/domain/service"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/notification"
	"storefront/internal/infra/persistence/postgres"
	"storefront/internal/usecase/impl"

	"github.com/pkg/errors"
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
	decimal.MarshalJSONWithoutQuotes = true

	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
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
			postgres.NewProductRepository,
			postgres.NewSettingsRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newNotificationService,
		),
	)
}

// newNotificationService pushes through Firebase when it is configured and logs otherwise.
func newNotificationService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.NotificationService, error) {
	if cfg.Firebase == nil || cfg.Firebase.ProjectID == "" {
		logger.Warn("Firebase not configured, notifications will only be logged")

		return notification.NewLogNotifier(logger), nil
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase service")
	}

	return svc, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewOrderEventService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
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
