package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"storefront/config"
	"storefront/internal/delivery"
	apimiddleware "storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/middleware"
	"storefront/internal/delivery/worker/handler"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

const (
	// PushPath receives Pub/Sub push deliveries; pubsub.localEndpoint points here in development.
	PushPath   = "/push"
	HealthPath = "/health"

	serviceName = "orderworker"
)

type workerServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the order worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer builds the order worker's HTTP server: a health check plus the push endpoint that
// feeds order events to the usecases.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &workerServer{
		cfg:    params.Cfg,
		logger: params.Logger.With(slog.String("service", serviceName)),
		server: newEcho(params.Cfg, params.Logger, params.PushHandler),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newEcho(cfg *config.Config, logger *slog.Logger, push *handler.PushHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)

	// Push failures are answered by the handler itself; this covers routing and body limit errors.
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError

	e.GET(HealthPath, health)
	e.POST(PushPath, push.HandlePush, echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))

	return e
}

func health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok", "service": serviceName})
}

func (s *workerServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting order worker HTTP server", slog.String("host_port", hostPort), slog.String("push_path", PushPath))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down order worker HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
