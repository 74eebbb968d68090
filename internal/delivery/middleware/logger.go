package middleware

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware logs one line per request when debug logging is enabled.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.debug || strings.HasPrefix(c.Request().URL.Path, "/health") {
			return next(c)
		}

		start := time.Now()
		err := next(c)
		// Let the error handler write the response first so the logged status is final.
		if err != nil {
			c.Error(err)
		}
		m.logRequest(c, start, err)

		return nil
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	fields := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("uri", req.URL.Path),
		slog.Int("status", res.Status),
		slog.Int64("bytes_out", res.Size),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}
	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	if res.Status >= 400 {
		logLevel = slog.LevelWarn
	}
	if res.Status >= 500 {
		logLevel = slog.LevelError
	}

	m.logger.LogAttrs(context.Background(), logLevel, "HTTP Request", fields...)
}
