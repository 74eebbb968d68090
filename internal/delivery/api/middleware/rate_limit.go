package middleware

import (
	"time"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

const (
	defaultRequestsPerSecond = 0.2
	defaultBurst             = 3
	limiterExpiry            = 10 * time.Minute
)

// NewRateLimiter throttles a route group per client IP. Visitors idle for limiterExpiry are
// forgotten.
func NewRateLimiter(cfg *config.RateLimitConfig) echo.MiddlewareFunc {
	requestsPerSecond := defaultRequestsPerSecond
	burst := defaultBurst
	if cfg != nil && cfg.RequestsPerSecond > 0 {
		requestsPerSecond = cfg.RequestsPerSecond
	}
	if cfg != nil && cfg.Burst > 0 {
		burst = cfg.Burst
	}

	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(requestsPerSecond),
		Burst:     burst,
		ExpiresIn: limiterExpiry,
	})

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return errors.WithStack(domainerrors.ErrForbidden.WithDetails("client could not be identified"))
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return errors.WithStack(domainerrors.ErrRateLimited)
		},
	})
}
