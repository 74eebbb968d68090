package middleware

import (
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// maxRequestIDLength bounds client supplied request ids before they reach the logs.
const maxRequestIDLength = 128

// RequestIDMiddleware assigns each request an id and a logger carrying it.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process reuses the caller's X-Request-Id when it is usable, otherwise it generates one.
// The id is echoed in the response header and stored in both the echo and request contexts.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if !validRequestID(requestID) {
			requestID = uuid.New().String()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		reqLogger := m.logger.With(slog.String("request_id", requestID))

		ctx := c.Request().Context()
		ctx = deliverycontext.WithRequestID(ctx, requestID)
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// validRequestID accepts short ids made of printable ASCII.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}

	return true
}
