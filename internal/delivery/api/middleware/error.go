package middleware

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// httpErrorCodes names the echo errors raised by routing and built-in middleware.
var httpErrorCodes = map[int]string{
	http.StatusNotFound:              "NOT_FOUND",
	http.StatusMethodNotAllowed:      "METHOD_NOT_ALLOWED",
	http.StatusRequestEntityTooLarge: "PAYLOAD_TOO_LARGE",
	http.StatusTooManyRequests:       "RATE_LIMITED",
	http.StatusUnsupportedMediaType:  "UNSUPPORTED_MEDIA_TYPE",
}

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.Any("error", err),
				slog.String("code", appErr.ErrorCode()),
				slog.String("path", c.Request().URL.Path),
			)
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok && msg != "" {
			message = msg
		}
		code, ok := httpErrorCodes[httpErr.Code]
		if !ok {
			code = "HTTP_ERROR"
		}

		_ = response.Error(c, httpErr.Code, code, message, nil)

		return
	}

	// Default to internal error, log the error but return a generic message (do not expose internal details)
	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later")
}
