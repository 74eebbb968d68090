// Package response writes the JSON envelopes returned by the storefront API.
package response

import (
	"net/http"

	"storefront/internal/delivery/api/validator"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "OUT_OF_STOCK"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Additional error context (only for 4xx errors)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// OK returns a 200 response
func OK(c echo.Context, data any) error {
	return Success(c, http.StatusOK, data)
}

// Created returns a 201 response
func Created(c echo.Context, data any) error {
	return Success(c, http.StatusCreated, data)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= 500 || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}
	if s, ok := details.(string); ok && s == "" {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BadRequestWithDetails returns a 400 error with details
func BadRequestWithDetails(c echo.Context, errorCode string, message string, details any) error {
	return Error(c, http.StatusBadRequest, errorCode, message, details)
}

// BindingError returns a binding error response
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, "INVALID_INPUT", message, nil)
}

// ValidationError returns a 400 error listing the rejected fields
func ValidationError(c echo.Context, err error) error {
	var details any = err.Error()
	var validationErr *validator.Error
	if errors.As(err, &validationErr) {
		details = validationErr.Fields
	}

	return Error(c, http.StatusBadRequest, domainerrors.ErrValidationFailed.ErrorCode(),
		domainerrors.ErrValidationFailed.Message(), details)
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

// NotFound returns a 404 error
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError writes domain errors as their HTTP response and passes anything else on
// to the central error handler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
