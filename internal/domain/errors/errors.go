package errors

import (
	"net/http"

	"storefront/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// Is matches any BaseError carrying the same error code, so copies made by WithDetails
// still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"This email is already registered",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"Failed to create user",
		"",
	)

	// Authentication-related errors
	ErrAuthNotFound = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_NOT_FOUND",
		"Authentication method not found",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"Invalid or expired refresh token",
		"",
	)

	ErrRefreshTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_EXPIRED",
		"Refresh token has expired",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Failed to process password",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"Password does not meet the strength requirements",
		"",
	)

	ErrSessionLimitExceeded = NewBaseError(
		http.StatusTooManyRequests,
		"SESSION_LIMIT_EXCEEDED",
		"Maximum number of active sessions reached",
		"",
	)

	// OAuth-related errors
	ErrOAuthFailed = NewBaseError(
		http.StatusUnauthorized,
		"OAUTH_FAILED",
		"OAuth authentication failed",
		"",
	)

	ErrOAuthTokenInvalid = NewBaseError(
		http.StatusBadRequest,
		"OAUTH_TOKEN_INVALID",
		"Invalid ID token",
		"",
	)

	// Catalog-related errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	ErrProductSlugExists = NewBaseError(
		http.StatusConflict,
		"PRODUCT_SLUG_EXISTS",
		"A product with this slug already exists",
		"",
	)

	ErrInvalidProduct = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PRODUCT",
		"Product data is invalid",
		"",
	)

	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"CATEGORY_NOT_FOUND",
		"Category not found",
		"",
	)

	ErrCategorySlugExists = NewBaseError(
		http.StatusConflict,
		"CATEGORY_SLUG_EXISTS",
		"A category with this slug already exists",
		"",
	)

	ErrCollectionNotFound = NewBaseError(
		http.StatusNotFound,
		"COLLECTION_NOT_FOUND",
		"Collection not found",
		"",
	)

	ErrCollectionSlugExists = NewBaseError(
		http.StatusConflict,
		"COLLECTION_SLUG_EXISTS",
		"A collection with this slug already exists",
		"",
	)

	ErrInvalidFilter = NewBaseError(
		http.StatusBadRequest,
		"INVALID_FILTER",
		"Invalid product filter",
		"",
	)

	// Review-related errors
	ErrReviewNotFound = NewBaseError(
		http.StatusNotFound,
		"REVIEW_NOT_FOUND",
		"Review not found",
		"",
	)

	ErrReviewAlreadyExists = NewBaseError(
		http.StatusConflict,
		"REVIEW_ALREADY_EXISTS",
		"You have already reviewed this product",
		"",
	)

	ErrReviewForbidden = NewBaseError(
		http.StatusForbidden,
		"REVIEW_FORBIDDEN",
		"You can only delete your own reviews",
		"",
	)

	ErrInvalidRating = NewBaseError(
		http.StatusBadRequest,
		"INVALID_RATING",
		"Rating must be between 1 and 5",
		"",
	)

	// Cart and wishlist errors
	ErrCartItemNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_ITEM_NOT_FOUND",
		"Cart item not found",
		"",
	)

	ErrCartEmpty = NewBaseError(
		http.StatusBadRequest,
		"CART_EMPTY",
		"Your cart is empty",
		"",
	)

	ErrInvalidQuantity = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QUANTITY",
		"Quantity must be at least 1",
		"",
	)

	ErrOutOfStock = NewBaseError(
		http.StatusConflict,
		"OUT_OF_STOCK",
		"Not enough stock for the requested quantity",
		"",
	)

	ErrWishlistItemNotFound = NewBaseError(
		http.StatusNotFound,
		"WISHLIST_ITEM_NOT_FOUND",
		"Product is not in your wishlist",
		"",
	)

	// Order and payment errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	ErrInvalidOrderTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_ORDER_TRANSITION",
		"Order status change is not allowed",
		"",
	)

	ErrOrderNotPayable = NewBaseError(
		http.StatusConflict,
		"ORDER_NOT_PAYABLE",
		"Order is not awaiting payment",
		"",
	)

	ErrPaymentSignatureInvalid = NewBaseError(
		http.StatusBadRequest,
		"PAYMENT_SIGNATURE_INVALID",
		"Payment signature verification failed",
		"",
	)

	ErrPaymentFailed = NewBaseError(
		http.StatusBadGateway,
		"PAYMENT_FAILED",
		"Payment provider request failed",
		"",
	)

	ErrShippingMethodNotFound = NewBaseError(
		http.StatusNotFound,
		"SHIPPING_METHOD_NOT_FOUND",
		"Shipping method not found",
		"",
	)

	ErrShippingMethodInactive = NewBaseError(
		http.StatusBadRequest,
		"SHIPPING_METHOD_INACTIVE",
		"Shipping method is not available",
		"",
	)

	// Upload-related errors
	ErrUploadTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"UPLOAD_TOO_LARGE",
		"Uploaded file is too large",
		"",
	)

	ErrUnsupportedMediaType = NewBaseError(
		http.StatusUnsupportedMediaType,
		"UNSUPPORTED_MEDIA_TYPE",
		"Only png, jpg, jpeg, webp and gif images are accepted",
		"",
	)

	ErrUploadFailed = NewBaseError(
		http.StatusInternalServerError,
		"UPLOAD_FAILED",
		"Failed to store the uploaded file",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	ErrTransactionConflict = NewBaseError(
		http.StatusConflict,
		"TRANSACTION_CONFLICT",
		"The request conflicted with a concurrent update, please retry",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)

	ErrRateLimited = NewBaseError(
		http.StatusTooManyRequests,
		"RATE_LIMITED",
		"Too many requests, please slow down",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
