package handler

import (
	"log/slog"
	"strings"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	OrderUC    usecase.OrderUsecase
	Logger     *slog.Logger
}

// CheckoutHandler places orders and shows customers their order history.
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
	orderUC    usecase.OrderUsecase
	logger     *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUC: params.CheckoutUC,
		orderUC:    params.OrderUC,
		logger:     params.Logger,
	}
}

// AddressRequest is a shipping address
type AddressRequest struct {
	FullName   string `json:"fullName" validate:"required,max=100"`
	Line1      string `json:"line1" validate:"required,max=200"`
	Line2      string `json:"line2" validate:"max=200"`
	City       string `json:"city" validate:"required,max=100"`
	State      string `json:"state" validate:"required,max=100"`
	PostalCode string `json:"postalCode" validate:"required,max=20"`
	Country    string `json:"country" validate:"required,max=100"`
	Phone      string `json:"phone" validate:"required,max=30"`
}

func (r AddressRequest) toEntity() entity.Address {
	return entity.Address{
		FullName:   strings.TrimSpace(r.FullName),
		Line1:      strings.TrimSpace(r.Line1),
		Line2:      strings.TrimSpace(r.Line2),
		City:       strings.TrimSpace(r.City),
		State:      strings.TrimSpace(r.State),
		PostalCode: strings.TrimSpace(r.PostalCode),
		Country:    strings.TrimSpace(r.Country),
		Phone:      strings.TrimSpace(r.Phone),
	}
}

// CheckoutRequest represents the request body for placing an order
type CheckoutRequest struct {
	ShippingAddress  AddressRequest `json:"shippingAddress" validate:"required"`
	ShippingMethodID uuid.UUID      `json:"shippingMethodId" validate:"required"`
}

// VerifyPaymentRequest relays the payment gateway's callback
type VerifyPaymentRequest struct {
	Reference string `json:"reference" validate:"required"`
	PaymentID string `json:"paymentId" validate:"required"`
	Signature string `json:"signature" validate:"required"`
}

// Checkout turns the caller's cart into an order and opens a payment session
func (h *CheckoutHandler) Checkout(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid checkout input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	output, err := h.checkoutUC.Checkout(c.Request().Context(), userID, &usecase.CheckoutInput{
		ShippingAddress:  req.ShippingAddress.toEntity(),
		ShippingMethodID: req.ShippingMethodID,
		IdempotencyKey:   c.Request().Header.Get(constants.HeaderIdempotencyKey),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, output)
}

// VerifyPayment confirms the payment of an order
func (h *CheckoutHandler) VerifyPayment(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req VerifyPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid payment verification input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	order, err := h.checkoutUC.VerifyPayment(c.Request().Context(), userID, &usecase.VerifyPaymentInput{
		Reference: req.Reference,
		PaymentID: req.PaymentID,
		Signature: req.Signature,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, order)
}

// ListMyOrders returns the caller's orders, newest first
func (h *CheckoutHandler) ListMyOrders(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	page, err := pageRequest(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	orders, err := h.orderUC.ListUserOrders(c.Request().Context(), userID, page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, orders)
}

// GetMyOrder returns one of the caller's orders
func (h *CheckoutHandler) GetMyOrder(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.GetUserOrder(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, order)
}
