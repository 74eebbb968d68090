package handler

import (
	"log/slog"
	"strings"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ContactHandlerParams holds dependencies for ContactHandler, injected by Fx.
type ContactHandlerParams struct {
	fx.In

	ContactUC usecase.ContactUsecase
	Logger    *slog.Logger
}

// ContactHandler receives contact form messages.
type ContactHandler struct {
	contactUC usecase.ContactUsecase
	logger    *slog.Logger
}

// NewContactHandler is the constructor for ContactHandler
func NewContactHandler(params ContactHandlerParams) *ContactHandler {
	return &ContactHandler{
		contactUC: params.ContactUC,
		logger:    params.Logger,
	}
}

// ContactRequest represents the contact form
type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email,max=254"`
	Subject string `json:"subject" validate:"max=200"`
	Message string `json:"message" validate:"required,min=10,max=5000"`
}

// Submit stores a contact form message
func (h *ContactHandler) Submit(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid contact input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	msg, err := h.contactUC.Submit(c.Request().Context(), &usecase.ContactInput{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, map[string]any{
		"id":      msg.ID,
		"message": "Thanks for reaching out, we will get back to you soon",
	})
}

// ListMessages returns one page of received messages for the back-office
func (h *ContactHandler) ListMessages(c echo.Context) error {
	page, err := pageRequest(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	messages, err := h.contactUC.ListMessages(c.Request().Context(), page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, messages)
}
