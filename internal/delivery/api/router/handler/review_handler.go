package handler

import (
	"log/slog"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// ReviewHandler serves product reviews to shoppers and the back-office.
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

// CreateReviewRequest represents the request body for reviewing a product
type CreateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=2000"`
}

// ListProductReviews returns a product's reviews, newest first
func (h *ReviewHandler) ListProductReviews(c echo.Context) error {
	reviews, err := h.reviewUC.ListProductReviews(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, reviews)
}

// CreateReview records the caller's review of a product
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	review, err := h.reviewUC.CreateReview(c.Request().Context(), userID, &usecase.CreateReviewInput{
		ProductSlug: c.Param("slug"),
		Rating:      req.Rating,
		Comment:     req.Comment,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, review)
}

// DeleteOwnReview removes one of the caller's reviews
func (h *ReviewHandler) DeleteOwnReview(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	reviewID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.reviewUC.DeleteOwnReview(c.Request().Context(), userID, reviewID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]string{"message": "Review deleted"})
}

// AdminListReviews returns one page of every review
func (h *ReviewHandler) AdminListReviews(c echo.Context) error {
	page, err := pageRequest(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	reviews, err := h.reviewUC.ListReviews(c.Request().Context(), page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, reviews)
}

// AdminDeleteReview removes any review
func (h *ReviewHandler) AdminDeleteReview(c echo.Context) error {
	reviewID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.reviewUC.DeleteReview(c.Request().Context(), reviewID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]string{"message": "Review deleted"})
}
