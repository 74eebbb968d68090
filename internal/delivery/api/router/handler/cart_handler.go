package handler

import (
	"log/slog"
	"strings"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC     usecase.CartUsecase
	WishlistUC usecase.WishlistUsecase
	Logger     *slog.Logger
}

// CartHandler serves the signed-in user's cart and wishlist.
type CartHandler struct {
	cartUC     usecase.CartUsecase
	wishlistUC usecase.WishlistUsecase
	logger     *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC:     params.CartUC,
		wishlistUC: params.WishlistUC,
		logger:     params.Logger,
	}
}

// AddCartItemRequest represents the request body for adding to the cart
type AddCartItemRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Size      string    `json:"size" validate:"max=50"`
	Color     string    `json:"color" validate:"max=50"`
	Quantity  int       `json:"quantity" validate:"required,min=1,max=99"`
}

// UpdateCartItemRequest represents the request body for setting a line's quantity.
// Zero removes the line.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"min=0,max=99"`
}

// MoveToCartRequest optionally picks the variant added to the cart
type MoveToCartRequest struct {
	Size  string `json:"size" validate:"max=50"`
	Color string `json:"color" validate:"max=50"`
}

// cartLine addresses the line named by the productId path parameter and the size and
// color query parameters.
func cartLine(c echo.Context) (usecase.CartLineInput, error) {
	productID, err := uuidParam(c, "productId")
	if err != nil {
		return usecase.CartLineInput{}, err
	}

	return usecase.CartLineInput{
		ProductID: productID,
		Size:      strings.TrimSpace(c.QueryParam("size")),
		Color:     strings.TrimSpace(c.QueryParam("color")),
	}, nil
}

// GetCart returns the caller's cart
func (h *CartHandler) GetCart(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	cart, err := h.cartUC.GetCart(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, cart)
}

// AddItem adds units of a product variant
func (h *CartHandler) AddItem(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid cart item input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	cart, err := h.cartUC.AddItem(c.Request().Context(), userID, &usecase.AddCartItemInput{
		ProductID: req.ProductID,
		Size:      strings.TrimSpace(req.Size),
		Color:     strings.TrimSpace(req.Color),
		Quantity:  req.Quantity,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, cart)
}

// UpdateItem sets the quantity of a line
func (h *CartHandler) UpdateItem(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	line, err := cartLine(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid cart item input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	cart, err := h.cartUC.UpdateQuantity(c.Request().Context(), userID, line, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, cart)
}

// DecrementItem takes one unit off a line
func (h *CartHandler) DecrementItem(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	line, err := cartLine(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	cart, err := h.cartUC.DecrementItem(c.Request().Context(), userID, line)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, cart)
}

// RemoveItem drops a line
func (h *CartHandler) RemoveItem(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	line, err := cartLine(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	cart, err := h.cartUC.RemoveItem(c.Request().Context(), userID, line)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, cart)
}

// ClearCart empties the cart
func (h *CartHandler) ClearCart(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	cart, err := h.cartUC.ClearCart(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, cart)
}

// GetWishlist returns the caller's saved products
func (h *CartHandler) GetWishlist(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	wishlist, err := h.wishlistUC.GetWishlist(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, wishlist)
}

// AddToWishlist saves a product
func (h *CartHandler) AddToWishlist(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	productID, err := uuidParam(c, "productId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	wishlist, err := h.wishlistUC.AddItem(c.Request().Context(), userID, productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, wishlist)
}

// RemoveFromWishlist drops a saved product
func (h *CartHandler) RemoveFromWishlist(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	productID, err := uuidParam(c, "productId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	wishlist, err := h.wishlistUC.RemoveItem(c.Request().Context(), userID, productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, wishlist)
}

// ClearWishlist drops every saved product
func (h *CartHandler) ClearWishlist(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.wishlistUC.ClearWishlist(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]string{"message": "Wishlist cleared"})
}

// MoveToCart moves a saved product into the cart
func (h *CartHandler) MoveToCart(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	productID, err := uuidParam(c, "productId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req MoveToCartRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return response.BindingError(c, "Invalid move to cart input")
		}
		if err := c.Validate(&req); err != nil {
			return response.ValidationError(c, err)
		}
	}

	cart, err := h.wishlistUC.MoveToCart(c.Request().Context(), userID, usecase.CartLineInput{
		ProductID: productID,
		Size:      strings.TrimSpace(req.Size),
		Color:     strings.TrimSpace(req.Color),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, cart)
}
