package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// AddCartItemInput adds units of a product variant to the cart.
type AddCartItemInput struct {
	ProductID uuid.UUID
	Size      string
	Color     string
	Quantity  int
}

// CartLineInput addresses an existing cart line.
type CartLineInput struct {
	ProductID uuid.UUID
	Size      string
	Color     string
}

// Key returns the line identity addressed by the input.
func (in CartLineInput) Key() entity.LineKey {
	return entity.LineKey{ProductID: in.ProductID, Size: in.Size, Color: in.Color}
}

// CartUsecase manages the signed-in user's cart. Every mutation returns the resulting cart.
type CartUsecase interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)
	AddItem(ctx context.Context, userID uuid.UUID, input *AddCartItemInput) (*entity.Cart, error)

	// UpdateQuantity overwrites a line's quantity; zero or less removes the line.
	UpdateQuantity(ctx context.Context, userID uuid.UUID, line CartLineInput, quantity int) (*entity.Cart, error)

	DecrementItem(ctx context.Context, userID uuid.UUID, line CartLineInput) (*entity.Cart, error)
	RemoveItem(ctx context.Context, userID uuid.UUID, line CartLineInput) (*entity.Cart, error)
	ClearCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)
}

// WishlistUsecase manages the signed-in user's saved products.
type WishlistUsecase interface {
	GetWishlist(ctx context.Context, userID uuid.UUID) (*entity.Wishlist, error)

	// AddItem saves a product; saving it twice leaves a single entry.
	AddItem(ctx context.Context, userID, productID uuid.UUID) (*entity.Wishlist, error)

	RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*entity.Wishlist, error)
	ClearWishlist(ctx context.Context, userID uuid.UUID) error

	// MoveToCart adds one unit of the product to the cart and drops it from the wishlist.
	MoveToCart(ctx context.Context, userID uuid.UUID, line CartLineInput) (*entity.Cart, error)
}
