package impl

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCartService(store *memStore) usecase.CartUsecase {
	return NewCartService(CartServiceParams{
		TxManager: store,
		CartRepo:  store.CartRepo(),
		Logger:    newDiscardLogger(),
	})
}

func withVariants(sizes, colors []string) func(*entity.Product) {
	return func(p *entity.Product) {
		p.Sizes = sizes
		p.Colors = colors
	}
}

func TestCartService_AddItem_MergesLinesAndTotals(t *testing.T) {
	store := newMemStore()
	user := store.addUser("cart@example.com", "Cart")
	tee := store.addProduct("Linen Tee", "499.50", 10, withVariants([]string{"S", "M"}, []string{"white"}))
	mug := store.addProduct("Clay Mug", "250", 5)
	cartService := newTestCartService(store)
	ctx := context.Background()

	_, err := cartService.AddItem(ctx, user.ID, &usecase.AddCartItemInput{ProductID: tee.ID, Size: "M", Color: "white", Quantity: 1})
	require.NoError(t, err)
	_, err = cartService.AddItem(ctx, user.ID, &usecase.AddCartItemInput{ProductID: tee.ID, Size: "M", Color: "white", Quantity: 2})
	require.NoError(t, err)
	_, err = cartService.AddItem(ctx, user.ID, &usecase.AddCartItemInput{ProductID: tee.ID, Size: "S", Color: "white", Quantity: 1})
	require.NoError(t, err)
	cart, err := cartService.AddItem(ctx, user.ID, &usecase.AddCartItemInput{ProductID: mug.ID, Quantity: 2})
	require.NoError(t, err)

	require.Len(t, cart.Items, 3)
	assert.Equal(t, 3, cart.Quantity(entity.LineKey{ProductID: tee.ID, Size: "M", Color: "white"}))
	assert.Equal(t, 6, cart.ItemCount)
	assert.True(t, decimal.RequireFromString("2498").Equal(cart.Total), cart.Total.String())
	assert.Equal(t, "Linen Tee", cart.Items[0].Title)
	assert.Equal(t, tee.Images[0], cart.Items[0].Image)

	stored, err := cartService.GetCart(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, cart.ItemCount, stored.ItemCount)
	assert.True(t, cart.Total.Equal(stored.Total))
}

func TestCartService_AddItem_Rejections(t *testing.T) {
	store := newMemStore()
	user := store.addUser("cart@example.com", "Cart")
	tee := store.addProduct("Linen Tee", "499", 3, withVariants([]string{"S"}, nil))
	cartService := newTestCartService(store)
	ctx := context.Background()

	tests := []struct {
		name  string
		input usecase.AddCartItemInput
		want  error
	}{
		{name: "zero quantity", input: usecase.AddCartItemInput{ProductID: tee.ID, Size: "S", Quantity: 0}, want: domainerrors.ErrInvalidQuantity},
		{name: "unknown product", input: usecase.AddCartItemInput{ProductID: uuid.New(), Quantity: 1}, want: domainerrors.ErrProductNotFound},
		{name: "size not offered", input: usecase.AddCartItemInput{ProductID: tee.ID, Size: "XL", Quantity: 1}, want: domainerrors.ErrValidationFailed},
		{name: "color not offered", input: usecase.AddCartItemInput{ProductID: tee.ID, Size: "S", Color: "red", Quantity: 1}, want: domainerrors.ErrValidationFailed},
		{name: "more than stock", input: usecase.AddCartItemInput{ProductID: tee.ID, Size: "S", Quantity: 4}, want: domainerrors.ErrOutOfStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart, err := cartService.AddItem(ctx, user.ID, &tt.input)

			assert.Nil(t, cart)
			assertDomainError(t, err, tt.want)
		})
	}

	assert.Empty(t, store.cartItems(user.ID))
}

func TestCartService_AddItem_StockCountsEveryVariant(t *testing.T) {
	store := newMemStore()
	user := store.addUser("cart@example.com", "Cart")
	tee := store.addProduct("Linen Tee", "499", 3, withVariants([]string{"S", "M"}, nil))
	cartService := newTestCartService(store)
	ctx := context.Background()

	_, err := cartService.AddItem(ctx, user.ID, &usecase.AddCartItemInput{ProductID: tee.ID, Size: "S", Quantity: 2})
	require.NoError(t, err)

	_, err = cartService.AddItem(ctx, user.ID, &usecase.AddCartItemInput{ProductID: tee.ID, Size: "M", Quantity: 2})
	assertDomainError(t, err, domainerrors.ErrOutOfStock)

	_, err = cartService.AddItem(ctx, user.ID, &usecase.AddCartItemInput{ProductID: tee.ID, Size: "M", Quantity: 1})
	require.NoError(t, err)
}

func TestCartService_UpdateQuantity(t *testing.T) {
	store := newMemStore()
	user := store.addUser("cart@example.com", "Cart")
	mug := store.addProduct("Clay Mug", "250", 4)
	cartService := newTestCartService(store)
	ctx := context.Background()
	line := usecase.CartLineInput{ProductID: mug.ID}

	_, err := cartService.UpdateQuantity(ctx, user.ID, line, 2)
	assertDomainError(t, err, domainerrors.ErrCartItemNotFound)

	_, err = cartService.AddItem(ctx, user.ID, &usecase.AddCartItemInput{ProductID: mug.ID, Quantity: 3})
	require.NoError(t, err)

	cart, err := cartService.UpdateQuantity(ctx, user.ID, line, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, cart.ItemCount)

	_, err = cartService.UpdateQuantity(ctx, user.ID, line, 5)
	assertDomainError(t, err, domainerrors.ErrOutOfStock)

	cart, err = cartService.UpdateQuantity(ctx, user.ID, line, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, cart.ItemCount)

	cart, err = cartService.UpdateQuantity(ctx, user.ID, line, 0)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
	assert.Empty(t, store.cartItems(user.ID))
}

func TestCartService_DecrementRemoveClear(t *testing.T) {
	store := newMemStore()
	user := store.addUser("cart@example.com", "Cart")
	mug := store.addProduct("Clay Mug", "250", 10)
	bowl := store.addProduct("Clay Bowl", "300", 10)
	cartService := newTestCartService(store)
	ctx := context.Background()

	_, err := cartService.AddItem(ctx, user.ID, &usecase.AddCartItemInput{ProductID: mug.ID, Quantity: 2})
	require.NoError(t, err)
	_, err = cartService.AddItem(ctx, user.ID, &usecase.AddCartItemInput{ProductID: bowl.ID, Quantity: 1})
	require.NoError(t, err)

	cart, err := cartService.DecrementItem(ctx, user.ID, usecase.CartLineInput{ProductID: mug.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, cart.Quantity(entity.LineKey{ProductID: mug.ID}))

	cart, err = cartService.DecrementItem(ctx, user.ID, usecase.CartLineInput{ProductID: mug.ID})
	require.NoError(t, err)
	assert.Zero(t, cart.Quantity(entity.LineKey{ProductID: mug.ID}))
	assert.Len(t, cart.Items, 1)

	_, err = cartService.DecrementItem(ctx, user.ID, usecase.CartLineInput{ProductID: mug.ID})
	assertDomainError(t, err, domainerrors.ErrCartItemNotFound)

	_, err = cartService.RemoveItem(ctx, user.ID, usecase.CartLineInput{ProductID: mug.ID})
	assertDomainError(t, err, domainerrors.ErrCartItemNotFound)

	cart, err = cartService.RemoveItem(ctx, user.ID, usecase.CartLineInput{ProductID: bowl.ID})
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())

	_, err = cartService.AddItem(ctx, user.ID, &usecase.AddCartItemInput{ProductID: bowl.ID, Quantity: 2})
	require.NoError(t, err)
	cart, err = cartService.ClearCart(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
	assert.True(t, cart.Total.IsZero())
}

func TestCartService_ConcurrentAddsKeepEveryLine(t *testing.T) {
	store := newMemStore()
	user := store.addUser("cart@example.com", "Cart")
	cartService := newTestCartService(store)

	const workers = 8
	products := make([]*entity.Product, workers)
	for i := range products {
		products[i] = store.addProduct(fmt.Sprintf("Item %d", i), "10", 5)
	}

	var wg sync.WaitGroup
	for _, product := range products {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := cartService.AddItem(context.Background(), user.ID, &usecase.AddCartItemInput{ProductID: product.ID, Quantity: 1})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Len(t, store.cartItems(user.ID), workers)
	assert.Equal(t, int64(workers), store.cartLocks.Load())
}

// assertDomainError checks err against a domain sentinel, including copies made by WithDetails.
func assertDomainError(t *testing.T, err error, want error) {
	t.Helper()

	require.Error(t, err)
	assert.True(t, errors.Is(err, want), "expected %v, got %v", want, err)
}
