package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestItem(price string, qty int, size string) CartItem {
	return CartItem{
		ProductID: uuid.New(),
		Title:     "item",
		Price:     decimal.RequireFromString(price),
		Size:      size,
		Quantity:  qty,
	}
}

func assertTotalsConsistent(t *testing.T, cart *Cart) {
	t.Helper()

	expected := decimal.Zero
	count := 0
	for _, item := range cart.Items {
		require.Positive(t, item.Quantity, "no zero-quantity line may remain")
		expected = expected.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		count += item.Quantity
	}
	assert.True(t, expected.Equal(cart.Total), "total %s, want %s", cart.Total, expected)
	assert.Equal(t, count, cart.ItemCount)
}

func TestCart_TotalTracksEveryMutation(t *testing.T) {
	cart := NewCart(uuid.New(), nil)
	shirt := newTestItem("19.99", 2, "M")
	mug := newTestItem("7.50", 1, "")

	cart.Add(shirt)
	assertTotalsConsistent(t, cart)

	cart.Add(mug)
	assertTotalsConsistent(t, cart)

	require.True(t, cart.SetQuantity(shirt.Key(), 5))
	assertTotalsConsistent(t, cart)
	assert.True(t, decimal.RequireFromString("107.45").Equal(cart.Total))

	require.True(t, cart.Decrement(shirt.Key()))
	assertTotalsConsistent(t, cart)

	require.True(t, cart.Remove(mug.Key()))
	assertTotalsConsistent(t, cart)

	cart.Clear()
	assertTotalsConsistent(t, cart)
	assert.True(t, cart.IsEmpty())
	assert.True(t, cart.Total.IsZero())
}

func TestCart_AddMergesSameLine(t *testing.T) {
	cart := NewCart(uuid.New(), nil)
	item := newTestItem("10", 1, "S")

	cart.Add(item)
	cart.Add(item)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assertTotalsConsistent(t, cart)
}

func TestCart_DifferentSizesAreDifferentLines(t *testing.T) {
	cart := NewCart(uuid.New(), nil)
	small := newTestItem("10", 1, "S")
	large := small
	large.Size = "L"

	cart.Add(small)
	cart.Add(large)

	assert.Len(t, cart.Items, 2)
	assert.Equal(t, 2, cart.QuantityOfProduct(small.ProductID))
	assert.Len(t, cart.ProductIDs(), 1)
}

func TestCart_DecrementLastUnitRemovesLine(t *testing.T) {
	cart := NewCart(uuid.New(), nil)
	item := newTestItem("4.25", 1, "")
	cart.Add(item)

	require.True(t, cart.Decrement(item.Key()))

	assert.Empty(t, cart.Items)
	assert.Equal(t, 0, cart.Quantity(item.Key()))
	assertTotalsConsistent(t, cart)
}

func TestCart_SetQuantityZeroRemovesLine(t *testing.T) {
	cart := NewCart(uuid.New(), nil)
	item := newTestItem("3", 4, "")
	cart.Add(item)

	require.True(t, cart.SetQuantity(item.Key(), 0))

	assert.Empty(t, cart.Items)
}

func TestCart_MissingLine(t *testing.T) {
	cart := NewCart(uuid.New(), nil)
	key := LineKey{ProductID: uuid.New()}

	assert.False(t, cart.Decrement(key))
	assert.False(t, cart.SetQuantity(key, 3))
	assert.False(t, cart.Remove(key))
}

func TestNewCart_DropsNonPositiveLines(t *testing.T) {
	cart := NewCart(uuid.New(), []CartItem{newTestItem("5", 0, ""), newTestItem("5", 2, "")})

	require.Len(t, cart.Items, 1)
	assertTotalsConsistent(t, cart)
}
