package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineKey identifies a cart line. The same product in two sizes is two lines.
type LineKey struct {
	ProductID uuid.UUID
	Size      string
	Color     string
}

// CartItem is a product snapshot plus a quantity.
type CartItem struct {
	ProductID uuid.UUID       `json:"productId"`
	Title     string          `json:"title"`
	Slug      string          `json:"slug"`
	Image     string          `json:"image"`
	Price     decimal.Decimal `json:"price"`
	Size      string          `json:"size,omitempty"`
	Color     string          `json:"color,omitempty"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// Key returns the identity of the line.
func (i *CartItem) Key() LineKey {
	return LineKey{ProductID: i.ProductID, Size: i.Size, Color: i.Color}
}

// Cart holds a user's lines. Total and ItemCount are derived and recomputed by every mutator,
// so they always equal the sum over Items.
type Cart struct {
	UserID    uuid.UUID       `json:"-"`
	Items     []CartItem      `json:"items"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"itemCount"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// NewCart builds a cart from stored lines, dropping any line without a positive quantity.
func NewCart(userID uuid.UUID, items []CartItem) *Cart {
	cart := &Cart{UserID: userID, Items: make([]CartItem, 0, len(items))}
	for _, item := range items {
		if item.Quantity > 0 {
			cart.Items = append(cart.Items, item)
		}
	}
	cart.recalculate()

	return cart
}

// Quantity returns the quantity held on the line, or zero.
func (c *Cart) Quantity(key LineKey) int {
	if idx := c.indexOf(key); idx >= 0 {
		return c.Items[idx].Quantity
	}

	return 0
}

// QuantityOfProduct sums every line of a product across sizes and colors.
func (c *Cart) QuantityOfProduct(productID uuid.UUID) int {
	total := 0
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			total += c.Items[i].Quantity
		}
	}

	return total
}

// Add merges item into the cart. An existing line gains the quantity and takes the newer snapshot.
func (c *Cart) Add(item CartItem) {
	if item.Quantity <= 0 {
		return
	}

	if idx := c.indexOf(item.Key()); idx >= 0 {
		item.Quantity += c.Items[idx].Quantity
		c.Items[idx] = item
	} else {
		c.Items = append(c.Items, item)
	}
	c.recalculate()
}

// SetQuantity overwrites the quantity of a line. A non-positive quantity removes the line.
func (c *Cart) SetQuantity(key LineKey, quantity int) bool {
	idx := c.indexOf(key)
	if idx < 0 {
		return false
	}

	if quantity <= 0 {
		c.removeAt(idx)
	} else {
		c.Items[idx].Quantity = quantity
	}
	c.recalculate()

	return true
}

// Decrement takes one unit off a line; the last unit removes the line.
func (c *Cart) Decrement(key LineKey) bool {
	idx := c.indexOf(key)
	if idx < 0 {
		return false
	}

	return c.SetQuantity(key, c.Items[idx].Quantity-1)
}

// Remove drops a line.
func (c *Cart) Remove(key LineKey) bool {
	idx := c.indexOf(key)
	if idx < 0 {
		return false
	}

	c.removeAt(idx)
	c.recalculate()

	return true
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = c.Items[:0]
	c.recalculate()
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// ProductIDs lists the distinct products in the cart in line order.
func (c *Cart) ProductIDs() []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(c.Items))
	ids := make([]uuid.UUID, 0, len(c.Items))
	for i := range c.Items {
		id := c.Items[i].ProductID
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	return ids
}

func (c *Cart) indexOf(key LineKey) int {
	for i := range c.Items {
		if c.Items[i].Key() == key {
			return i
		}
	}

	return -1
}

func (c *Cart) removeAt(idx int) {
	c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
}

func (c *Cart) recalculate() {
	total := decimal.Zero
	count := 0
	for i := range c.Items {
		line := c.Items[i].Price.Mul(decimal.NewFromInt(int64(c.Items[i].Quantity)))
		c.Items[i].LineTotal = line
		total = total.Add(line)
		count += c.Items[i].Quantity
	}
	c.Total = total
	c.ItemCount = count
}
