package entity

import (
	"slices"

	"github.com/google/uuid"
)

// Wishlist is the ordered set of products a user saved. It never holds the same product twice.
type Wishlist struct {
	UserID     uuid.UUID   `json:"-"`
	ProductIDs []uuid.UUID `json:"productIds"`
	Products   []*Product  `json:"products"`
}

// NewWishlist builds a wishlist, keeping the first occurrence of each id.
func NewWishlist(userID uuid.UUID, ids []uuid.UUID) *Wishlist {
	w := &Wishlist{UserID: userID, ProductIDs: make([]uuid.UUID, 0, len(ids))}
	for _, id := range ids {
		w.Add(id)
	}

	return w
}

// Add appends id unless already present. It reports whether the wishlist changed.
func (w *Wishlist) Add(id uuid.UUID) bool {
	if w.Contains(id) {
		return false
	}
	w.ProductIDs = append(w.ProductIDs, id)

	return true
}

// Remove drops id. It reports whether the wishlist changed.
func (w *Wishlist) Remove(id uuid.UUID) bool {
	idx := slices.Index(w.ProductIDs, id)
	if idx < 0 {
		return false
	}
	w.ProductIDs = slices.Delete(w.ProductIDs, idx, idx+1)

	return true
}

// Contains reports whether id is saved.
func (w *Wishlist) Contains(id uuid.UUID) bool {
	return slices.Contains(w.ProductIDs, id)
}
