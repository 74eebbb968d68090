package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestWishlist_NoDuplicates(t *testing.T) {
	id := uuid.New()
	w := NewWishlist(uuid.New(), []uuid.UUID{id, id})

	assert.False(t, w.Add(id))
	assert.False(t, w.Add(id))
	assert.Equal(t, []uuid.UUID{id}, w.ProductIDs)

	other := uuid.New()
	assert.True(t, w.Add(other))
	assert.Len(t, w.ProductIDs, 2)
}

func TestWishlist_Remove(t *testing.T) {
	id := uuid.New()
	w := NewWishlist(uuid.New(), []uuid.UUID{id})

	assert.True(t, w.Remove(id))
	assert.False(t, w.Remove(id))
	assert.False(t, w.Contains(id))
}
