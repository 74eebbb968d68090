package entity

import (
	"time"

	"github.com/google/uuid"
)

// Collection is a curated, named grouping of products, independent of categories.
type Collection struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Slug        string      `json:"slug"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
	ProductIDs  []uuid.UUID `json:"products"`
	CreatedAt   time.Time   `json:"createdAt"`
}
