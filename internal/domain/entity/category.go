package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category is a taxonomic grouping; a product belongs to at most one.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Summary returns the reduced form embedded in product reads.
func (c *Category) Summary() *CategorySummary {
	return &CategorySummary{ID: c.ID, Title: c.Title, Slug: c.Slug}
}
