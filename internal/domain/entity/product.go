package entity

import (
	"strings"
	"time"

	"storefront/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Rating is the aggregate of all reviews attached to a product.
type Rating struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// CategorySummary is the category data embedded in product reads.
type CategorySummary struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	Slug  string    `json:"slug"`
}

// Product is a sellable catalog item.
type Product struct {
	ID            uuid.UUID        `json:"id"`
	Title         string           `json:"title"`
	Slug          string           `json:"slug"`
	Description   string           `json:"description"`
	Price         decimal.Decimal  `json:"price"`
	ComparePrice  *decimal.Decimal `json:"comparePrice,omitempty"` // Original price shown struck through when on sale.
	CategoryID    *uuid.UUID       `json:"categoryId,omitempty"`
	Category      *CategorySummary `json:"category,omitempty"`
	CollectionIDs []uuid.UUID      `json:"collections"`
	Tags          []string         `json:"tags"`
	Sizes         []string         `json:"size"`
	Colors        []string         `json:"color"`
	Images        []string         `json:"images"`
	Inventory     int              `json:"inventory"` // Units in stock, never negative.
	Rating        Rating           `json:"rating"`
	Featured      bool             `json:"featured"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

// Validate checks the invariants every stored product must satisfy.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return errors.New("title is required")
	}
	if strings.TrimSpace(p.Slug) == "" {
		return errors.New("slug is required")
	}
	if p.Price.IsNegative() {
		return errors.New("price must not be negative")
	}
	if p.ComparePrice != nil && p.ComparePrice.IsNegative() {
		return errors.New("comparePrice must not be negative")
	}
	if p.Inventory < 0 {
		return errors.New("inventory must not be negative")
	}

	return nil
}

// InStock reports whether at least one unit is available.
func (p *Product) InStock() bool {
	return p.Inventory > 0
}

// PrimaryImage returns the first image or an empty string.
func (p *Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}

	return p.Images[0]
}

// InCollection reports whether the product belongs to the given collection.
func (p *Product) InCollection(id uuid.UUID) bool {
	for _, c := range p.CollectionIDs {
		if c == id {
			return true
		}
	}

	return false
}
