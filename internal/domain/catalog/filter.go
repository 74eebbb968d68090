// Package catalog implements the product filter, sort and facet routines shared by
// the product listing, category and collection pages.
package catalog

import (
	"strings"

	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SortBy selects the ordering of a product listing.
type SortBy string

const (
	SortNewest       SortBy = "newest"
	SortPriceAsc     SortBy = "price_asc"
	SortPriceDesc    SortBy = "price_desc"
	SortRating       SortBy = "rating"
	SortReviews      SortBy = "reviews"
	SortAlphabetical SortBy = "alphabetical"
)

// IsValid checks if the sort key is known.
func (s SortBy) IsValid() bool {
	switch s {
	case SortNewest, SortPriceAsc, SortPriceDesc, SortRating, SortReviews, SortAlphabetical:
		return true
	default:
		return false
	}
}

// Filter is the set of predicates and the ordering applied to a product listing.
// Every predicate is optional; facets (tags, sizes, colors) match any-of within a facet
// and all facets must match.
type Filter struct {
	Search       string
	SortBy       SortBy
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	MinRating    float64
	CategoryID   *uuid.UUID
	CollectionID *uuid.UUID
	Tags         []string
	Sizes        []string
	Colors       []string
	Featured     *bool
	InStock      *bool
}

// Normalize trims free text, drops empty facet values and defaults the sort key.
func (f Filter) Normalize() Filter {
	f.Search = strings.TrimSpace(f.Search)
	if f.SortBy == "" {
		f.SortBy = SortNewest
	}
	f.Tags = compactValues(f.Tags)
	f.Sizes = compactValues(f.Sizes)
	f.Colors = compactValues(f.Colors)

	return f
}

// Validate rejects filters that can never be satisfied or that name an unknown sort.
func (f Filter) Validate() error {
	if f.SortBy != "" && !f.SortBy.IsValid() {
		return domainerrors.ErrInvalidFilter.WithDetails("unknown sortBy " + string(f.SortBy))
	}
	if f.MinPrice != nil && f.MinPrice.IsNegative() {
		return domainerrors.ErrInvalidFilter.WithDetails("minPrice must not be negative")
	}
	if f.MinPrice != nil && f.MaxPrice != nil && f.MinPrice.GreaterThan(*f.MaxPrice) {
		return domainerrors.ErrInvalidFilter.WithDetails("minPrice must not exceed maxPrice")
	}
	if f.MinRating < 0 || f.MinRating > 5 {
		return domainerrors.ErrInvalidFilter.WithDetails("rating must be between 0 and 5")
	}

	return nil
}

func compactValues(values []string) []string {
	if len(values) == 0 {
		return nil
	}

	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}

	return out
}
