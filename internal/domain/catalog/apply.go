package catalog

import (
	"cmp"
	"slices"
	"strings"

	"storefront/internal/domain/entity"
)

// Apply returns the products matching f in f's order. The input slice is left untouched,
// and ties under the chosen key fall back to newest first, then ascending id, so the
// result is fully determined by the input set and the filter.
func Apply(products []*entity.Product, f Filter) []*entity.Product {
	f = f.Normalize()

	result := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if p != nil && Matches(p, f) {
			result = append(result, p)
		}
	}

	less := comparator(f.SortBy)
	slices.SortStableFunc(result, func(a, b *entity.Product) int {
		if c := less(a, b); c != 0 {
			return c
		}

		return tieBreak(a, b)
	})

	return result
}

// Matches reports whether a single product satisfies every predicate of f.
func Matches(p *entity.Product, f Filter) bool {
	if f.Search != "" && !matchesSearch(p, f.Search) {
		return false
	}
	if f.MinPrice != nil && p.Price.LessThan(*f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice) {
		return false
	}
	if f.MinRating > 0 && p.Rating.Average < f.MinRating {
		return false
	}
	if f.CategoryID != nil && (p.CategoryID == nil || *p.CategoryID != *f.CategoryID) {
		return false
	}
	if f.CollectionID != nil && !p.InCollection(*f.CollectionID) {
		return false
	}
	if !anyOf(p.Tags, f.Tags) || !anyOf(p.Sizes, f.Sizes) || !anyOf(p.Colors, f.Colors) {
		return false
	}
	if f.Featured != nil && p.Featured != *f.Featured {
		return false
	}
	if f.InStock != nil && p.InStock() != *f.InStock {
		return false
	}

	return true
}

func matchesSearch(p *entity.Product, search string) bool {
	needle := strings.ToLower(search)

	return strings.Contains(strings.ToLower(p.Title), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle)
}

// anyOf is true when wanted is empty or shares at least one value with have.
func anyOf(have, wanted []string) bool {
	if len(wanted) == 0 {
		return true
	}
	for _, w := range wanted {
		for _, h := range have {
			if strings.EqualFold(h, w) {
				return true
			}
		}
	}

	return false
}

func comparator(sortBy SortBy) func(a, b *entity.Product) int {
	switch sortBy {
	case SortPriceAsc:
		return func(a, b *entity.Product) int { return a.Price.Cmp(b.Price) }
	case SortPriceDesc:
		return func(a, b *entity.Product) int { return b.Price.Cmp(a.Price) }
	case SortRating:
		return func(a, b *entity.Product) int { return cmp.Compare(b.Rating.Average, a.Rating.Average) }
	case SortReviews:
		return func(a, b *entity.Product) int { return cmp.Compare(b.Rating.Count, a.Rating.Count) }
	case SortAlphabetical:
		return func(a, b *entity.Product) int {
			return cmp.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		}
	default:
		return func(_, _ *entity.Product) int { return 0 }
	}
}

func tieBreak(a, b *entity.Product) int {
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}

	return strings.Compare(a.ID.String(), b.ID.String())
}
