package catalog

import (
	"slices"
	"strings"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// FacetCount is one selectable value of a facet and how many products carry it.
type FacetCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// PriceRange is the span of prices across a listing.
type PriceRange struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

// Availability counts products with and without stock.
type Availability struct {
	InStock    int `json:"inStock"`
	OutOfStock int `json:"outOfStock"`
}

// Facets feeds the filter sidebar of a listing.
type Facets struct {
	PriceRange   PriceRange   `json:"priceRange"`
	Tags         []FacetCount `json:"tags"`
	Sizes        []FacetCount `json:"sizes"`
	Colors       []FacetCount `json:"colors"`
	Availability Availability `json:"availability"`
}

// BuildFacets summarises products. Facet values are grouped case-insensitively and
// reported with the spelling seen first, ordered by value.
func BuildFacets(products []*entity.Product) Facets {
	facets := Facets{}
	tags := newCounter()
	sizes := newCounter()
	colors := newCounter()

	for i, p := range products {
		if i == 0 || p.Price.LessThan(facets.PriceRange.Min) {
			facets.PriceRange.Min = p.Price
		}
		if i == 0 || p.Price.GreaterThan(facets.PriceRange.Max) {
			facets.PriceRange.Max = p.Price
		}
		if p.InStock() {
			facets.Availability.InStock++
		} else {
			facets.Availability.OutOfStock++
		}
		tags.addAll(p.Tags)
		sizes.addAll(p.Sizes)
		colors.addAll(p.Colors)
	}

	facets.Tags = tags.counts()
	facets.Sizes = sizes.counts()
	facets.Colors = colors.counts()

	return facets
}

type counter struct {
	spelling map[string]string
	count    map[string]int
}

func newCounter() *counter {
	return &counter{spelling: map[string]string{}, count: map[string]int{}}
}

// addAll counts each distinct value of one product once.
func (c *counter) addAll(values []string) {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		key := strings.ToLower(strings.TrimSpace(v))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		if _, ok := c.spelling[key]; !ok {
			c.spelling[key] = strings.TrimSpace(v)
		}
		c.count[key]++
	}
}

func (c *counter) counts() []FacetCount {
	out := make([]FacetCount, 0, len(c.count))
	for key, n := range c.count {
		out = append(out, FacetCount{Value: c.spelling[key], Count: n})
	}
	slices.SortFunc(out, func(a, b FacetCount) int {
		return strings.Compare(strings.ToLower(a.Value), strings.ToLower(b.Value))
	})

	return out
}
