package catalog

import (
	"slices"
	"testing"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newProduct(id, title, price string, rating float64, reviews int, ageDays int) *entity.Product {
	return &entity.Product{
		ID:        uuid.MustParse(id),
		Title:     title,
		Slug:      title,
		Price:     decimal.RequireFromString(price),
		Rating:    entity.Rating{Average: rating, Count: reviews},
		Inventory: 10,
		CreatedAt: baseTime.Add(-time.Duration(ageDays) * 24 * time.Hour),
	}
}

func titles(products []*entity.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Title
	}

	return out
}

func fixtureCatalog() []*entity.Product {
	categoryID := uuid.MustParse("00000000-0000-0000-0000-0000000000c1")
	collectionID := uuid.MustParse("00000000-0000-0000-0000-0000000000d1")

	linen := newProduct("00000000-0000-0000-0000-000000000001", "Linen Shirt", "49.00", 4.5, 12, 3)
	linen.Description = "Breathable summer shirt"
	linen.CategoryID = &categoryID
	linen.Tags = []string{"summer", "cotton-free"}
	linen.Sizes = []string{"S", "M"}
	linen.Colors = []string{"White"}
	linen.Featured = true

	denim := newProduct("00000000-0000-0000-0000-000000000002", "denim jacket", "89.00", 4.8, 40, 10)
	denim.CategoryID = &categoryID
	denim.CollectionIDs = []uuid.UUID{collectionID}
	denim.Sizes = []string{"M", "L"}
	denim.Colors = []string{"Blue"}

	mug := newProduct("00000000-0000-0000-0000-000000000003", "Coffee Mug", "12.50", 3.9, 7, 1)
	mug.Tags = []string{"kitchen"}
	mug.Inventory = 0

	scarf := newProduct("00000000-0000-0000-0000-000000000004", "Wool Scarf", "25.00", 4.5, 3, 3)
	scarf.Tags = []string{"Winter"}
	scarf.CollectionIDs = []uuid.UUID{collectionID}

	return []*entity.Product{linen, denim, mug, scarf}
}

func TestApply_SortKeys(t *testing.T) {
	products := fixtureCatalog()

	tests := []struct {
		sortBy SortBy
		want   []string
	}{
		{SortNewest, []string{"Coffee Mug", "Linen Shirt", "Wool Scarf", "denim jacket"}},
		{SortPriceAsc, []string{"Coffee Mug", "Wool Scarf", "Linen Shirt", "denim jacket"}},
		{SortPriceDesc, []string{"denim jacket", "Linen Shirt", "Wool Scarf", "Coffee Mug"}},
		{SortReviews, []string{"denim jacket", "Linen Shirt", "Coffee Mug", "Wool Scarf"}},
		{SortAlphabetical, []string{"Coffee Mug", "denim jacket", "Linen Shirt", "Wool Scarf"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.sortBy), func(t *testing.T) {
			got := Apply(products, Filter{SortBy: tt.sortBy})
			assert.Equal(t, tt.want, titles(got))
		})
	}
}

func TestApply_RatingTiesAreBrokenDeterministically(t *testing.T) {
	// Linen Shirt and Wool Scarf share rating 4.5 and creation time, so id order decides.
	got := Apply(fixtureCatalog(), Filter{SortBy: SortRating})

	assert.Equal(t, []string{"denim jacket", "Linen Shirt", "Wool Scarf", "Coffee Mug"}, titles(got))
}

func TestApply_IsDeterministicAndIdempotent(t *testing.T) {
	products := fixtureCatalog()
	reversed := slices.Clone(products)
	slices.Reverse(reversed)
	filter := Filter{SortBy: SortRating, MinRating: 4}

	first := Apply(products, filter)
	second := Apply(products, filter)
	fromReversed := Apply(reversed, filter)
	reapplied := Apply(first, filter)

	assert.Equal(t, titles(first), titles(second))
	assert.Equal(t, titles(first), titles(fromReversed))
	assert.Equal(t, titles(first), titles(reapplied))
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	products := fixtureCatalog()
	before := titles(products)

	_ = Apply(products, Filter{SortBy: SortPriceAsc})

	assert.Equal(t, before, titles(products))
}

func TestApply_Predicates(t *testing.T) {
	products := fixtureCatalog()
	categoryID := *products[0].CategoryID
	collectionID := products[1].CollectionIDs[0]
	minPrice := decimal.NewFromInt(20)
	maxPrice := decimal.NewFromInt(50)
	yes := true
	no := false

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"search title case-insensitive", Filter{Search: "SHIRT"}, []string{"Linen Shirt"}},
		{"search description", Filter{Search: "breathable"}, []string{"Linen Shirt"}},
		{"price range inclusive", Filter{MinPrice: &minPrice, MaxPrice: &maxPrice}, []string{"Linen Shirt", "Wool Scarf"}},
		{"min rating", Filter{MinRating: 4.6}, []string{"denim jacket"}},
		{"category", Filter{CategoryID: &categoryID}, []string{"Linen Shirt", "denim jacket"}},
		{"collection", Filter{CollectionID: &collectionID}, []string{"Wool Scarf", "denim jacket"}},
		{"tags any-of ignoring case", Filter{Tags: []string{"winter", "kitchen"}}, []string{"Coffee Mug", "Wool Scarf"}},
		{"sizes and colors are AND-ed", Filter{Sizes: []string{"M"}, Colors: []string{"blue"}}, []string{"denim jacket"}},
		{"featured", Filter{Featured: &yes}, []string{"Linen Shirt"}},
		{"out of stock", Filter{InStock: &no}, []string{"Coffee Mug"}},
		{"no match", Filter{Search: "teapot"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, titles(Apply(products, tt.filter)))
		})
	}
}

func TestFilter_Validate(t *testing.T) {
	low := decimal.NewFromInt(10)
	high := decimal.NewFromInt(5)

	require.NoError(t, Filter{}.Validate())
	require.NoError(t, Filter{SortBy: SortReviews, MinRating: 5}.Validate())
	assert.Error(t, Filter{SortBy: "cheapest"}.Validate())
	assert.Error(t, Filter{MinPrice: &low, MaxPrice: &high}.Validate())
	assert.Error(t, Filter{MinRating: 6}.Validate())
}

func TestBuildFacets(t *testing.T) {
	facets := BuildFacets(fixtureCatalog())

	assert.True(t, decimal.RequireFromString("12.50").Equal(facets.PriceRange.Min))
	assert.True(t, decimal.RequireFromString("89.00").Equal(facets.PriceRange.Max))
	assert.Equal(t, Availability{InStock: 3, OutOfStock: 1}, facets.Availability)
	assert.Equal(t, []FacetCount{{Value: "L", Count: 1}, {Value: "M", Count: 2}, {Value: "S", Count: 1}}, facets.Sizes)
	assert.Len(t, facets.Tags, 4)
}

func TestPaginate(t *testing.T) {
	products := fixtureCatalog()

	page := Paginate(products, entity.PageRequest{Page: 2, Limit: 3})
	assert.Equal(t, 4, page.Total)
	assert.Equal(t, 2, page.TotalPages)
	assert.Len(t, page.Items, 1)

	beyond := Paginate(products, entity.PageRequest{Page: 5, Limit: 3})
	assert.Empty(t, beyond.Items)
}

func TestPaginate_HugePageNumberIsEmpty(t *testing.T) {
	products := fixtureCatalog()

	req := entity.PageRequest{Page: 1<<62 + 1, Limit: 2}.Normalize(20, 100)
	require.NotPanics(t, func() {
		page := Paginate(products, req)
		assert.Empty(t, page.Items)
		assert.Equal(t, 4, page.Total)
	})
}
