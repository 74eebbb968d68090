package usecase

import (
	"context"

	"storefront/internal/domain/catalog"
	"storefront/internal/domain/entity"
)

// RelatedProductsLimit caps the related products shown on a product page.
const RelatedProductsLimit = 4

// ProductListing is one page of a filtered listing and, on request, its facets.
type ProductListing struct {
	Products entity.Page[*entity.Product] `json:"products"`
	Facets   *catalog.Facets             `json:"facets,omitempty"`
}

// ListProductsInput selects products for a listing page. Category and collection may be
// named by slug; an unknown slug matches nothing.
type ListProductsInput struct {
	Filter         catalog.Filter
	CategorySlug   string
	CollectionSlug string
	Page           entity.PageRequest
	IncludeFacets  bool
}

// CategoryDetail is a category page: the category and its filtered products.
type CategoryDetail struct {
	Category *entity.Category `json:"category"`
	ProductListing
}

// CollectionDetail is a collection page: the collection and its filtered products.
type CollectionDetail struct {
	Collection *entity.Collection `json:"collection"`
	ProductListing
}

// ProductQRCode is a PNG QR code linking to a product page.
type ProductQRCode struct {
	URL string
	PNG []byte
}

// CatalogUsecase serves the public, read-only side of the catalog.
type CatalogUsecase interface {
	ListProducts(ctx context.Context, input *ListProductsInput) (*ProductListing, error)

	// ProductFacets summarises the products in the filter's scope (category, collection and
	// search) so the sidebar can offer every value, not only the selected ones.
	ProductFacets(ctx context.Context, filter catalog.Filter) (*catalog.Facets, error)

	GetProduct(ctx context.Context, slug string) (*entity.Product, error)

	// RelatedProducts returns up to RelatedProductsLimit other products of the same category.
	RelatedProducts(ctx context.Context, slug string) ([]*entity.Product, error)

	ProductQRCode(ctx context.Context, slug string) (*ProductQRCode, error)

	ListCategories(ctx context.Context) ([]*entity.Category, error)
	GetCategory(ctx context.Context, slug string, input *ListProductsInput) (*CategoryDetail, error)

	ListCollections(ctx context.Context) ([]*entity.Collection, error)
	GetCollection(ctx context.Context, slug string, input *ListProductsInput) (*CollectionDetail, error)
}
