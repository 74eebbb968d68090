package impl

import (
	"context"
	"log/slog"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/catalog"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type catalogService struct {
	productRepo     repository.ProductRepository
	categoryRepo    repository.CategoryRepository
	collectionRepo  repository.CollectionRepository
	qrCodeService   service.QRCodeService
	defaultPageSize int
	maxPageSize     int
	logger          *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo    repository.ProductRepository
	CategoryRepo   repository.CategoryRepository
	CollectionRepo repository.CollectionRepository
	QRCodeService  service.QRCodeService
	Config         *config.Config
	Logger         *slog.Logger
}

// NewCatalogService creates the public catalog use case.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	defaultPageSize, maxPageSize := pageLimits(params.Config)

	return &catalogService{
		productRepo:     params.ProductRepo,
		categoryRepo:    params.CategoryRepo,
		collectionRepo:  params.CollectionRepo,
		qrCodeService:   params.QRCodeService,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
		logger:          params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts loads the rows in scope, then filters, sorts and pages them in memory.
func (srv *catalogService) ListProducts(ctx context.Context, input *usecase.ListProductsInput) (*usecase.ProductListing, error) {
	filter := input.Filter.Normalize()
	if err := filter.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}

	found, err := srv.resolveSlugs(ctx, input, &filter)
	if err != nil {
		return nil, err
	}
	page := input.Page.Normalize(srv.defaultPageSize, srv.maxPageSize)
	if !found {
		listing := &usecase.ProductListing{Products: entity.NewPage[*entity.Product](nil, 0, page)}
		if input.IncludeFacets {
			facets := catalog.BuildFacets(nil)
			listing.Facets = &facets
		}

		return listing, nil
	}

	return srv.listing(ctx, filter, page, input.IncludeFacets)
}

// resolveSlugs turns category and collection slugs into filter ids. It reports false when a
// slug names nothing.
func (srv *catalogService) resolveSlugs(ctx context.Context, input *usecase.ListProductsInput, filter *catalog.Filter) (bool, error) {
	if input.CategorySlug != "" {
		category, err := srv.categoryRepo.FindBySlug(ctx, input.CategorySlug)
		if errors.Is(err, domainerrors.ErrCategoryNotFound) {
			return false, nil
		}
		if err != nil {
			return false, errors.Wrap(err, "failed to find category")
		}
		filter.CategoryID = &category.ID
	}

	if input.CollectionSlug != "" {
		collection, err := srv.collectionRepo.FindBySlug(ctx, input.CollectionSlug)
		if errors.Is(err, domainerrors.ErrCollectionNotFound) {
			return false, nil
		}
		if err != nil {
			return false, errors.Wrap(err, "failed to find collection")
		}
		filter.CollectionID = &collection.ID
	}

	return true, nil
}

func (srv *catalogService) listing(ctx context.Context, filter catalog.Filter, page entity.PageRequest, includeFacets bool) (*usecase.ProductListing, error) {
	products, err := srv.productRepo.List(ctx, scopeOf(filter))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	listing := &usecase.ProductListing{
		Products: catalog.Paginate(catalog.Apply(products, filter), page),
	}
	if includeFacets {
		facets := catalog.BuildFacets(products)
		listing.Facets = &facets
	}

	srv.log(ctx).Debug("Listed products",
		slog.Int("scoped", len(products)),
		slog.Int("matched", listing.Products.Total),
		slog.String("sortBy", string(filter.SortBy)),
	)

	return listing, nil
}

func scopeOf(filter catalog.Filter) repository.ProductScope {
	return repository.ProductScope{
		CategoryID:   filter.CategoryID,
		CollectionID: filter.CollectionID,
		Search:       filter.Search,
	}
}

func (srv *catalogService) ProductFacets(ctx context.Context, filter catalog.Filter) (*catalog.Facets, error) {
	filter = filter.Normalize()
	if err := filter.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}

	products, err := srv.productRepo.List(ctx, scopeOf(filter))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}
	facets := catalog.BuildFacets(products)

	return &facets, nil
}

func (srv *catalogService) GetProduct(ctx context.Context, slug string) (*entity.Product, error) {
	product, err := srv.productRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// RelatedProducts returns the newest products sharing the product's category.
func (srv *catalogService) RelatedProducts(ctx context.Context, slug string) ([]*entity.Product, error) {
	product, err := srv.productRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}
	if product.CategoryID == nil {
		return []*entity.Product{}, nil
	}

	siblings, err := srv.productRepo.List(ctx, repository.ProductScope{CategoryID: product.CategoryID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list related products")
	}

	related := make([]*entity.Product, 0, usecase.RelatedProductsLimit)
	for _, p := range catalog.Apply(siblings, catalog.Filter{CategoryID: product.CategoryID, SortBy: catalog.SortNewest}) {
		if p.ID == product.ID {
			continue
		}
		related = append(related, p)
		if len(related) == usecase.RelatedProductsLimit {
			break
		}
	}

	return related, nil
}

func (srv *catalogService) ProductQRCode(ctx context.Context, slug string) (*usecase.ProductQRCode, error) {
	product, err := srv.productRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	png, err := srv.qrCodeService.GenerateProductQR(product.Slug)
	if err != nil {
		srv.log(ctx).Error("Failed to generate product QR code", slog.String("slug", product.Slug), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate product QR code")
	}

	return &usecase.ProductQRCode{URL: srv.qrCodeService.ProductURL(product.Slug), PNG: png}, nil
}

func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// GetCategory returns the category and the page of its products selected by input.
func (srv *catalogService) GetCategory(ctx context.Context, slug string, input *usecase.ListProductsInput) (*usecase.CategoryDetail, error) {
	category, err := srv.categoryRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find category")
	}

	filter := input.Filter.Normalize()
	if err := filter.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}
	filter.CategoryID = &category.ID

	listing, err := srv.listing(ctx, filter, input.Page.Normalize(srv.defaultPageSize, srv.maxPageSize), input.IncludeFacets)
	if err != nil {
		return nil, err
	}

	return &usecase.CategoryDetail{Category: category, ProductListing: *listing}, nil
}

func (srv *catalogService) ListCollections(ctx context.Context) ([]*entity.Collection, error) {
	collections, err := srv.collectionRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list collections")
	}

	return collections, nil
}

// GetCollection returns the collection and the page of its products selected by input.
func (srv *catalogService) GetCollection(ctx context.Context, slug string, input *usecase.ListProductsInput) (*usecase.CollectionDetail, error) {
	collection, err := srv.collectionRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find collection")
	}

	filter := input.Filter.Normalize()
	if err := filter.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}
	filter.CollectionID = &collection.ID

	listing, err := srv.listing(ctx, filter, input.Page.Normalize(srv.defaultPageSize, srv.maxPageSize), input.IncludeFacets)
	if err != nil {
		return nil, err
	}

	return &usecase.CollectionDetail{Collection: collection, ProductListing: *listing}, nil
}
