package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/catalog"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type adminCatalogService struct {
	txManager       repository.TransactionManager
	productRepo     repository.ProductRepository
	categoryRepo    repository.CategoryRepository
	collectionRepo  repository.CollectionRepository
	defaultPageSize int
	maxPageSize     int
	logger          *slog.Logger
}

// AdminCatalogServiceParams holds dependencies for AdminCatalogService, injected by Fx.
type AdminCatalogServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	ProductRepo    repository.ProductRepository
	CategoryRepo   repository.CategoryRepository
	CollectionRepo repository.CollectionRepository
	Config         *config.Config
	Logger         *slog.Logger
}

// NewAdminCatalogService creates the back-office catalog use case.
func NewAdminCatalogService(params AdminCatalogServiceParams) usecase.AdminCatalogUsecase {
	defaultPageSize, maxPageSize := pageLimits(params.Config)

	return &adminCatalogService{
		txManager:       params.TxManager,
		productRepo:     params.ProductRepo,
		categoryRepo:    params.CategoryRepo,
		collectionRepo:  params.CollectionRepo,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
		logger:          params.Logger,
	}
}

func (srv *adminCatalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *adminCatalogService) ListProducts(ctx context.Context, search string, page entity.PageRequest) (entity.Page[*entity.Product], error) {
	page = page.Normalize(srv.defaultPageSize, srv.maxPageSize)

	products, err := srv.productRepo.List(ctx, repository.ProductScope{Search: search})
	if err != nil {
		return entity.Page[*entity.Product]{}, errors.Wrap(err, "failed to list products")
	}

	return catalog.Paginate(products, page), nil
}

func (srv *adminCatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

func (srv *adminCatalogService) CreateProduct(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	product := &entity.Product{}
	applyProductInput(product, input)
	if err := product.Validate(); err != nil {
		return nil, errors.WithStack(domainerrors.ErrInvalidProduct.WithDetails(err.Error()))
	}

	var created *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()
		if err := productRepo.Create(ctx, product); err != nil {
			return errors.Wrap(err, "failed to create product")
		}

		var err error
		created, err = productRepo.FindByID(ctx, product.ID)

		return errors.Wrap(err, "failed to reload product")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Any("productID", created.ID), slog.String("slug", created.Slug))

	return created, nil
}

func (srv *adminCatalogService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	var updated *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		product, err := productRepo.FindByID(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to find product")
		}

		applyProductInput(product, input)
		if err := product.Validate(); err != nil {
			return errors.WithStack(domainerrors.ErrInvalidProduct.WithDetails(err.Error()))
		}

		if err := productRepo.Update(ctx, product); err != nil {
			return errors.Wrap(err, "failed to update product")
		}

		updated, err = productRepo.FindByID(ctx, id)

		return errors.Wrap(err, "failed to reload product")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	srv.log(ctx).Info("Product updated", slog.Any("productID", id))

	return updated, nil
}

func (srv *adminCatalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.Any("productID", id))

	return nil
}

// applyProductInput copies the editable fields, deriving the slug from the title when omitted.
func applyProductInput(product *entity.Product, input *usecase.ProductInput) {
	product.Title = strings.TrimSpace(input.Title)
	product.Slug = util.Slugify(input.Slug, "")
	if product.Slug == "" {
		product.Slug = util.Slugify(input.Title, "")
	}
	product.Description = input.Description
	product.Price = input.Price
	product.ComparePrice = input.ComparePrice
	product.CategoryID = input.CategoryID
	product.CollectionIDs = compactIDs(input.CollectionIDs)
	product.Tags = cleanStrings(input.Tags)
	product.Sizes = cleanStrings(input.Sizes)
	product.Colors = cleanStrings(input.Colors)
	product.Images = cleanStrings(input.Images)
	product.Inventory = input.Inventory
	product.Featured = input.Featured
}

func (srv *adminCatalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func (srv *adminCatalogService) CreateCategory(ctx context.Context, input *usecase.CategoryInput) (*entity.Category, error) {
	category := &entity.Category{}
	if err := applyCategoryInput(category, input); err != nil {
		return nil, err
	}

	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	srv.log(ctx).Info("Category created", slog.Any("categoryID", category.ID), slog.String("slug", category.Slug))

	return category, nil
}

func (srv *adminCatalogService) UpdateCategory(ctx context.Context, id uuid.UUID, input *usecase.CategoryInput) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find category")
	}
	if err := applyCategoryInput(category, input); err != nil {
		return nil, err
	}

	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to update category")
	}

	return category, nil
}

func (srv *adminCatalogService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if err := srv.categoryRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete category")
	}

	srv.log(ctx).Info("Category deleted", slog.Any("categoryID", id))

	return nil
}

func applyCategoryInput(category *entity.Category, input *usecase.CategoryInput) error {
	title, slug, err := titleAndSlug(input.Title, input.Slug)
	if err != nil {
		return err
	}

	category.Title = title
	category.Slug = slug
	category.Description = input.Description
	category.Image = strings.TrimSpace(input.Image)

	return nil
}

func (srv *adminCatalogService) ListCollections(ctx context.Context) ([]*entity.Collection, error) {
	collections, err := srv.collectionRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list collections")
	}

	return collections, nil
}

func (srv *adminCatalogService) CreateCollection(ctx context.Context, input *usecase.CollectionInput) (*entity.Collection, error) {
	collection := &entity.Collection{}
	if err := applyCollectionInput(collection, input); err != nil {
		return nil, err
	}

	// Create also writes the membership rows.
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return errors.Wrap(repoFactory.CollectionRepo().Create(ctx, collection), "failed to create collection")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create collection")
	}

	srv.log(ctx).Info("Collection created",
		slog.Any("collectionID", collection.ID),
		slog.Int("productCount", len(collection.ProductIDs)),
	)

	return collection, nil
}

func (srv *adminCatalogService) UpdateCollection(ctx context.Context, id uuid.UUID, input *usecase.CollectionInput) (*entity.Collection, error) {
	var collection *entity.Collection
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		collectionRepo := repoFactory.CollectionRepo()

		var err error
		collection, err = collectionRepo.FindByID(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to find collection")
		}
		if err := applyCollectionInput(collection, input); err != nil {
			return err
		}

		return errors.Wrap(collectionRepo.Update(ctx, collection), "failed to update collection")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update collection")
	}

	return collection, nil
}

func (srv *adminCatalogService) DeleteCollection(ctx context.Context, id uuid.UUID) error {
	if err := srv.collectionRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete collection")
	}

	srv.log(ctx).Info("Collection deleted", slog.Any("collectionID", id))

	return nil
}

func applyCollectionInput(collection *entity.Collection, input *usecase.CollectionInput) error {
	title, slug, err := titleAndSlug(input.Title, input.Slug)
	if err != nil {
		return err
	}

	collection.Title = title
	collection.Slug = slug
	collection.Description = input.Description
	collection.Image = strings.TrimSpace(input.Image)
	collection.ProductIDs = compactIDs(input.ProductIDs)

	return nil
}

func titleAndSlug(rawTitle, rawSlug string) (title, slug string, err error) {
	title = strings.TrimSpace(rawTitle)
	if title == "" {
		return "", "", errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("title is required"))
	}

	slug = util.Slugify(rawSlug, "")
	if slug == "" {
		slug = util.Slugify(title, "")
	}
	if slug == "" {
		return "", "", errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("slug is required"))
	}

	return title, slug, nil
}

// cleanStrings trims values and drops blanks and repeats, keeping the first occurrence order.
func cleanStrings(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || slices.Contains(out, v) {
			continue
		}
		out = append(out, v)
	}

	return out
}

func compactIDs(ids []uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil || slices.Contains(out, id) {
			continue
		}
		out = append(out, id)
	}

	return out
}
