package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAdminCatalogService(store *memStore) usecase.AdminCatalogUsecase {
	return NewAdminCatalogService(AdminCatalogServiceParams{
		TxManager:      store,
		ProductRepo:    store.ProductRepo(),
		CategoryRepo:   store.CategoryRepo(),
		CollectionRepo: store.CollectionRepo(),
		Config:         newTestConfig(0),
		Logger:         newDiscardLogger(),
	})
}

func TestAdminCatalogService_ProductLifecycle(t *testing.T) {
	store := newMemStore()
	adminCatalog := newTestAdminCatalogService(store)
	ctx := context.Background()

	category, err := adminCatalog.CreateCategory(ctx, &usecase.CategoryInput{Title: "Home & Living"})
	require.NoError(t, err)
	assert.Equal(t, "home-living", category.Slug)

	summer, err := adminCatalog.CreateCollection(ctx, &usecase.CollectionInput{Title: "Summer Edit"})
	require.NoError(t, err)

	product, err := adminCatalog.CreateProduct(ctx, &usecase.ProductInput{
		Title:         "  Cotton Throw  ",
		Price:         decimal.RequireFromString("1499"),
		CategoryID:    &category.ID,
		CollectionIDs: []uuid.UUID{summer.ID, summer.ID},
		Tags:          []string{" cosy ", "", "cosy"},
		Images:        []string{"/images/throw.png"},
		Inventory:     7,
	})
	require.NoError(t, err)
	assert.Equal(t, "Cotton Throw", product.Title)
	assert.Equal(t, "cotton-throw", product.Slug)
	assert.Equal(t, []uuid.UUID{summer.ID}, product.CollectionIDs)
	require.NotNil(t, product.Category)
	assert.Equal(t, "Home & Living", product.Category.Title)

	require.NoError(t, store.ProductRepo().UpdateRating(ctx, product.ID, entity.Rating{Average: 4.5, Count: 2}))

	updated, err := adminCatalog.UpdateProduct(ctx, product.ID, &usecase.ProductInput{
		Title:     "Cotton Throw",
		Slug:      "Throw Blanket",
		Price:     decimal.RequireFromString("1299"),
		Inventory: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, "throw-blanket", updated.Slug)
	assert.Nil(t, updated.Category)
	assert.Empty(t, updated.CollectionIDs)
	assert.Equal(t, entity.Rating{Average: 4.5, Count: 2}, updated.Rating)

	page, err := adminCatalog.ListProducts(ctx, "throw", entity.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)

	require.NoError(t, adminCatalog.DeleteProduct(ctx, product.ID))
	_, err = adminCatalog.GetProduct(ctx, product.ID)
	assertDomainError(t, err, domainerrors.ErrProductNotFound)
}

func TestAdminCatalogService_ProductRejections(t *testing.T) {
	store := newMemStore()
	existing := store.addProduct("Cotton Throw", "1499", 2)
	adminCatalog := newTestAdminCatalogService(store)
	ctx := context.Background()

	_, err := adminCatalog.CreateProduct(ctx, &usecase.ProductInput{Title: "   ", Price: decimal.NewFromInt(10)})
	assertDomainError(t, err, domainerrors.ErrInvalidProduct)

	_, err = adminCatalog.CreateProduct(ctx, &usecase.ProductInput{Title: "Rug", Price: decimal.NewFromInt(-1)})
	assertDomainError(t, err, domainerrors.ErrInvalidProduct)

	_, err = adminCatalog.CreateProduct(ctx, &usecase.ProductInput{Title: "Cotton Throw", Price: decimal.NewFromInt(10)})
	assertDomainError(t, err, domainerrors.ErrProductSlugExists)

	missing := uuid.New()
	_, err = adminCatalog.CreateProduct(ctx, &usecase.ProductInput{Title: "Rug", Price: decimal.NewFromInt(10), CategoryID: &missing})
	assertDomainError(t, err, domainerrors.ErrCategoryNotFound)

	_, err = adminCatalog.UpdateProduct(ctx, existing.ID, &usecase.ProductInput{Title: "Cotton Throw", Inventory: -1})
	assertDomainError(t, err, domainerrors.ErrInvalidProduct)
	assert.Equal(t, 2, store.product(existing.ID).Inventory)

	_, err = adminCatalog.UpdateProduct(ctx, uuid.New(), &usecase.ProductInput{Title: "Ghost"})
	assertDomainError(t, err, domainerrors.ErrProductNotFound)
}

func TestAdminCatalogService_CategoryCRUD(t *testing.T) {
	store := newMemStore()
	adminCatalog := newTestAdminCatalogService(store)
	ctx := context.Background()

	_, err := adminCatalog.CreateCategory(ctx, &usecase.CategoryInput{Title: " "})
	assertDomainError(t, err, domainerrors.ErrValidationFailed)

	category, err := adminCatalog.CreateCategory(ctx, &usecase.CategoryInput{Title: "Kitchen", Slug: "Cook Ware"})
	require.NoError(t, err)
	assert.Equal(t, "cook-ware", category.Slug)

	_, err = adminCatalog.CreateCategory(ctx, &usecase.CategoryInput{Title: "Cookware", Slug: "cook-ware"})
	assertDomainError(t, err, domainerrors.ErrCategorySlugExists)

	updated, err := adminCatalog.UpdateCategory(ctx, category.ID, &usecase.CategoryInput{Title: "Kitchen & Dining"})
	require.NoError(t, err)
	assert.Equal(t, "kitchen-dining", updated.Slug)

	categories, err := adminCatalog.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 1)

	require.NoError(t, adminCatalog.DeleteCategory(ctx, category.ID))
	err = adminCatalog.DeleteCategory(ctx, category.ID)
	assertDomainError(t, err, domainerrors.ErrCategoryNotFound)
}

func TestAdminCatalogService_CollectionMembership(t *testing.T) {
	store := newMemStore()
	lamp := store.addProduct("Brass Lamp", "1999", 2)
	rug := store.addProduct("Jute Rug", "2999", 1)
	adminCatalog := newTestAdminCatalogService(store)
	ctx := context.Background()

	collection, err := adminCatalog.CreateCollection(ctx, &usecase.CollectionInput{
		Title:      "Living Room",
		ProductIDs: []uuid.UUID{rug.ID, lamp.ID, rug.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, "living-room", collection.Slug)
	assert.Equal(t, []uuid.UUID{rug.ID, lamp.ID}, collection.ProductIDs)

	_, err = adminCatalog.UpdateCollection(ctx, collection.ID, &usecase.CollectionInput{
		Title:      "Living Room",
		ProductIDs: []uuid.UUID{lamp.ID, uuid.New()},
	})
	assertDomainError(t, err, domainerrors.ErrProductNotFound)

	stored, err := store.CollectionRepo().FindByID(ctx, collection.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{rug.ID, lamp.ID}, stored.ProductIDs)

	updated, err := adminCatalog.UpdateCollection(ctx, collection.ID, &usecase.CollectionInput{
		Title:      "Lounge",
		ProductIDs: []uuid.UUID{lamp.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, "lounge", updated.Slug)
	assert.Equal(t, []uuid.UUID{lamp.ID}, updated.ProductIDs)

	collections, err := adminCatalog.ListCollections(ctx)
	require.NoError(t, err)
	require.Len(t, collections, 1)

	require.NoError(t, adminCatalog.DeleteCollection(ctx, collection.ID))
	_, err = adminCatalog.UpdateCollection(ctx, collection.ID, &usecase.CollectionInput{Title: "Gone"})
	assertDomainError(t, err, domainerrors.ErrCollectionNotFound)
}

func TestAdminCatalogService_CategoryRepositoryErrors(t *testing.T) {
	store := newMemStore()
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	collectionRepo := mockRepo.NewMockCollectionRepository(t)
	adminCatalog := NewAdminCatalogService(AdminCatalogServiceParams{
		TxManager:      store,
		ProductRepo:    store.ProductRepo(),
		CategoryRepo:   categoryRepo,
		CollectionRepo: collectionRepo,
		Config:         newTestConfig(0),
		Logger:         newDiscardLogger(),
	})
	ctx := context.Background()
	missingID := uuid.New()

	categoryRepo.EXPECT().Create(ctx, mock.MatchedBy(func(c *entity.Category) bool {
		return c.Slug == "bath-body"
	})).Return(errors.WithStack(domainerrors.ErrCategorySlugExists)).Once()
	categoryRepo.EXPECT().FindByID(ctx, missingID).Return(nil, errors.WithStack(domainerrors.ErrCategoryNotFound)).Once()
	collectionRepo.EXPECT().List(ctx).Return([]*entity.Collection{{Title: "Summer"}}, nil).Once()

	_, err := adminCatalog.CreateCategory(ctx, &usecase.CategoryInput{Title: "Bath & Body"})
	assertDomainError(t, err, domainerrors.ErrCategorySlugExists)

	_, err = adminCatalog.UpdateCategory(ctx, missingID, &usecase.CategoryInput{Title: "Kitchen"})
	assertDomainError(t, err, domainerrors.ErrCategoryNotFound)

	collections, err := adminCatalog.ListCollections(ctx)
	require.NoError(t, err)
	assert.Len(t, collections, 1)
}
