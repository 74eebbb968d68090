package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAdminCatalogHandler(t *testing.T) (*AdminCatalogHandler, *mockUsecase.MockAdminCatalogUsecase) {
	t.Helper()

	uc := mockUsecase.NewMockAdminCatalogUsecase(t)

	return NewAdminCatalogHandler(AdminCatalogHandlerParams{AdminUC: uc, Logger: slog.Default()}), uc
}

func TestAdminCatalogHandler_CreateProduct(t *testing.T) {
	h, uc := newTestAdminCatalogHandler(t)
	categoryID := uuid.New()
	created := &entity.Product{ID: uuid.New(), Title: "Classic Tee", Slug: "classic-tee"}

	uc.EXPECT().CreateProduct(mock.Anything, mock.MatchedBy(func(in *usecase.ProductInput) bool {
		return in.Title == "Classic Tee" &&
			in.Slug == "classic-tee" &&
			in.Price.Equal(decimal.RequireFromString("19.99")) &&
			in.ComparePrice != nil && in.ComparePrice.Equal(decimal.RequireFromString("24.50")) &&
			in.CategoryID != nil && *in.CategoryID == categoryID &&
			assert.ObjectsAreEqual([]string{"S", "M"}, in.Sizes) &&
			in.Inventory == 12 &&
			in.Featured
	})).Return(created, nil).Once()

	body := `{"title":"  Classic Tee ","slug":"classic-tee","price":"19.99","comparePrice":24.50,` +
		`"categoryId":"` + categoryID.String() + `","sizes":["S","M"],"inventory":12,"featured":true}`
	c, rec := newTestContext(http.MethodPost, "/api/admin/products", strings.NewReader(body))

	require.NoError(t, h.CreateProduct(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, string(decodeEnvelope(t, rec).Data), created.ID.String())
}

func TestAdminCatalogHandler_CreateProduct_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{name: "missing title", body: `{"price":"10"}`, wantCode: "VALIDATION_FAILED"},
		{name: "bad slug", body: `{"title":"Tee","slug":"Not A Slug"}`, wantCode: "VALIDATION_FAILED"},
		{name: "negative inventory", body: `{"title":"Tee","inventory":-1}`, wantCode: "VALIDATION_FAILED"},
		{name: "bad image url", body: `{"title":"Tee","images":["nope"]}`, wantCode: "VALIDATION_FAILED"},
		{name: "price not a number", body: `{"title":"Tee","price":"ten"}`, wantCode: "INVALID_INPUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestAdminCatalogHandler(t)

			c, rec := newTestContext(http.MethodPost, "/api/admin/products", strings.NewReader(tt.body))

			require.NoError(t, h.CreateProduct(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantCode, decodeEnvelope(t, rec).Error.Code)
		})
	}
}

func TestAdminCatalogHandler_UpdateProduct(t *testing.T) {
	h, uc := newTestAdminCatalogHandler(t)
	productID := uuid.New()
	collectionID := uuid.New()

	uc.EXPECT().UpdateProduct(mock.Anything, productID, mock.MatchedBy(func(in *usecase.ProductInput) bool {
		return in.Title == "Classic Tee" &&
			in.Price.Equal(decimal.RequireFromString("21")) &&
			in.ComparePrice == nil &&
			assert.ObjectsAreEqual([]uuid.UUID{collectionID}, in.CollectionIDs)
	})).Return(&entity.Product{ID: productID}, nil).Once()

	body := `{"title":"Classic Tee","price":"21.00","collectionIds":["` + collectionID.String() + `"]}`
	c, rec := newTestContext(http.MethodPut, "/api/admin/products/x", strings.NewReader(body))
	c.SetParamNames("id")
	c.SetParamValues(productID.String())

	require.NoError(t, h.UpdateProduct(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminCatalogHandler_UpdateProduct_NotFound(t *testing.T) {
	h, uc := newTestAdminCatalogHandler(t)
	productID := uuid.New()

	uc.EXPECT().UpdateProduct(mock.Anything, productID, mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrProductNotFound)).Once()

	c, rec := newTestContext(http.MethodPut, "/api/admin/products/x", strings.NewReader(`{"title":"Tee"}`))
	c.SetParamNames("id")
	c.SetParamValues(productID.String())

	require.NoError(t, h.UpdateProduct(c))
	assert.Equal(t, domainerrors.ErrProductNotFound.HTTPCode(), rec.Code)
}

func TestAdminCatalogHandler_CreateCollection(t *testing.T) {
	h, uc := newTestAdminCatalogHandler(t)
	memberID := uuid.New()

	uc.EXPECT().CreateCollection(mock.Anything, &usecase.CollectionInput{
		Title:      "Summer",
		Slug:       "summer",
		ProductIDs: []uuid.UUID{memberID},
	}).Return(&entity.Collection{ID: uuid.New()}, nil).Once()

	c, rec := newTestContext(http.MethodPost, "/api/admin/collections",
		strings.NewReader(`{"title":"Summer ","slug":"summer","productIds":["`+memberID.String()+`"]}`))

	require.NoError(t, h.CreateCollection(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAdminCatalogHandler_DeleteCategory_NotFound(t *testing.T) {
	h, uc := newTestAdminCatalogHandler(t)
	categoryID := uuid.New()

	uc.EXPECT().DeleteCategory(mock.Anything, categoryID).
		Return(errors.WithStack(domainerrors.ErrCategoryNotFound)).Once()

	c, rec := newTestContext(http.MethodDelete, "/api/admin/categories/x", nil)
	c.SetParamNames("id")
	c.SetParamValues(categoryID.String())

	require.NoError(t, h.DeleteCategory(c))
	assert.Equal(t, domainerrors.ErrCategoryNotFound.HTTPCode(), rec.Code)
}
