package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	StoreUC   usecase.StoreUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves the public, read-only storefront endpoints.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	storeUC   usecase.StoreUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		storeUC:   params.StoreUC,
		logger:    params.Logger,
	}
}

// PublicSettings is the part of the store settings shoppers may see.
type PublicSettings struct {
	StoreName             string          `json:"storeName"`
	SupportEmail          string          `json:"supportEmail"`
	Currency              string          `json:"currency"`
	TaxRate               decimal.Decimal `json:"taxRate"`
	FreeShippingThreshold decimal.Decimal `json:"freeShippingThreshold"`
}

// ProductQRResponse is returned for ?format=json QR code requests.
type ProductQRResponse struct {
	URL string `json:"url"`
	PNG []byte `json:"png"`
}

// ListProducts returns one filtered, sorted page of products
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	input, err := listProductsInput(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	listing, err := h.catalogUC.ListProducts(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, listing)
}

// ProductFilters returns the facets offered by the filter sidebar
func (h *CatalogHandler) ProductFilters(c echo.Context) error {
	input, err := listProductsInput(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	// Facets describe the whole scope, so slugs are resolved through a listing.
	if input.CategorySlug != "" || input.CollectionSlug != "" {
		input.IncludeFacets = true
		listing, err := h.catalogUC.ListProducts(c.Request().Context(), input)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.OK(c, listing.Facets)
	}

	facets, err := h.catalogUC.ProductFacets(c.Request().Context(), input.Filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, facets)
}

// GetProduct returns a product by slug
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	product, err := h.catalogUC.GetProduct(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, product)
}

// RelatedProducts returns other products from the same category
func (h *CatalogHandler) RelatedProducts(c echo.Context) error {
	products, err := h.catalogUC.RelatedProducts(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, products)
}

// ProductQRCode returns a PNG QR code linking to the product page
func (h *CatalogHandler) ProductQRCode(c echo.Context) error {
	code, err := h.catalogUC.ProductQRCode(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if c.QueryParam("format") == "json" {
		return response.OK(c, &ProductQRResponse{URL: code.URL, PNG: code.PNG})
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=86400")

	return c.Blob(http.StatusOK, "image/png", code.PNG)
}

// ListCategories returns every category
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogUC.ListCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, categories)
}

// GetCategory returns a category and a filtered page of its products
func (h *CatalogHandler) GetCategory(c echo.Context) error {
	input, err := listProductsInput(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	detail, err := h.catalogUC.GetCategory(c.Request().Context(), c.Param("slug"), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, detail)
}

// ListCollections returns every collection
func (h *CatalogHandler) ListCollections(c echo.Context) error {
	collections, err := h.catalogUC.ListCollections(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, collections)
}

// GetCollection returns a collection and a filtered page of its products
func (h *CatalogHandler) GetCollection(c echo.Context) error {
	input, err := listProductsInput(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	detail, err := h.catalogUC.GetCollection(c.Request().Context(), c.Param("slug"), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, detail)
}

// ListShippingMethods returns the shipping methods offered at checkout
func (h *CatalogHandler) ListShippingMethods(c echo.Context) error {
	methods, err := h.storeUC.ListShippingMethods(c.Request().Context(), true)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, methods)
}

// PublicSettings returns the store settings needed to render prices and totals
func (h *CatalogHandler) PublicSettings(c echo.Context) error {
	settings, err := h.storeUC.GetSettings(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, &PublicSettings{
		StoreName:             settings.StoreName,
		SupportEmail:          settings.SupportEmail,
		Currency:              settings.Currency,
		TaxRate:               settings.TaxRate,
		FreeShippingThreshold: settings.FreeShippingThreshold,
	})
}
