package handler

import (
	"log/slog"
	"strings"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// AdminCatalogHandlerParams holds dependencies for AdminCatalogHandler, injected by Fx.
type AdminCatalogHandlerParams struct {
	fx.In

	AdminUC usecase.AdminCatalogUsecase
	Logger  *slog.Logger
}

// AdminCatalogHandler manages products, categories and collections for the back-office.
type AdminCatalogHandler struct {
	adminUC usecase.AdminCatalogUsecase
	logger  *slog.Logger
}

// NewAdminCatalogHandler is the constructor for AdminCatalogHandler
func NewAdminCatalogHandler(params AdminCatalogHandlerParams) *AdminCatalogHandler {
	return &AdminCatalogHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// ProductRequest is the editable part of a product
type ProductRequest struct {
	Title         string           `json:"title" validate:"required,max=200"`
	Slug          string           `json:"slug" validate:"omitempty,slug,max=200"`
	Description   string           `json:"description" validate:"max=10000"`
	Price         decimal.Decimal  `json:"price"`
	ComparePrice  *decimal.Decimal `json:"comparePrice"`
	CategoryID    *uuid.UUID       `json:"categoryId"`
	CollectionIDs []uuid.UUID      `json:"collectionIds"`
	Tags          []string         `json:"tags" validate:"max=30,dive,required,max=50"`
	Sizes         []string         `json:"sizes" validate:"max=30,dive,required,max=50"`
	Colors        []string         `json:"colors" validate:"max=30,dive,required,max=50"`
	Images        []string         `json:"images" validate:"max=20,dive,required,url"`
	Inventory     int              `json:"inventory" validate:"min=0"`
	Featured      bool             `json:"featured"`
}

func (r *ProductRequest) toInput() *usecase.ProductInput {
	return &usecase.ProductInput{
		Title:         strings.TrimSpace(r.Title),
		Slug:          strings.TrimSpace(r.Slug),
		Description:   r.Description,
		Price:         r.Price,
		ComparePrice:  r.ComparePrice,
		CategoryID:    r.CategoryID,
		CollectionIDs: r.CollectionIDs,
		Tags:          r.Tags,
		Sizes:         r.Sizes,
		Colors:        r.Colors,
		Images:        r.Images,
		Inventory:     r.Inventory,
		Featured:      r.Featured,
	}
}

// CategoryRequest is the editable part of a category
type CategoryRequest struct {
	Title       string `json:"title" validate:"required,max=100"`
	Slug        string `json:"slug" validate:"omitempty,slug,max=100"`
	Description string `json:"description" validate:"max=2000"`
	Image       string `json:"image" validate:"omitempty,url"`
}

func (r *CategoryRequest) toInput() *usecase.CategoryInput {
	return &usecase.CategoryInput{
		Title:       strings.TrimSpace(r.Title),
		Slug:        strings.TrimSpace(r.Slug),
		Description: r.Description,
		Image:       r.Image,
	}
}

// CollectionRequest is the editable part of a collection and its members
type CollectionRequest struct {
	Title       string      `json:"title" validate:"required,max=100"`
	Slug        string      `json:"slug" validate:"omitempty,slug,max=100"`
	Description string      `json:"description" validate:"max=2000"`
	Image       string      `json:"image" validate:"omitempty,url"`
	ProductIDs  []uuid.UUID `json:"productIds"`
}

func (r *CollectionRequest) toInput() *usecase.CollectionInput {
	return &usecase.CollectionInput{
		Title:       strings.TrimSpace(r.Title),
		Slug:        strings.TrimSpace(r.Slug),
		Description: r.Description,
		Image:       r.Image,
		ProductIDs:  r.ProductIDs,
	}
}

// bindValid binds and validates a request body, writing the error response itself.
// A nil return with written == true means the response is already committed.
func bindValid(c echo.Context, req any, message string) (written bool, err error) {
	if err := c.Bind(req); err != nil {
		return true, response.BindingError(c, message)
	}
	if err := c.Validate(req); err != nil {
		return true, response.ValidationError(c, err)
	}

	return false, nil
}

// ListProducts returns one page of products, optionally matching a search term
func (h *AdminCatalogHandler) ListProducts(c echo.Context) error {
	page, err := pageRequest(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	products, err := h.adminUC.ListProducts(c.Request().Context(), strings.TrimSpace(c.QueryParam("search")), page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, products)
}

// GetProduct returns a product by id
func (h *AdminCatalogHandler) GetProduct(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.adminUC.GetProduct(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, product)
}

// CreateProduct adds a product
func (h *AdminCatalogHandler) CreateProduct(c echo.Context) error {
	var req ProductRequest
	if written, err := bindValid(c, &req, "Invalid product input"); written {
		return err
	}

	product, err := h.adminUC.CreateProduct(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, product)
}

// UpdateProduct replaces a product's editable fields
func (h *AdminCatalogHandler) UpdateProduct(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ProductRequest
	if written, err := bindValid(c, &req, "Invalid product input"); written {
		return err
	}

	product, err := h.adminUC.UpdateProduct(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, product)
}

// DeleteProduct removes a product
func (h *AdminCatalogHandler) DeleteProduct(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.adminUC.DeleteProduct(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]string{"message": "Product deleted"})
}

// ListCategories returns every category
func (h *AdminCatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.adminUC.ListCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, categories)
}

// CreateCategory adds a category
func (h *AdminCatalogHandler) CreateCategory(c echo.Context) error {
	var req CategoryRequest
	if written, err := bindValid(c, &req, "Invalid category input"); written {
		return err
	}

	category, err := h.adminUC.CreateCategory(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, category)
}

// UpdateCategory replaces a category's editable fields
func (h *AdminCatalogHandler) UpdateCategory(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CategoryRequest
	if written, err := bindValid(c, &req, "Invalid category input"); written {
		return err
	}

	category, err := h.adminUC.UpdateCategory(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, category)
}

// DeleteCategory removes a category
func (h *AdminCatalogHandler) DeleteCategory(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.adminUC.DeleteCategory(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]string{"message": "Category deleted"})
}

// ListCollections returns every collection
func (h *AdminCatalogHandler) ListCollections(c echo.Context) error {
	collections, err := h.adminUC.ListCollections(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, collections)
}

// CreateCollection adds a collection
func (h *AdminCatalogHandler) CreateCollection(c echo.Context) error {
	var req CollectionRequest
	if written, err := bindValid(c, &req, "Invalid collection input"); written {
		return err
	}

	collection, err := h.adminUC.CreateCollection(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, collection)
}

// UpdateCollection replaces a collection's editable fields and members
func (h *AdminCatalogHandler) UpdateCollection(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CollectionRequest
	if written, err := bindValid(c, &req, "Invalid collection input"); written {
		return err
	}

	collection, err := h.adminUC.UpdateCollection(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, collection)
}

// DeleteCollection removes a collection
func (h *AdminCatalogHandler) DeleteCollection(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.adminUC.DeleteCollection(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]string{"message": "Collection deleted"})
}
