package usecase

import (
	"context"
	"io"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductInput is the editable part of a product. An empty slug is derived from the title.
type ProductInput struct {
	Title         string
	Slug          string
	Description   string
	Price         decimal.Decimal
	ComparePrice  *decimal.Decimal
	CategoryID    *uuid.UUID
	CollectionIDs []uuid.UUID
	Tags          []string
	Sizes         []string
	Colors        []string
	Images        []string
	Inventory     int
	Featured      bool
}

// CategoryInput is the editable part of a category.
type CategoryInput struct {
	Title       string
	Slug        string
	Description string
	Image       string
}

// CollectionInput is the editable part of a collection, including its membership.
type CollectionInput struct {
	Title       string
	Slug        string
	Description string
	Image       string
	ProductIDs  []uuid.UUID
}

// AdminCatalogUsecase is the back-office side of the catalog.
type AdminCatalogUsecase interface {
	ListProducts(ctx context.Context, search string, page entity.PageRequest) (entity.Page[*entity.Product], error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input *ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	ListCategories(ctx context.Context) ([]*entity.Category, error)
	CreateCategory(ctx context.Context, input *CategoryInput) (*entity.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, input *CategoryInput) (*entity.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	ListCollections(ctx context.Context) ([]*entity.Collection, error)
	CreateCollection(ctx context.Context, input *CollectionInput) (*entity.Collection, error)
	UpdateCollection(ctx context.Context, id uuid.UUID, input *CollectionInput) (*entity.Collection, error)
	DeleteCollection(ctx context.Context, id uuid.UUID) error
}

// ShippingMethodInput is the editable part of a shipping method.
type ShippingMethodInput struct {
	Name        string
	Description string
	Rate        decimal.Decimal
	MinDays     int
	MaxDays     int
	Active      bool
	SortOrder   int
}

// StoreSettingsInput replaces the store settings.
type StoreSettingsInput struct {
	StoreName             string
	SupportEmail          string
	Currency              string
	TaxRate               decimal.Decimal
	FreeShippingThreshold decimal.Decimal
	LowStockThreshold     int
}

// StoreUsecase covers shipping methods, store settings and the dashboard.
type StoreUsecase interface {
	// ListShippingMethods returns every method, or only active ones for shoppers.
	ListShippingMethods(ctx context.Context, activeOnly bool) ([]*entity.ShippingMethod, error)
	CreateShippingMethod(ctx context.Context, input *ShippingMethodInput) (*entity.ShippingMethod, error)
	UpdateShippingMethod(ctx context.Context, id uuid.UUID, input *ShippingMethodInput) (*entity.ShippingMethod, error)
	DeleteShippingMethod(ctx context.Context, id uuid.UUID) error

	// GetSettings returns the saved settings or the defaults.
	GetSettings(ctx context.Context) (*entity.StoreSettings, error)
	UpdateSettings(ctx context.Context, input *StoreSettingsInput) (*entity.StoreSettings, error)

	Dashboard(ctx context.Context) (*entity.DashboardStats, error)
}

// UploadImageInput is a file received from the back-office.
type UploadImageInput struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// UploadUsecase stores catalog images.
type UploadUsecase interface {
	UploadImage(ctx context.Context, input *UploadImageInput) (*service.UploadResult, error)
	DeleteImage(ctx context.Context, key string) error
}
