package postgres

import (
	"context"
	"slices"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// productRepository implements the domain.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) withRelations(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("Category").
		Preload("Collections", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		})
}

// FindByID retrieves a product with its category and collection membership.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.withRelations(ctx).Where("id = ?", id).First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// FindBySlug retrieves a product by its URL slug.
func (repo *productRepository) FindBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.withRelations(ctx).Where("slug = ?", slug).First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find product by slug")
	}

	return toProductDomain(&productM), nil
}

// FindByIDs returns the existing products among ids.
func (repo *productRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	var productModels []*model.ProductModel
	if err := repo.withRelations(ctx).Where("id IN ?", ids).Find(&productModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find products by ids")
	}

	return toProductDomains(productModels), nil
}

// List loads the products inside scope, newest first.
func (repo *productRepository) List(ctx context.Context, scope repository.ProductScope) ([]*entity.Product, error) {
	query := repo.withRelations(ctx)

	if scope.CategoryID != nil {
		query = query.Where("category_id = ?", *scope.CategoryID)
	}
	if scope.CollectionID != nil {
		members := repo.db.Model(&model.CollectionProductModel{}).
			Select("product_id").
			Where("collection_id = ?", *scope.CollectionID)
		query = query.Where("id IN (?)", members)
	}
	if search := strings.TrimSpace(scope.Search); search != "" {
		pattern := likePattern(search)
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var productModels []*model.ProductModel
	if err := query.Order("created_at DESC, id ASC").Find(&productModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list products")
	}

	return toProductDomains(productModels), nil
}

// Create persists a new product and its collection membership.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(productM).Error; err != nil {
		return translateProductWriteError(err, "failed to create product")
	}

	if err := repo.replaceCollections(ctx, productM.ID, product.CollectionIDs); err != nil {
		return err
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update overwrites the editable fields and collection membership of a product.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"title":         productM.Title,
			"slug":          productM.Slug,
			"description":   productM.Description,
			"price":         productM.Price,
			"compare_price": productM.ComparePrice,
			"category_id":   productM.CategoryID,
			"tags":          productM.Tags,
			"sizes":         productM.Sizes,
			"colors":        productM.Colors,
			"images":        productM.Images,
			"inventory":     productM.Inventory,
			"featured":      productM.Featured,
		})
	if result.Error != nil {
		return translateProductWriteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrProductNotFound
	}

	return repo.replaceCollections(ctx, product.ID, product.CollectionIDs)
}

// Delete removes a product. Join rows, cart lines, wishlist rows and reviews cascade.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProductModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WrapMessage("product is referenced by orders")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrProductNotFound
	}

	return nil
}

// LockByIDs selects the rows FOR UPDATE on the primary in ascending id order, so
// concurrent checkouts acquire locks in the same sequence. Relations are not loaded.
func (repo *productRepository) LockByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	sorted := slices.Clone(ids)
	slices.SortFunc(sorted, func(a, b uuid.UUID) int {
		return strings.Compare(a.String(), b.String())
	})
	sorted = slices.Compact(sorted)

	var productModels []*model.ProductModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write, clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", sorted).
		Order("id ASC").
		Find(&productModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to lock products")
	}

	return toProductDomains(productModels), nil
}

// AdjustInventory applies delta atomically. The guard keeps stock from going negative.
func (repo *productRepository) AdjustInventory(ctx context.Context, id uuid.UUID, delta int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND inventory + ? >= 0", id, delta).
		Update("inventory", gorm.Expr("inventory + ?", delta))
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrOutOfStock
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to adjust inventory")
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ProductModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to check product")
	}
	if count == 0 {
		return domainerrors.ErrProductNotFound
	}

	return domainerrors.ErrOutOfStock
}

// UpdateRating stores a freshly aggregated rating.
func (repo *productRepository) UpdateRating(ctx context.Context, id uuid.UUID, rating entity.Rating) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"rating_average": rating.Average,
			"rating_count":   rating.Count,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product rating")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrProductNotFound
	}

	return nil
}

// FindLowStock lists products at or below threshold, optionally restricted to ids.
func (repo *productRepository) FindLowStock(ctx context.Context, threshold int, ids []uuid.UUID) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).Where("inventory <= ?", threshold)
	if len(ids) > 0 {
		query = query.Where("id IN ?", ids)
	}

	var productModels []*model.ProductModel
	if err := query.Order("inventory ASC, id ASC").Find(&productModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find low stock products")
	}

	return toProductDomains(productModels), nil
}

// CountLowStock counts products at or below threshold.
func (repo *productRepository) CountLowStock(ctx context.Context, threshold int) (int, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&model.ProductModel{}).Where("inventory <= ?", threshold).Count(&count).Error
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count low stock products")
	}

	return int(count), nil
}

// Count returns the number of products.
func (repo *productRepository) Count(ctx context.Context) (int, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ProductModel{}).Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count products")
	}

	return int(count), nil
}

func (repo *productRepository) replaceCollections(ctx context.Context, productID uuid.UUID, collectionIDs []uuid.UUID) error {
	db := repo.db.WithContext(ctx)
	if err := db.Where("product_id = ?", productID).Delete(&model.CollectionProductModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear product collections")
	}
	if len(collectionIDs) == 0 {
		return nil
	}

	rows := make([]model.CollectionProductModel, 0, len(collectionIDs))
	for _, collectionID := range collectionIDs {
		rows = append(rows, model.CollectionProductModel{CollectionID: collectionID, ProductID: productID})
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCollectionNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to set product collections")
	}

	return nil
}

func translateProductWriteError(err error, details string) error {
	if isUniqueConstraintViolation(err) {
		return domainerrors.ErrProductSlugExists
	}
	if isForeignKeyConstraintViolation(err) {
		return domainerrors.ErrCategoryNotFound
	}
	if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
		return domainerrors.ErrInvalidProduct.WrapMessage(details)
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

// likePattern turns free text into an ILIKE substring pattern with metacharacters escaped.
func likePattern(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

	return "%" + replacer.Replace(s) + "%"
}

// --- Mapper Functions ---

func toProductDomains(models []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(models))
	for _, m := range models {
		products = append(products, toProductDomain(m))
	}

	return products
}

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	product := &entity.Product{
		ID:            data.ID,
		Title:         data.Title,
		Slug:          data.Slug,
		Description:   data.Description,
		Price:         data.Price,
		ComparePrice:  data.ComparePrice,
		CategoryID:    data.CategoryID,
		CollectionIDs: make([]uuid.UUID, 0, len(data.Collections)),
		Tags:          stringsOrEmpty(data.Tags),
		Sizes:         stringsOrEmpty(data.Sizes),
		Colors:        stringsOrEmpty(data.Colors),
		Images:        stringsOrEmpty(data.Images),
		Inventory:     data.Inventory,
		Rating:        entity.Rating{Average: data.RatingAverage, Count: data.RatingCount},
		Featured:      data.Featured,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
	if data.Category != nil {
		product.Category = &entity.CategorySummary{
			ID:    data.Category.ID,
			Title: data.Category.Title,
			Slug:  data.Category.Slug,
		}
	}
	for _, membership := range data.Collections {
		product.CollectionIDs = append(product.CollectionIDs, membership.CollectionID)
	}

	return product
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:            data.ID,
		Title:         data.Title,
		Slug:          data.Slug,
		Description:   data.Description,
		Price:         data.Price,
		ComparePrice:  data.ComparePrice,
		CategoryID:    data.CategoryID,
		Tags:          pq.StringArray(data.Tags),
		Sizes:         pq.StringArray(data.Sizes),
		Colors:        pq.StringArray(data.Colors),
		Images:        pq.StringArray(data.Images),
		Inventory:     data.Inventory,
		RatingAverage: data.Rating.Average,
		RatingCount:   data.Rating.Count,
		Featured:      data.Featured,
	}
}

func stringsOrEmpty(values pq.StringArray) []string {
	if values == nil {
		return []string{}
	}

	return []string(values)
}
