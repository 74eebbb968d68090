package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Slug        string    `gorm:"type:varchar(200);uniqueIndex;not null"`
	Description string    `gorm:"type:text"`
	Image       string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ProductModel mirrors the 'products' table. Inventory is guarded by a CHECK constraint
// so a concurrent oversell fails at the database.
type ProductModel struct {
	ID            uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title         string           `gorm:"type:varchar(255);not null"`
	Slug          string           `gorm:"type:varchar(255);uniqueIndex;not null"`
	Description   string           `gorm:"type:text"`
	Price         decimal.Decimal  `gorm:"type:numeric(12,2);not null;check:chk_products_price,price >= 0"`
	ComparePrice  *decimal.Decimal `gorm:"type:numeric(12,2)"`
	CategoryID    *uuid.UUID       `gorm:"type:uuid;index"`
	Category      *CategoryModel   `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Tags          pq.StringArray   `gorm:"type:text[]"`
	Sizes         pq.StringArray   `gorm:"type:text[]"`
	Colors        pq.StringArray   `gorm:"type:text[]"`
	Images        pq.StringArray   `gorm:"type:text[]"`
	Inventory     int              `gorm:"not null;default:0;check:chk_products_inventory,inventory >= 0"`
	RatingAverage float64          `gorm:"type:numeric(3,2);not null;default:0"`
	RatingCount   int              `gorm:"not null;default:0"`
	Featured      bool             `gorm:"not null;default:false;index"`
	CreatedAt     time.Time        `gorm:"index"`
	UpdatedAt     time.Time

	Collections []CollectionProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// CollectionModel mirrors the 'collections' table.
type CollectionModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Slug        string    `gorm:"type:varchar(200);uniqueIndex;not null"`
	Description string    `gorm:"type:text"`
	Image       string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Products []CollectionProductModel `gorm:"foreignKey:CollectionID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CollectionModel) TableName() string {
	return "collections"
}

// CollectionProductModel mirrors the 'collection_products' join table.
type CollectionProductModel struct {
	CollectionID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID    uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Position     int       `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (CollectionProductModel) TableName() string {
	return "collection_products"
}

// ReviewModel mirrors the 'reviews' table. A user reviews a product once.
type ReviewModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_product_user"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_product_user"`
	UserName  string    `gorm:"type:varchar(100)"`
	Rating    int       `gorm:"not null;check:chk_reviews_rating,rating BETWEEN 1 AND 5"`
	Comment   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"index"`

	Product *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	User    *UserModel    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
