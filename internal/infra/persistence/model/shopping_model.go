package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItemModel mirrors the 'cart_items' table. A line is identified by product, size and color.
type CartItemModel struct {
	UserID    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Size      string          `gorm:"type:varchar(50);primaryKey;default:''"`
	Color     string          `gorm:"type:varchar(50);primaryKey;default:''"`
	Title     string          `gorm:"type:varchar(255);not null"`
	Slug      string          `gorm:"type:varchar(255)"`
	Image     string          `gorm:"type:text"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity  int             `gorm:"not null;check:chk_cart_items_quantity,quantity > 0"`
	Position  int             `gorm:"not null;default:0"`
	UpdatedAt time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}

// WishlistItemModel mirrors the 'wishlist_items' table.
type WishlistItemModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (WishlistItemModel) TableName() string {
	return "wishlist_items"
}

// AddressData is the shipping address stored as JSON on an order.
type AddressData struct {
	FullName   string `json:"fullName"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
}

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Number             string          `gorm:"type:varchar(40);uniqueIndex;not null"`
	UserID             uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_orders_user_idempotency,where:idempotency_key <> ''"`
	Email              string          `gorm:"type:varchar(255);not null"`
	ShippingAddress    AddressData     `gorm:"type:jsonb;serializer:json"`
	ShippingMethodID   uuid.UUID       `gorm:"type:uuid"`
	ShippingMethodName string          `gorm:"type:varchar(100)"`
	ShippingRate       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Subtotal           decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ShippingFee        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Tax                decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Total              decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Currency           string          `gorm:"type:varchar(3);not null"`
	Status             string          `gorm:"type:varchar(30);not null;index"`
	PaymentProvider    string          `gorm:"type:varchar(30)"`
	PaymentReference   string          `gorm:"type:varchar(100);index"`
	PaymentID          string          `gorm:"type:varchar(100)"`
	PaymentRedirectURL string          `gorm:"type:text"`
	PaidAt             *time.Time
	IdempotencyKey     string `gorm:"type:varchar(100);uniqueIndex:idx_orders_user_idempotency,where:idempotency_key <> ''"`
	CreatedAt          time.Time `gorm:"index"`
	UpdatedAt          time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table.
type OrderItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Title     string          `gorm:"type:varchar(255);not null"`
	Slug      string          `gorm:"type:varchar(255)"`
	Image     string          `gorm:"type:text"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Size      string          `gorm:"type:varchar(50)"`
	Color     string          `gorm:"type:varchar(50)"`
	Quantity  int             `gorm:"not null"`
	LineTotal decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Position  int             `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
