package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShippingMethodModel mirrors the 'shipping_methods' table.
type ShippingMethodModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string          `gorm:"type:varchar(100);not null"`
	Description string          `gorm:"type:text"`
	Rate        decimal.Decimal `gorm:"type:numeric(12,2);not null;check:chk_shipping_rate,rate >= 0"`
	MinDays     int             `gorm:"not null;default:0"`
	MaxDays     int             `gorm:"not null;default:0"`
	Active      bool            `gorm:"not null;default:true"`
	SortOrder   int             `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShippingMethodModel) TableName() string {
	return "shipping_methods"
}

// StoreSettingsID is the key of the single settings row.
const StoreSettingsID = 1

// StoreSettingsModel mirrors the single-row 'store_settings' table.
type StoreSettingsModel struct {
	ID                    int             `gorm:"primaryKey;autoIncrement:false"`
	StoreName             string          `gorm:"type:varchar(100);not null"`
	SupportEmail          string          `gorm:"type:varchar(255)"`
	Currency              string          `gorm:"type:varchar(3);not null"`
	TaxRate               decimal.Decimal `gorm:"type:numeric(5,4);not null;default:0"`
	FreeShippingThreshold decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	LowStockThreshold     int             `gorm:"not null;default:5"`
	UpdatedAt             time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoreSettingsModel) TableName() string {
	return "store_settings"
}

// ContactMessageModel mirrors the 'contact_messages' table.
type ContactMessageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Email     string    `gorm:"type:varchar(255);not null"`
	Subject   string    `gorm:"type:varchar(200)"`
	Message   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ContactMessageModel) TableName() string {
	return "contact_messages"
}

// All lists every model in dependency order; cmd/gen generates query code for these.
func All() []any {
	return []any{
		&UserModel{},
		&AuthenticationModel{},
		&RefreshTokenModel{},
		&CategoryModel{},
		&ProductModel{},
		&CollectionModel{},
		&CollectionProductModel{},
		&ReviewModel{},
		&CartItemModel{},
		&WishlistItemModel{},
		&ShippingMethodModel{},
		&OrderModel{},
		&OrderItemModel{},
		&StoreSettingsModel{},
		&ContactMessageModel{},
	}
}
