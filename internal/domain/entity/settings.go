package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StoreSettings is the single row of store-wide configuration edited in the back-office.
type StoreSettings struct {
	StoreName             string          `json:"storeName"`
	SupportEmail          string          `json:"supportEmail"`
	Currency              string          `json:"currency"`
	TaxRate               decimal.Decimal `json:"taxRate"`               // Fraction of the subtotal, e.g. 0.18.
	FreeShippingThreshold decimal.Decimal `json:"freeShippingThreshold"` // Zero disables free shipping.
	LowStockThreshold     int             `json:"lowStockThreshold"`
	UpdatedAt             time.Time       `json:"updatedAt"`
}

// DefaultStoreSettings is used until an administrator saves settings.
func DefaultStoreSettings(currency string) *StoreSettings {
	return &StoreSettings{
		StoreName:             "Storefront",
		Currency:              currency,
		TaxRate:               decimal.Zero,
		FreeShippingThreshold: decimal.Zero,
		LowStockThreshold:     5,
	}
}

// ShippingFee returns the fee for a subtotal given a method rate.
func (s *StoreSettings) ShippingFee(subtotal, rate decimal.Decimal) decimal.Decimal {
	if s.FreeShippingThreshold.IsPositive() && subtotal.GreaterThanOrEqual(s.FreeShippingThreshold) {
		return decimal.Zero
	}

	return rate
}

// Tax returns the tax due on a subtotal, rounded to cents.
func (s *StoreSettings) Tax(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(s.TaxRate).Round(2)
}

// PublicStoreSettings is the subset exposed to shoppers.
type PublicStoreSettings struct {
	StoreName             string          `json:"storeName"`
	SupportEmail          string          `json:"supportEmail"`
	Currency              string          `json:"currency"`
	TaxRate               decimal.Decimal `json:"taxRate"`
	FreeShippingThreshold decimal.Decimal `json:"freeShippingThreshold"`
}

// Public strips back-office only fields.
func (s *StoreSettings) Public() *PublicStoreSettings {
	return &PublicStoreSettings{
		StoreName:             s.StoreName,
		SupportEmail:          s.SupportEmail,
		Currency:              s.Currency,
		TaxRate:               s.TaxRate,
		FreeShippingThreshold: s.FreeShippingThreshold,
	}
}
