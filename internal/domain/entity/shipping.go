package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShippingMethod is a delivery option offered at checkout.
type ShippingMethod struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Rate        decimal.Decimal `json:"rate"`
	MinDays     int             `json:"minDays"`
	MaxDays     int             `json:"maxDays"`
	Active      bool            `json:"active"`
	SortOrder   int             `json:"sortOrder"`
}
