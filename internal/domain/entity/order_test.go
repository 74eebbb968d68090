package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{OrderStatusPendingPayment, OrderStatusPaid, true},
		{OrderStatusPendingPayment, OrderStatusCancelled, true},
		{OrderStatusPendingPayment, OrderStatusShipped, false},
		{OrderStatusPaid, OrderStatusProcessing, true},
		{OrderStatusProcessing, OrderStatusShipped, true},
		{OrderStatusProcessing, OrderStatusCancelled, false},
		{OrderStatusShipped, OrderStatusDelivered, true},
		{OrderStatusDelivered, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusPaid, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStoreSettings_Pricing(t *testing.T) {
	settings := &StoreSettings{
		TaxRate:               decimal.RequireFromString("0.18"),
		FreeShippingThreshold: decimal.NewFromInt(100),
	}
	rate := decimal.RequireFromString("9.99")

	assert.True(t, rate.Equal(settings.ShippingFee(decimal.NewFromInt(50), rate)))
	assert.True(t, settings.ShippingFee(decimal.NewFromInt(100), rate).IsZero())
	assert.True(t, decimal.RequireFromString("9.00").Equal(settings.Tax(decimal.NewFromInt(50))))

	noThreshold := &StoreSettings{}
	assert.True(t, rate.Equal(noThreshold.ShippingFee(decimal.NewFromInt(1000), rate)))
}
