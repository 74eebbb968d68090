package payment

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeOrders struct {
	received map[string]interface{}
	response map[string]interface{}
	err      error
}

func (f *fakeOrders) Create(data map[string]interface{}, _ map[string]string) (map[string]interface{}, error) {
	f.received = data

	return f.response, f.err
}

func TestSign_KnownVector(t *testing.T) {
	sig := Sign("secret", "order_1", "pay_1")
	assert.Equal(t, "52115a0d3400de9e86aade1f1b6eba9e8974604f4e267a9e9a16633a4c8dd2cb", sig)
	assert.NotEqual(t, sig, Sign("secret", "order_1", "pay_2"))
	assert.NotEqual(t, sig, Sign("other", "order_1", "pay_1"))
}

func TestVerifySignature(t *testing.T) {
	gateway := NewManualGateway("secret", "")
	valid := service.PaymentConfirmation{
		Reference: "manual_SF-1",
		PaymentID: "pay_1",
		Signature: Sign("secret", "manual_SF-1", "pay_1"),
	}

	tests := []struct {
		name   string
		mutate func(c *service.PaymentConfirmation)
		want   bool
	}{
		{"valid", func(*service.PaymentConfirmation) {}, true},
		{"tampered payment id", func(c *service.PaymentConfirmation) { c.PaymentID = "pay_2" }, false},
		{"tampered reference", func(c *service.PaymentConfirmation) { c.Reference = "manual_SF-2" }, false},
		{"tampered signature", func(c *service.PaymentConfirmation) { c.Signature = "00" + c.Signature[2:] }, false},
		{"missing signature", func(c *service.PaymentConfirmation) { c.Signature = "" }, false},
		{"missing payment id", func(c *service.PaymentConfirmation) { c.PaymentID = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			confirmation := valid
			tt.mutate(&confirmation)
			assert.Equal(t, tt.want, gateway.VerifySignature(confirmation))
		})
	}
}

func TestManualGateway_CreatePayment(t *testing.T) {
	gateway := NewManualGateway("secret", "https://shop.example.com/pay")

	session, err := gateway.CreatePayment(context.Background(), service.PaymentRequest{
		OrderID: "42",
		Receipt: "SF-1",
		Amount:  decimal.RequireFromString("10.50"),
	})
	require.NoError(t, err)

	assert.Equal(t, constants.PaymentProviderManual, session.Provider)
	assert.Equal(t, "manual_SF-1", session.Reference)
	assert.Equal(t, "https://shop.example.com/pay?order=42&reference=manual_SF-1", session.RedirectURL)
}

func TestRazorpayGateway_CreatePayment(t *testing.T) {
	orders := &fakeOrders{response: map[string]interface{}{"id": "order_Rz1"}}
	gateway := &razorpayGateway{orders: orders, keyID: "rzp_test", keySecret: "s", logger: newDiscardLogger()}

	session, err := gateway.CreatePayment(context.Background(), service.PaymentRequest{
		OrderID:  "42",
		Receipt:  "SF-1",
		Amount:   decimal.RequireFromString("499.99"),
		Currency: "INR",
	})
	require.NoError(t, err)

	assert.Equal(t, "order_Rz1", session.Reference)
	assert.Equal(t, "rzp_test", session.PublicKey)
	assert.Equal(t, int64(49999), orders.received["amount"])
	assert.Equal(t, "INR", orders.received["currency"])
	assert.Equal(t, "SF-1", orders.received["receipt"])
}

func TestRazorpayGateway_CreatePayment_Failure(t *testing.T) {
	gateway := &razorpayGateway{
		orders: &fakeOrders{err: errors.New("bad request")},
		logger: newDiscardLogger(),
	}

	_, err := gateway.CreatePayment(context.Background(), service.PaymentRequest{Amount: decimal.NewFromInt(1)})
	assert.Error(t, err)

	gateway.orders = &fakeOrders{response: map[string]interface{}{}}
	_, err = gateway.CreatePayment(context.Background(), service.PaymentRequest{Amount: decimal.NewFromInt(1)})
	assert.Error(t, err)
}

func TestNewPaymentGateway(t *testing.T) {
	t.Run("manual falls back to access secret", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.SecretKey.Access = "access"

		gateway, err := NewPaymentGateway(cfg, newDiscardLogger())
		require.NoError(t, err)
		assert.Equal(t, constants.PaymentProviderManual, gateway.Provider())
	})

	t.Run("manual without any secret", func(t *testing.T) {
		_, err := NewPaymentGateway(&config.Config{}, newDiscardLogger())
		assert.Error(t, err)
	})

	t.Run("razorpay requires keys", func(t *testing.T) {
		cfg := &config.Config{Payment: &config.PaymentConfig{Provider: constants.PaymentProviderRazorpay}}
		_, err := NewPaymentGateway(cfg, newDiscardLogger())
		assert.Error(t, err)
	})

	t.Run("razorpay", func(t *testing.T) {
		cfg := &config.Config{Payment: &config.PaymentConfig{
			Provider:  constants.PaymentProviderRazorpay,
			KeyID:     "rzp_test",
			KeySecret: "secret",
		}}
		gateway, err := NewPaymentGateway(cfg, newDiscardLogger())
		require.NoError(t, err)
		assert.Equal(t, constants.PaymentProviderRazorpay, gateway.Provider())
	})

	t.Run("unknown provider", func(t *testing.T) {
		cfg := &config.Config{Payment: &config.PaymentConfig{Provider: "paypal"}}
		_, err := NewPaymentGateway(cfg, newDiscardLogger())
		assert.Error(t, err)
	})
}
