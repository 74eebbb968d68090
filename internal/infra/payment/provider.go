// Package payment implements the checkout payment gateways.
package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

// NewPaymentGateway selects the gateway named by payment.provider. An empty provider
// falls back to the manual gateway.
func NewPaymentGateway(cfg *config.Config, logger *slog.Logger) (service.PaymentGateway, error) {
	paymentCfg := cfg.Payment
	if paymentCfg == nil {
		paymentCfg = &config.PaymentConfig{}
	}

	switch paymentCfg.Provider {
	case "", constants.PaymentProviderManual:
		secret := paymentCfg.KeySecret
		if secret == "" {
			secret = cfg.SecretKey.Access
		}
		if secret == "" {
			return nil, errors.New("payment.keySecret or secretKey.access is required for the manual provider")
		}
		logger.Info("Using manual payment gateway")

		return NewManualGateway(secret, paymentCfg.RedirectURL), nil

	case constants.PaymentProviderRazorpay:
		if paymentCfg.KeyID == "" || paymentCfg.KeySecret == "" {
			return nil, errors.New("payment.keyId and payment.keySecret are required for razorpay")
		}
		logger.Info("Using Razorpay payment gateway", slog.String("key_id", paymentCfg.KeyID))

		return NewRazorpayGateway(paymentCfg.KeyID, paymentCfg.KeySecret, logger), nil

	default:
		return nil, errors.Errorf("unknown payment provider: %s", paymentCfg.Provider)
	}
}

// Sign computes the hex HMAC-SHA256 of "reference|paymentID" used by both gateways.
func Sign(secret, reference, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(reference + "|" + paymentID))

	return hex.EncodeToString(mac.Sum(nil))
}

func verify(secret string, confirmation service.PaymentConfirmation) bool {
	if confirmation.Reference == "" || confirmation.PaymentID == "" || confirmation.Signature == "" {
		return false
	}
	expected := Sign(secret, confirmation.Reference, confirmation.PaymentID)

	return hmac.Equal([]byte(expected), []byte(confirmation.Signature))
}
