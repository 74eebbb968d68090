package payment

import (
	"context"
	"net/url"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"
)

// manualGateway settles payments outside any provider, for development and
// cash-on-delivery style stores. Confirmations are signed with the store secret.
type manualGateway struct {
	secret      string
	redirectURL string
}

// NewManualGateway creates the manual gateway.
func NewManualGateway(secret, redirectURL string) service.PaymentGateway {
	return &manualGateway{secret: secret, redirectURL: redirectURL}
}

func (g *manualGateway) Provider() string {
	return constants.PaymentProviderManual
}

func (g *manualGateway) CreatePayment(_ context.Context, req service.PaymentRequest) (*service.PaymentSession, error) {
	session := &service.PaymentSession{
		Provider:  constants.PaymentProviderManual,
		Reference: "manual_" + req.Receipt,
	}
	if g.redirectURL != "" {
		query := url.Values{}
		query.Set("order", req.OrderID)
		query.Set("reference", session.Reference)
		session.RedirectURL = g.redirectURL + "?" + query.Encode()
	}

	return session, nil
}

func (g *manualGateway) VerifySignature(confirmation service.PaymentConfirmation) bool {
	return verify(g.secret, confirmation)
}
