package service

import (
	"context"

	"github.com/shopspring/decimal"
)

// PaymentRequest asks a gateway to open a payment session for an order.
type PaymentRequest struct {
	OrderID  string
	Receipt  string
	Amount   decimal.Decimal
	Currency string
	Email    string
}

// PaymentSession is what the client needs to complete the payment.
type PaymentSession struct {
	Provider    string `json:"provider"`
	Reference   string `json:"reference"`
	RedirectURL string `json:"redirectUrl,omitempty"`
	PublicKey   string `json:"publicKey,omitempty"`
}

// PaymentConfirmation is posted back by the client after paying.
type PaymentConfirmation struct {
	Reference string
	PaymentID string
	Signature string
}

// PaymentGateway opens payment sessions and checks payment callbacks.
type PaymentGateway interface {
	CreatePayment(ctx context.Context, req PaymentRequest) (*PaymentSession, error)

	// VerifySignature reports whether the confirmation was signed by the gateway.
	VerifySignature(confirmation PaymentConfirmation) bool

	Provider() string
}
