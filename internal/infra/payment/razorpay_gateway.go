package payment

import (
	"context"
	"log/slog"

	"storefront/internal/domain/constants"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/razorpay/razorpay-go"
)

// razorpayOrders is the part of the Razorpay SDK the gateway calls.
type razorpayOrders interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

type razorpayGateway struct {
	orders    razorpayOrders
	keyID     string
	keySecret string
	logger    *slog.Logger
}

// NewRazorpayGateway creates a gateway backed by Razorpay orders.
func NewRazorpayGateway(keyID, keySecret string, logger *slog.Logger) service.PaymentGateway {
	client := razorpay.NewClient(keyID, keySecret)

	return &razorpayGateway{
		orders:    client.Order,
		keyID:     keyID,
		keySecret: keySecret,
		logger:    logger,
	}
}

func (g *razorpayGateway) Provider() string {
	return constants.PaymentProviderRazorpay
}

// CreatePayment opens a Razorpay order. Amounts are sent in the smallest currency unit.
func (g *razorpayGateway) CreatePayment(ctx context.Context, req service.PaymentRequest) (*service.PaymentSession, error) {
	data := map[string]interface{}{
		"amount":   req.Amount.Shift(2).Round(0).IntPart(),
		"currency": req.Currency,
		"receipt":  req.Receipt,
		"notes": map[string]interface{}{
			"order_id": req.OrderID,
			"email":    req.Email,
		},
	}

	order, err := g.orders.Create(data, nil)
	if err != nil {
		g.logger.ErrorContext(ctx, "Razorpay order creation failed",
			slog.String("receipt", req.Receipt),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrPaymentFailed.WrapMessage(err.Error())
	}

	reference, _ := order["id"].(string)
	if reference == "" {
		return nil, domainerrors.ErrPaymentFailed.WithDetails("razorpay returned no order id")
	}

	return &service.PaymentSession{
		Provider:  constants.PaymentProviderRazorpay,
		Reference: reference,
		PublicKey: g.keyID,
	}, nil
}

// VerifySignature checks razorpay_signature against razorpay_order_id|razorpay_payment_id.
func (g *razorpayGateway) VerifySignature(confirmation service.PaymentConfirmation) bool {
	return verify(g.keySecret, confirmation)
}
