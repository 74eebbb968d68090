package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"
	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T) (*PushHandler, *mockUsecase.MockOrderEventUsecase) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Env.Env = constants.EnvDevelop
	uc := mockUsecase.NewMockOrderEventUsecase(t)

	return NewPushHandler(PushHandlerParams{
		Config:       cfg,
		Logger:       slog.Default(),
		OrderEventUC: uc,
	}), uc
}

func pushBody(t *testing.T, data string, attributes map[string]string) string {
	t.Helper()

	var msg PubSubMessage
	msg.Message.Data = data
	msg.Message.MessageID = "msg-1"
	msg.Message.Attributes = attributes
	msg.Subscription = "projects/shop/subscriptions/order-worker"

	raw, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(raw)
}

func encodeEvent(t *testing.T, event *service.DomainEvent) string {
	t.Helper()

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(raw)
}

func doPush(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_DispatchesEvent(t *testing.T) {
	h, uc := newTestPushHandler(t)

	event := service.NewDomainEvent(constants.EventOrderPlaced, "")
	event.Order = &service.OrderEventPayload{OrderID: "o-1", Number: "TS-261018-ABCDEF12"}

	uc.EXPECT().HandleEvent(mock.Anything, mock.MatchedBy(func(got *service.DomainEvent) bool {
		return got.ID == event.ID && got.Type == constants.EventOrderPlaced && got.Order.Number == "TS-261018-ABCDEF12"
	})).Run(func(ctx context.Context, _ *service.DomainEvent) {
		assert.Equal(t, "req-from-attrs", deliverycontext.GetRequestIDFromContext(ctx))
	}).Return(nil).Once()

	rec := doPush(h, pushBody(t, encodeEvent(t, event), map[string]string{"request_id": "req-from-attrs"}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_RetryableFailure(t *testing.T) {
	h, uc := newTestPushHandler(t)
	sendErr := errors.Wrap(service.ErrNotificationUnavailable, "fcm")

	uc.EXPECT().HandleEvent(mock.Anything, mock.Anything).Return(sendErr).Once()
	uc.EXPECT().IsRetryable(sendErr).Return(true).Once()

	event := service.NewDomainEvent(constants.EventOrderPaid, "req-1")
	rec := doPush(h, pushBody(t, encodeEvent(t, event), nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_PermanentFailureIsAcked(t *testing.T) {
	h, uc := newTestPushHandler(t)
	badErr := errors.New("unknown event type")

	uc.EXPECT().HandleEvent(mock.Anything, mock.Anything).Return(badErr).Once()
	uc.EXPECT().IsRetryable(badErr).Return(false).Once()

	event := service.NewDomainEvent("catalog.reindexed", "")
	rec := doPush(h, pushBody(t, encodeEvent(t, event), nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_BadPayloads(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "{"},
		{name: "not base64", body: `{"message":{"data":"***"}}`},
		{name: "not an event", body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("[1,2]")) + `"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestPushHandler(t)

			rec := doPush(h, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestNewPushHandler_VerifiesGooglePushOutsideDevelop(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvProduction
	h := NewPushHandler(PushHandlerParams{Config: cfg, Logger: slog.Default()})
	assert.True(t, h.verifyPushAuth)

	rec := doPush(h, `{}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	cfg.Env.Env = constants.EnvDevelop
	assert.False(t, NewPushHandler(PushHandlerParams{Config: cfg, Logger: slog.Default()}).verifyPushAuth)
}
