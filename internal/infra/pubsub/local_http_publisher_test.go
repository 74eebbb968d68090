package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_Publish(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	event := service.NewDomainEvent(constants.EventOrderPlaced, "req-1")
	event.Order = &service.OrderEventPayload{OrderID: "order-1", Number: "SF-1"}

	require.NoError(t, publisher.Publish(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, event.ID, received.Message.MessageID)
	assert.Equal(t, constants.EventOrderPlaced, received.Message.Attributes["event_type"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.DomainEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, event.Type, decoded.Type)
	require.NotNil(t, decoded.Order)
	assert.Equal(t, "SF-1", decoded.Order.Number)
}

func TestLocalHTTPPublisher_Publish_WorkerFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())

	err := publisher.Publish(context.Background(), service.NewDomainEvent(constants.EventContactSubmitted, ""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestEventAttributes(t *testing.T) {
	event := service.NewDomainEvent(constants.EventOrderPaid, "")
	attrs := eventAttributes(event)

	assert.Equal(t, event.ID, attrs["event_id"])
	assert.Equal(t, constants.EventOrderPaid, attrs["event_type"])
	_, hasRequestID := attrs["request_id"]
	assert.False(t, hasRequestID)
}
