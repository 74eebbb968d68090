package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

// localHTTPPublisher implements EventPublisher by sending HTTP POST requests
// to a local endpoint, simulating Pub/Sub push behavior for development
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PubSubPushMessage represents the structure of a Pub/Sub push message
// This mimics the format Google Pub/Sub uses when pushing to HTTP endpoints
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// Publish sends the event as a Pub/Sub push request to the local endpoint
func (p *localHTTPPublisher) Publish(ctx context.Context, event *service.DomainEvent) error {
	// Serialize the event to JSON
	eventData, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	// Create a Pub/Sub push message structure
	pushMsg := PubSubPushMessage{
		Subscription: "projects/local/subscriptions/order-events-sub",
	}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(eventData)
	pushMsg.Message.MessageID = event.ID
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	pushMsg.Message.Attributes = eventAttributes(event)

	// Serialize the push message
	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	p.logger.Info("[LocalPubSub] Publishing event",
		slog.String("endpoint", p.endpoint),
		slog.String("event_id", event.ID),
		slog.String("event_type", event.Type),
	)

	// Send HTTP POST request
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Add X-Request-Id header for tracing
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("worker returned non-success status: %d", resp.StatusCode)
	}

	p.logger.Info("[LocalPubSub] Event published successfully",
		slog.String("event_id", event.ID),
	)

	return nil
}

// Close releases resources (no-op for HTTP client)
func (p *localHTTPPublisher) Close() error {
	return nil
}
