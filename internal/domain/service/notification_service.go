package service

import (
	"context"

	"storefront/internal/errors"
)

// ErrNotificationUnavailable marks a send failure that may succeed when retried.
var ErrNotificationUnavailable = errors.New("notification service temporarily unavailable")

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendTopicNotification pushes a message to every device subscribed to topic.
	SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) error
}
