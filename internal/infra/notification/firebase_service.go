package notification

import (
	"context"
	"fmt"
	"log/slog"

	"storefront/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, projectID, credentialsPath string) (service.NotificationService, error) {
	var conf *firebase.Config
	if projectID != "" {
		conf = &firebase.Config{ProjectID: projectID}
	}

	opts := []option.ClientOption{}
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseService{
		client: client,
	}, nil
}

// SendTopicNotification sends a push notification to every device subscribed to topic
func (s *firebaseService) SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		if IsRetryable(err) {
			return fmt.Errorf("failed to send topic notification: %w: %w", service.ErrNotificationUnavailable, err)
		}

		return fmt.Errorf("failed to send topic notification: %w", err)
	}

	return nil
}

// IsRetryable reports whether a send failure is transient.
func IsRetryable(err error) bool {
	return messaging.IsInternal(err) ||
		messaging.IsUnavailable(err) ||
		messaging.IsQuotaExceeded(err)
}

// logNotifier stands in for Firebase when push is not configured.
type logNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier returns a NotificationService that only logs.
func NewLogNotifier(logger *slog.Logger) service.NotificationService {
	return &logNotifier{logger: logger}
}

func (n *logNotifier) SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) error {
	n.logger.InfoContext(ctx, "Push notifications disabled, logging instead",
		slog.String("topic", topic),
		slog.String("title", title),
		slog.String("body", body),
		slog.Any("data", data),
	)

	return nil
}
