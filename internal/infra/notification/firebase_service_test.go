package notification

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogNotifier_SendTopicNotification(t *testing.T) {
	var buf bytes.Buffer
	notifier := NewLogNotifier(slog.New(slog.NewTextHandler(&buf, nil)))

	err := notifier.SendTopicNotification(context.Background(), "admin-orders", "New order", "SF-1001", map[string]string{"order_id": "1"})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "topic=admin-orders")
	assert.Contains(t, out, "SF-1001")
}

func TestIsRetryable_PlainError(t *testing.T) {
	assert.False(t, IsRetryable(assert.AnError))
}
