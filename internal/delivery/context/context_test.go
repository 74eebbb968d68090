package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	generated := GetRequestID(c)
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))

	assert.Empty(t, GetRequestIDFromContext(context.Background()))
	assert.Equal(t, "req-2", GetRequestIDFromContext(WithRequestID(context.Background(), "req-2")))
}

func TestUserID(t *testing.T) {
	_, ok := GetUserIDFromContext(context.Background())
	assert.False(t, ok)

	_, ok = GetUserIDFromContext(WithUserID(context.Background(), uuid.Nil))
	assert.False(t, ok)

	userID := uuid.New()
	got, ok := GetUserIDFromContext(WithUserID(context.Background(), userID))
	assert.True(t, ok)
	assert.Equal(t, userID, got)
}

func TestLogger(t *testing.T) {
	fallback := slog.New(slog.DiscardHandler)
	scoped := slog.New(slog.DiscardHandler)

	assert.Nil(t, GetLogger(context.Background()))
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}
