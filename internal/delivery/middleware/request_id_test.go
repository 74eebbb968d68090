package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "storefront/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantKeep bool
	}{
		{name: "reuses caller id", header: "req-42", wantKeep: true},
		{name: "generates when missing", header: ""},
		{name: "replaces overlong id", header: strings.Repeat("a", maxRequestIDLength+1)},
		{name: "replaces id with spaces", header: "two words"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var fromCtx string
			var hasLogger bool
			mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
			err := mw.Process(func(c echo.Context) error {
				fromCtx = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				hasLogger = deliverycontext.GetLogger(c.Request().Context()) != nil

				return c.NoContent(http.StatusNoContent)
			})(c)

			require.NoError(t, err)
			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Equal(t, got, fromCtx)
			assert.Equal(t, got, deliverycontext.GetRequestID(c))
			assert.True(t, hasLogger)
			if tt.wantKeep {
				assert.Equal(t, tt.header, got)
			} else {
				_, parseErr := uuid.Parse(got)
				assert.NoError(t, parseErr)
			}
		})
	}
}
