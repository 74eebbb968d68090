package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
		wantDetails any
	}{
		{
			name:        "domain error keeps details",
			err:         errors.Wrap(domainerrors.ErrOutOfStock.WithDetails("Linen Shirt: 2 left"), "add to cart"),
			wantStatus:  http.StatusConflict,
			wantCode:    "OUT_OF_STOCK",
			wantMessage: "Not enough stock for the requested quantity",
			wantDetails: "Linen Shirt: 2 left",
		},
		{
			name:        "unauthorized hides details",
			err:         domainerrors.ErrUnauthorized.WithDetails("token is expired"),
			wantStatus:  http.StatusUnauthorized,
			wantCode:    "UNAUTHORIZED",
			wantMessage: "Authentication required",
		},
		{
			name:        "database error hides details",
			err:         domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "failed to list products"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "DATABASE_EXECUTE_FAILED",
			wantMessage: "Database operation failed",
		},
		{
			name:        "echo route miss",
			err:         echo.ErrNotFound,
			wantStatus:  http.StatusNotFound,
			wantCode:    "NOT_FOUND",
			wantMessage: "Not Found",
		},
		{
			name:        "body limit",
			err:         echo.ErrStatusRequestEntityTooLarge,
			wantStatus:  http.StatusRequestEntityTooLarge,
			wantCode:    "PAYLOAD_TOO_LARGE",
			wantMessage: "Request Entity Too Large",
		},
		{
			name:        "unknown error",
			err:         errors.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_ERROR",
			wantMessage: "Internal server error, please try again later",
		},
	}

	mw := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/products", nil), rec)
			deliverycontext.SetRequestID(c, "req-7")

			mw.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantMessage, body.Error.Message)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
			assert.Equal(t, "req-7", body.Meta.RequestID)
		})
	}
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.String(http.StatusAccepted, "done"))

	NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError(errors.New("late"), c)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}
