package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRateLimiter_PerClientBurst(t *testing.T) {
	e := echo.New()
	limited := NewRateLimiter(&config.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 2})(okHandler)

	call := func(remoteAddr string) error {
		req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
		req.RemoteAddr = remoteAddr

		return limited(e.NewContext(req, httptest.NewRecorder()))
	}

	require.NoError(t, call("203.0.113.7:5000"))
	require.NoError(t, call("203.0.113.7:5001"))
	assert.True(t, errors.Is(call("203.0.113.7:5002"), domainerrors.ErrRateLimited))

	// Another client has its own bucket.
	require.NoError(t, call("198.51.100.4:6000"))
}
