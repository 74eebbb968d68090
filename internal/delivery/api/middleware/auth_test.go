package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockSvc "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthContext(authorization string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()
	tokens := mockSvc.NewMockTokenService(t)
	mw := NewAuthMiddleware(tokens)

	tokens.EXPECT().ValidateToken("good").
		Return(&service.Claims{UserID: userID, Roles: []string{"customer", "admin", "bogus"}, Type: service.TokenTypeAccess}, nil).
		Once()

	c, rec := newAuthContext("Bearer good")
	require.NoError(t, mw.Authenticate(okHandler)(c))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	gotID, ok := GetUserID(c)
	assert.True(t, ok)
	assert.Equal(t, userID, gotID)
	roles, ok := GetRoles(c)
	assert.True(t, ok)
	assert.Equal(t, entity.Roles{entity.RoleCustomer, entity.RoleAdmin}, roles)
}

func TestAuthMiddleware_Authenticate_ScopesRequestContext(t *testing.T) {
	userID := uuid.New()
	tokens := mockSvc.NewMockTokenService(t)
	mw := NewAuthMiddleware(tokens)

	tokens.EXPECT().ValidateToken("good").
		Return(&service.Claims{UserID: userID, Roles: []string{"customer"}, Type: service.TokenTypeAccess}, nil).
		Once()

	var buf bytes.Buffer
	c, _ := newAuthContext("Bearer good")
	ctx := deliverycontext.WithLogger(c.Request().Context(), slog.New(slog.NewJSONHandler(&buf, nil)))
	c.SetRequest(c.Request().WithContext(ctx))

	require.NoError(t, mw.Authenticate(func(c echo.Context) error {
		gotID, ok := deliverycontext.GetUserIDFromContext(c.Request().Context())
		assert.True(t, ok)
		assert.Equal(t, userID, gotID)
		deliverycontext.GetLogger(c.Request().Context()).Info("cart viewed")

		return nil
	})(c))

	assert.Contains(t, buf.String(), `"userID":"`+userID.String()+`"`)
}

func TestAuthMiddleware_Authenticate_Rejections(t *testing.T) {
	tokens := mockSvc.NewMockTokenService(t)
	mw := NewAuthMiddleware(tokens)

	tokens.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired")).Once()
	tokens.EXPECT().ValidateToken("refresh").
		Return(&service.Claims{UserID: uuid.New(), Type: service.TokenTypeRefresh}, nil).
		Once()

	for _, header := range []string{"", "Basic abc", "Bearer ", "Bearer expired", "Bearer refresh"} {
		c, _ := newAuthContext(header)
		err := mw.Authenticate(okHandler)(c)

		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized), "header %q", header)
		_, ok := GetUserID(c)
		assert.False(t, ok, "header %q", header)
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	mw := NewAuthMiddleware(nil)
	requireAdmin := mw.RequireRole(entity.RoleAdmin)

	c, rec := newAuthContext("")
	c.Set(contextKeyRoles, entity.Roles{entity.RoleCustomer, entity.RoleAdmin})
	require.NoError(t, requireAdmin(okHandler)(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	c, _ = newAuthContext("")
	c.Set(contextKeyRoles, entity.Roles{entity.RoleCustomer})
	assert.True(t, errors.Is(requireAdmin(okHandler)(c), domainerrors.ErrForbidden))

	c, _ = newAuthContext("")
	assert.True(t, errors.Is(requireAdmin(okHandler)(c), domainerrors.ErrForbidden))
}
