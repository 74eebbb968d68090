package middleware

import (
	"log/slog"
	"slices"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	contextKeyUserID = "userID"
	contextKeyRoles  = "roles"
	bearerPrefix     = "Bearer "
)

// AuthMiddleware authenticates requests carrying an access token and checks roles.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate rejects requests without a valid access token. It stores the caller's id and
// roles on the echo context, and the id on the request context and its scoped logger.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return errors.WithStack(domainerrors.ErrUnauthorized.WithDetails("authorization header is missing"))
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || tokenString == "" {
			return errors.WithStack(domainerrors.ErrUnauthorized.WithDetails("authorization header must be a Bearer token"))
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return errors.Wrap(domainerrors.ErrUnauthorized, err.Error())
		}
		// Refresh tokens only buy new access tokens.
		if claims.Type != service.TokenTypeAccess {
			return errors.WithStack(domainerrors.ErrUnauthorized.WithDetails("access token required"))
		}

		c.Set(contextKeyUserID, claims.UserID)
		c.Set(contextKeyRoles, entity.RolesFromStrings(claims.Roles))

		ctx := deliverycontext.WithUserID(c.Request().Context(), claims.UserID)
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("userID", claims.UserID.String())))
		}
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireRole only lets through callers holding role. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := GetRoles(c)
			if !ok || !slices.Contains(roles, role) {
				return errors.WithStack(domainerrors.ErrForbidden.WithDetails("requires role " + role.String()))
			}

			return next(c)
		}
	}
}

// GetUserID returns the authenticated caller's id.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}

// GetRoles returns the authenticated caller's roles.
func GetRoles(c echo.Context) (entity.Roles, bool) {
	roles, ok := c.Get(contextKeyRoles).(entity.Roles)

	return roles, ok
}
