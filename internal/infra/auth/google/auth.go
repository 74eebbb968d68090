// Package google verifies Google Sign-In ID tokens.
package google

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"google.golang.org/api/idtoken"
)

var validIssuers = map[string]bool{
	"accounts.google.com":         true,
	"https://accounts.google.com": true,
}

// tokenValidator matches idtoken.Validate.
type tokenValidator func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// AuthServiceImpl implements service.OAuthAuthService for Google.
type AuthServiceImpl struct {
	clientID string
	validate tokenValidator
	logger   *slog.Logger
}

// NewAuthService creates a new Google AuthService
func NewAuthService(cfg *config.Config, logger *slog.Logger) service.OAuthAuthService {
	clientID := ""
	if cfg.GoogleOAuth != nil {
		clientID = cfg.GoogleOAuth.ClientID
	}

	return &AuthServiceImpl{
		clientID: clientID,
		validate: idtoken.Validate,
		logger:   logger,
	}
}

// VerifyIDToken checks the token signature against Google's published keys, its
// audience against the configured client ID and its issuer, then returns the user.
func (s *AuthServiceImpl) VerifyIDToken(ctx context.Context, idToken string) (*service.OAuthUser, error) {
	if s.clientID == "" {
		return nil, domainerrors.ErrOAuthFailed.WithDetails("google sign-in is not configured")
	}

	payload, err := s.validate(ctx, idToken, s.clientID)
	if err != nil {
		s.logger.Warn("Google ID token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthTokenInvalid.WrapMessage(err.Error())
	}

	if !validIssuers[payload.Issuer] {
		return nil, domainerrors.ErrOAuthTokenInvalid.WithDetails("invalid issuer " + payload.Issuer)
	}

	user := &service.OAuthUser{
		ID:       payload.Subject,
		Provider: entity.ProviderTypeGoogle,
	}
	user.Email, _ = payload.Claims["email"].(string)
	user.Name, _ = payload.Claims["name"].(string)
	user.AvatarURL, _ = payload.Claims["picture"].(string)
	user.EmailVerified, _ = payload.Claims["email_verified"].(bool)

	if user.Email == "" || !user.EmailVerified {
		return nil, domainerrors.ErrOAuthTokenInvalid.WithDetails("email not verified")
	}

	return user, nil
}

// GetProvider returns the OAuth provider type
func (s *AuthServiceImpl) GetProvider() string {
	return entity.ProviderTypeGoogle
}
