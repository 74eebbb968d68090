package service

import "context"

// OAuthUser represents user information from OAuth providers
type OAuthUser struct {
	ID            string // Provider-specific user ID (e.g., Google's 'sub' claim)
	Email         string // User's email address
	Name          string // User's display name
	Provider      string // The OAuth provider, entity.ProviderTypeGoogle
	AvatarURL     string // URL to user's profile picture
	EmailVerified bool   // Whether the email is verified by the provider
}

// OAuthAuthService verifies ID tokens that the browser obtained from an identity provider.
type OAuthAuthService interface {
	// VerifyIDToken verifies an OAuth ID token and returns user information
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthUser, error)

	// GetProvider returns the OAuth provider type
	GetProvider() string
}
