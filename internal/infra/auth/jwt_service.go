// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  string        // Secret key for signing access tokens.
	refreshSecret string        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	return &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		accessTTL:     time.Minute * 15,
		refreshTTL:    time.Hour * 24 * 7,
	}, nil
}

// GenerateTokens creates a new access token and refresh token for a given user and roles.
func (s *jwtService) GenerateTokens(userID uuid.UUID, roles []string) (accessToken string, refreshToken string, err error) {
	accessToken, err = s.generateToken(userID, roles, s.accessTTL, s.accessSecret, service.TokenTypeAccess)
	if err != nil {
		return "", "", err
	}

	refreshToken, err = s.generateToken(userID, nil, s.refreshTTL, s.refreshSecret, service.TokenTypeRefresh)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// ValidateToken verifies the signature with the secret matching the token's type claim
// and returns the decoded claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	unverified, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token structure")
	}

	tokenType, _ := unverified.Claims.(jwt.MapClaims)["type"].(string)
	secret := s.accessSecret
	switch tokenType {
	case service.TokenTypeAccess:
	case service.TokenTypeRefresh:
		secret = s.refreshSecret
	default:
		return nil, errors.Errorf("unknown token type %q", tokenType)
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, errors.Wrap(err, "invalid token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	return toClaims(mapClaims, tokenType)
}

// HashToken returns the hex SHA-256 digest stored in place of a raw refresh token.
func (s *jwtService) HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

// GetRefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) GetRefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(userID uuid.UUID, roles []string, ttl time.Duration, secret, tokenType string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  userID.String(),     // Subject (who the token is for)
		"iat":  now.Unix(),          // Issued At
		"exp":  now.Add(ttl).Unix(), // Expiration Time
		"jti":  uuid.NewString(),    // Keeps tokens issued in the same second distinct
		"type": tokenType,           // Type of token (access or refresh)
	}
	// Only add roles to the access token for stateless authorization.
	if roles != nil {
		claims["roles"] = roles
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

func toClaims(mapClaims jwt.MapClaims, tokenType string) (*service.Claims, error) {
	sub, err := mapClaims.GetSubject()
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject claim")
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.Wrap(err, "subject is not a user id")
	}

	claims := &service.Claims{UserID: userID, Type: tokenType}
	claims.Subject = sub
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp
	}
	if iat, err := mapClaims.GetIssuedAt(); err == nil && iat != nil {
		claims.IssuedAt = iat
	}

	if rawRoles, ok := mapClaims["roles"].([]any); ok {
		claims.Roles = make([]string, 0, len(rawRoles))
		for _, r := range rawRoles {
			if role, ok := r.(string); ok {
				claims.Roles = append(claims.Roles, role)
			}
		}
	}

	return claims, nil
}
