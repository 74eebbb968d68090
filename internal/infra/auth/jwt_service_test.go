package auth

import (
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJWTTestConfig() *config.Config {
	return &config.Config{
		SecretKey: struct {
			Access  string `json:"access" yaml:"access"`
			Refresh string `json:"refresh" yaml:"refresh"`
		}{
			Access:  "test_access_secret_key_very_long_for_testing",
			Refresh: "test_refresh_secret_key_very_long_for_testing",
		},
	}
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(newJWTTestConfig())
	require.NoError(t, err)

	userID := uuid.New()
	roles := []string{"customer", "admin"}

	accessToken, refreshToken, err := jwtService.GenerateTokens(userID, roles)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	accessClaims, err := jwtService.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, roles, accessClaims.Roles)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)

	refreshClaims, err := jwtService.ValidateToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Nil(t, refreshClaims.Roles)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)
}

func TestJWTService_MissingSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.EqualError(t, err, "jwt secrets must be provided")
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newJWTTestConfig())
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_RejectsTokenSignedWithOtherSecret(t *testing.T) {
	jwtService, err := NewJWTService(newJWTTestConfig())
	require.NoError(t, err)

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  uuid.NewString(),
		"exp":  time.Now().Add(time.Minute).Unix(),
		"type": service.TokenTypeAccess,
	})
	signed, err := forged.SignedString([]byte("attacker-secret"))
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(signed)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	cfg := newJWTTestConfig()
	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  uuid.NewString(),
		"exp":  time.Now().Add(-time.Minute).Unix(),
		"type": service.TokenTypeRefresh,
	})
	signed, err := expired.SignedString([]byte(cfg.SecretKey.Refresh))
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(signed)
	assert.Error(t, err)
}

func TestJWTService_HashTokenIsStable(t *testing.T) {
	jwtService, err := NewJWTService(newJWTTestConfig())
	require.NoError(t, err)

	first := jwtService.HashToken("refresh-token")
	assert.Equal(t, first, jwtService.HashToken("refresh-token"))
	assert.NotEqual(t, first, jwtService.HashToken("other-token"))
	assert.Len(t, first, 64)
}
