package auth

import (
	"testing"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newHasherConfig(rules *config.PasswordStrengthConfig) *config.Config {
	return &config.Config{
		Auth:             &config.AuthConfig{BcryptCost: bcrypt.MinCost},
		PasswordStrength: rules,
	}
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(newHasherConfig(nil))
	password := "StrongPass123!"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEqual(t, password, hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("WrongPassword123!", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_DefaultCostOutOfRange(t *testing.T) {
	cfg := newHasherConfig(nil)
	cfg.Auth.BcryptCost = 99

	hasher, ok := NewBcryptHasher(cfg).(*bcryptHasher)
	require.True(t, ok)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := NewBcryptHasher(newHasherConfig(&config.PasswordStrengthConfig{
		MinLength:        8,
		MaxLength:        64,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
		RequireSpecial:   true,
	}))

	for _, password := range []string{"StrongPass123!", "Pässphräse123!", "Valid$Phrase2024"} {
		assert.NoError(t, hasher.ValidatePasswordStrength(password), password)
	}

	testCases := []struct {
		password    string
		expectedErr string
	}{
		{"Ab1!", "at least 8 characters"},
		{"PASSWORD123!", "lowercase letter"},
		{"password123!", "uppercase letter"},
		{"PasswordABC!", "number"},
		{"Password123", "special character"},
	}

	for _, tc := range testCases {
		t.Run(tc.password, func(t *testing.T) {
			err := hasher.ValidatePasswordStrength(tc.password)
			require.Error(t, err)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, "PASSWORD_STRENGTH", appErr.ErrorCode())
			assert.Contains(t, appErr.Details(), tc.expectedErr)
		})
	}
}

func TestBcryptHasher_DefaultRulesOnlyCheckLength(t *testing.T) {
	hasher := NewBcryptHasher(newHasherConfig(nil))

	assert.NoError(t, hasher.ValidatePasswordStrength("lowercaseonly"))
	assert.Error(t, hasher.ValidatePasswordStrength("short"))
}
