// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultMinPasswordLength = 8
	// bcrypt ignores everything past 72 bytes.
	maxBcryptPasswordBytes = 72
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost  int
	rules config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	rules := config.PasswordStrengthConfig{MinLength: defaultMinPasswordLength}
	if cfg.PasswordStrength != nil {
		rules = *cfg.PasswordStrength
		if rules.MinLength <= 0 {
			rules.MinLength = defaultMinPasswordLength
		}
	}

	return &bcryptHasher{cost: cost, rules: rules}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	return err == nil
}

// ValidatePasswordStrength applies the configured length and character class rules.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	length := utf8.RuneCountInString(password)
	switch {
	case length < h.rules.MinLength:
		return h.weak("password must be at least %d characters long", h.rules.MinLength)
	case h.rules.MaxLength > 0 && length > h.rules.MaxLength:
		return h.weak("password must be at most %d characters long", h.rules.MaxLength)
	case len(password) > maxBcryptPasswordBytes:
		return h.weak("password must be at most %d bytes long", maxBcryptPasswordBytes)
	case h.rules.RequireUppercase && !strings.ContainsFunc(password, unicode.IsUpper):
		return h.weak("password must contain at least one uppercase letter")
	case h.rules.RequireLowercase && !strings.ContainsFunc(password, unicode.IsLower):
		return h.weak("password must contain at least one lowercase letter")
	case h.rules.RequireNumbers && !strings.ContainsFunc(password, unicode.IsDigit):
		return h.weak("password must contain at least one number")
	case h.rules.RequireSpecial && !strings.ContainsFunc(password, isSpecial):
		return h.weak("password must contain at least one special character")
	}

	return nil
}

func (h *bcryptHasher) weak(format string, args ...any) error {
	return domainerrors.ErrPasswordStrength.WithDetails(fmt.Sprintf(format, args...))
}

func isSpecial(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}
