package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes inspected when the dialector does not translate errors.
const (
	pgUniqueViolation      = "23505"
	pgForeignKeyViolation  = "23503"
	pgNotNullViolation     = "23502"
	pgCheckViolation       = "23514"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgLockNotAvailable     = "55P03"
)

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	// Check for GORM's duplicate key error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, pgUniqueViolation)
}

func isForeignKeyConstraintViolation(err error) bool {
	// Check for GORM's foreign key violation error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "violates foreign key") ||
		strings.Contains(errMsg, pgForeignKeyViolation)
}

func isNotNullConstraintViolation(err error) bool {
	// Check error message for PostgreSQL-specific not null constraint violation patterns
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, pgNotNullViolation)
}

func isCheckConstraintViolation(err error) bool {
	// Check for GORM's check constraint violation error
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "violates check constraint") ||
		strings.Contains(errMsg, pgCheckViolation)
}

// isRetryableTxError reports errors after which the whole transaction may be retried.
func isRetryableTxError(err error) bool {
	if err == nil {
		return false
	}

	errMsg := strings.ToUpper(err.Error())
	return strings.Contains(errMsg, pgSerializationFailure) ||
		strings.Contains(errMsg, pgDeadlockDetected) ||
		strings.Contains(errMsg, pgLockNotAvailable)
}
