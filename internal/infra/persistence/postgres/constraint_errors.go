package postgres

import (
	"strings"

	"casefile/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// The translated error is preferred, but raw PostgreSQL messages still
	// surface through some query paths.
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "23505") // PostgreSQL unique_violation error code
}

// mapUserUniqueViolation resolves which unique index a user write tripped.
// The constraint name appears in the database error text.
func mapUserUniqueViolation(err error) error {
	if !isUniqueConstraintViolation(err) {
		return nil
	}

	errMsg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errMsg, "badge"):
		return repository.ErrDuplicateBadgeNumber
	default:
		return repository.ErrDuplicateEmail
	}
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}
