package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}

// isSchemaDrift reports whether the error looks like a missing column or
// table. PostgreSQL surfaces these as undefined_column (42703) and
// undefined_table (42P01); the driver does not expose the SQLSTATE through
// GORM, so the message text is matched as well.
func isSchemaDrift(err error) bool {
	if err == nil {
		return false
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "42703") || strings.Contains(errMsg, "42p01") {
		return true
	}
	if strings.Contains(errMsg, "does not exist") &&
		(strings.Contains(errMsg, "column") || strings.Contains(errMsg, "relation")) {
		return true
	}

	return false
}
