package postgres

import (
	"strings"

	domainerrors "advisor/internal/domain/errors"
	"advisor/internal/errors"

	"gorm.io/gorm"
)

// isUniqueConstraintViolation recognises duplicate keys from both PostgreSQL (SQLSTATE 23505)
// and SQLite, whether or not GORM translated the driver error.
func isUniqueConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "23505")
}

func isForeignKeyConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "foreign key") || strings.Contains(errMsg, "23503")
}

// storageError marks a backend failure as ErrStorageUnavailable while keeping the driver error in the chain.
func storageError(err error, message string) error {
	return errors.MarkWrap(err, domainerrors.ErrStorageUnavailable, message)
}
