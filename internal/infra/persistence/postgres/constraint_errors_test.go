package postgres

import (
	"testing"

	domainerrors "advisor/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.New(`ERROR: duplicate key value violates unique constraint "users_email_key" (SQLSTATE 23505)`)))
	assert.True(t, isUniqueConstraintViolation(errors.New("constraint failed: UNIQUE constraint failed: users.email (2067)")))
	assert.False(t, isUniqueConstraintViolation(errors.New("connection refused")))
	assert.False(t, isUniqueConstraintViolation(nil))
}

func TestStorageError(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := storageError(cause, "failed to append response")

	assert.ErrorIs(t, err, domainerrors.ErrStorageUnavailable)
	assert.ErrorIs(t, err, cause)

	var appErr domainerrors.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "STORAGE_UNAVAILABLE", appErr.ErrorCode())
}
