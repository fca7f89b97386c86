package errors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetails(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("Email must be a valid email")

	assert.Equal(t, "Email must be a valid email", detailed.Details())
	assert.Empty(t, ErrValidationFailed.Details(), "sentinel is not mutated")
	assert.Equal(t, http.StatusBadRequest, detailed.HTTPCode())
	assert.True(t, errors.Is(errors.Wrap(detailed, "register"), ErrValidationFailed))
	assert.False(t, errors.Is(detailed, ErrInternalError))
}
