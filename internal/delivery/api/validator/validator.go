// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator validates request structs using `validate` tags.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator with the default tag set.
func New() *CustomValidator {
	return &CustomValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate implements echo.Validator and flattens field errors into one readable message.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, fieldMessage(fe))
	}

	return errors.New(strings.Join(messages, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "gt":
		return field + " must be greater than " + fe.Param()
	case "min":
		return field + " must be at least " + fe.Param() + " characters"
	case "max":
		return field + " must be at most " + fe.Param() + " characters"
	default:
		return field + " failed " + fe.Tag() + " validation"
	}
}
