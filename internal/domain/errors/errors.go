package errors

import (
	"net/http"

	"advisor/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying detailed error information.
// The copy still matches the original under errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches two BaseErrors by business error code so that copies made by WithDetails
// are recognised as the predefined sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Questionnaire errors
	ErrUserUnknown = NewBaseError(
		http.StatusNotFound,
		"USER_UNKNOWN",
		"User could not be resolved",
		"",
	)

	ErrNoQuestionToAnswer = NewBaseError(
		http.StatusNotFound,
		"NO_QUESTION_TO_ANSWER",
		"No question is waiting for an answer",
		"",
	)

	ErrInvalidOption = NewBaseError(
		http.StatusNotFound,
		"INVALID_OPTION",
		"Option does not belong to the current question",
		"",
	)

	ErrStorageUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"STORAGE_UNAVAILABLE",
		"Storage is temporarily unavailable, please retry",
		"",
	)

	// Account errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"Email is already registered",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Email or password is incorrect",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	// Fund catalog errors
	ErrFundCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"FUND_CATEGORY_NOT_FOUND",
		"Fund category not found",
		"",
	)

	// General errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_ERROR",
		"Input validation failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error, please try again later",
		"",
	)
)
