package response

import (
	"net/http"

	deliverycontext "advisor/internal/delivery/context"
	domainerrors "advisor/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Body is the envelope of every JSON response. SessionID is always present so clients can
// correlate logs; the remaining fields depend on the endpoint.
type Body struct {
	SessionID    string     `json:"session_id"`
	Message      string     `json:"message,omitempty"`
	Data         any        `json:"data,omitempty"`
	NextQuestion any        `json:"next_question,omitempty"`
	Error        *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "INVALID_OPTION"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Additional error context (only for 4xx errors)
}

// Success returns a successful response carrying data
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, Body{
		SessionID: deliverycontext.GetSessionID(c),
		Data:      data,
	})
}

// Message returns a successful response carrying only a message
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, Body{
		SessionID: deliverycontext.GetSessionID(c),
		Message:   message,
	})
}

// MessageWithNext returns a successful response carrying a message and the follow-up question
func MessageWithNext(c echo.Context, statusCode int, message string, next any) error {
	return c.JSON(statusCode, Body{
		SessionID:    deliverycontext.GetSessionID(c),
		Message:      message,
		NextQuestion: next,
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= 500 || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, Body{
		SessionID: deliverycontext.GetSessionID(c),
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BindingError returns a binding error response
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// HandleAppError converts domain errors to HTTP responses and hands anything else to the error middleware
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return AppError(c, appErr)
	}

	return errors.WithStack(err)
}

// AppError renders appErr with its own status, code and message. Details are sent only when set.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	var details any
	if d := appErr.Details(); d != "" {
		details = d
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}
