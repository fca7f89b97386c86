package context

import (
	"context"
	"log/slog"

	"advisor/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeySessionID is the key for storing the session tag in context.
	KeySessionID ContextKey = "session_id"

	// KeyUserID is the key for storing the resolved user ID.
	KeyUserID ContextKey = "user_id"

	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// HeaderSessionID is the HTTP header carrying the opaque session tag.
	HeaderSessionID = "session_id"

	// HeaderUserID is the HTTP header carrying the caller's user ID.
	HeaderUserID = "user_id"
)

// GetSessionID extracts the session tag from echo.Context.
// If not found, mints a new one.
func GetSessionID(c echo.Context) string {
	val := c.Get(string(KeySessionID))
	if id, ok := val.(string); ok && id != "" {
		return id
	}

	return entity.EnsureSessionTag("")
}

// SetSessionID sets the session tag in echo.Context.
func SetSessionID(c echo.Context, sessionID string) {
	c.Set(string(KeySessionID), sessionID)
}

// SetUserID stores the resolved user on echo.Context.
func SetUserID(c echo.Context, userID uuid.UUID) {
	c.Set(string(KeyUserID), userID)
}

// GetUserID returns the user resolved by the auth middleware.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(string(KeyUserID)).(uuid.UUID)

	return userID, ok
}

// GetLogger extracts the request-scoped logger from context.Context.
// If not found, returns nil.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault extracts the request-scoped logger from context.Context.
// If not found, returns the provided fallback logger.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}
