package middleware

import (
	"log/slog"

	deliverycontext "advisor/internal/delivery/context"
	"advisor/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// SessionMiddleware reads or mints the session tag for each request and creates a request-scoped logger
type SessionMiddleware struct {
	logger *slog.Logger
}

// NewSessionMiddleware creates a new session tag middleware
func NewSessionMiddleware(logger *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		logger: logger,
	}
}

// Process attaches the session tag to the echo context and the response headers, and carries a logger
// tagged with it on the request context
func (m *SessionMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionID := entity.EnsureSessionTag(c.Request().Header.Get(deliverycontext.HeaderSessionID))

		deliverycontext.SetSessionID(c, sessionID)
		c.Response().Header().Set(deliverycontext.HeaderSessionID, sessionID)

		reqLogger := m.logger.With(slog.String("session_id", sessionID))

		ctx := deliverycontext.WithLogger(c.Request().Context(), reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
