package middleware

import (
	"log/slog"
	"strings"

	"advisor/config"
	deliverycontext "advisor/internal/delivery/context"
	domainerrors "advisor/internal/domain/errors"
	"advisor/internal/domain/repository"
	"advisor/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	UserRepo     repository.UserRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// AuthMiddleware turns request credentials into a known user ID.
type AuthMiddleware struct {
	tokenSvc      service.TokenService
	userRepo      repository.UserRepository
	defaultUserID string
	logger        *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	m := &AuthMiddleware{
		tokenSvc: params.TokenService,
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
	if params.Config != nil && params.Config.Auth != nil {
		m.defaultUserID = strings.TrimSpace(params.Config.Auth.DefaultUserID)
	}

	return m
}

// ResolveUser authenticates the caller and stores the user ID on the context.
// A bearer token wins over the user_id header; the configured default user is a development fallback.
// Anything that does not resolve to an existing user is rejected with ErrUserUnknown.
func (m *AuthMiddleware) ResolveUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := m.resolve(c)
		if err != nil {
			return err
		}

		deliverycontext.SetUserID(c, userID)

		ctx := c.Request().Context()
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("user_id", userID.String())))
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}

func (m *AuthMiddleware) resolve(c echo.Context) (uuid.UUID, error) {
	ctx := c.Request().Context()

	if authHeader := c.Request().Header.Get(echo.HeaderAuthorization); authHeader != "" {
		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok {
			return uuid.Nil, domainerrors.ErrUserUnknown.WrapMessage("authorization header is not a bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return uuid.Nil, errors.Wrap(domainerrors.ErrUserUnknown, err.Error())
		}

		return m.ensureExists(c, claims.UserID)
	}

	raw := strings.TrimSpace(c.Request().Header.Get(deliverycontext.HeaderUserID))
	if raw == "" {
		raw = m.defaultUserID
	}
	if raw == "" {
		return uuid.Nil, domainerrors.ErrUserUnknown.WrapMessage("no credentials on request")
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Malformed user_id header", slog.String("user_id", raw))

		return uuid.Nil, domainerrors.ErrUserUnknown.WrapMessage("malformed user id")
	}

	return m.ensureExists(c, userID)
}

func (m *AuthMiddleware) ensureExists(c echo.Context, userID uuid.UUID) (uuid.UUID, error) {
	if _, err := m.userRepo.FindByID(c.Request().Context(), userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return uuid.Nil, domainerrors.ErrUserUnknown.WrapMessage("user does not exist")
		}

		return uuid.Nil, errors.Wrap(domainerrors.ErrStorageUnavailable, err.Error())
	}

	return userID, nil
}
