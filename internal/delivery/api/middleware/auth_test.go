package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"advisor/config"
	deliverycontext "advisor/internal/delivery/context"
	"advisor/internal/domain/entity"
	domainerrors "advisor/internal/domain/errors"
	"advisor/internal/domain/repository"
	"advisor/internal/domain/service"
	mockrepository "advisor/internal/mocks/repository"
	mockservice "advisor/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type authFixture struct {
	middleware *AuthMiddleware
	tokens     *mockservice.MockTokenService
	users      *mockrepository.MockUserRepository
}

func newAuthFixture(t *testing.T, defaultUserID string) authFixture {
	tokens := mockservice.NewMockTokenService(t)
	users := mockrepository.NewMockUserRepository(t)

	return authFixture{
		middleware: NewAuthMiddleware(AuthMiddlewareParams{
			TokenService: tokens,
			UserRepo:     users,
			Config:       &config.Config{Auth: &config.AuthConfig{DefaultUserID: defaultUserID}},
			Logger:       newDiscardLogger(),
		}),
		tokens: tokens,
		users:  users,
	}
}

// runResolve runs ResolveUser in front of a handler that records the resolved user.
func runResolve(m *AuthMiddleware, headers map[string]string) (uuid.UUID, bool, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/questions/next", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	var resolved uuid.UUID
	var called bool
	err := m.ResolveUser(func(c echo.Context) error {
		called = true
		resolved, _ = deliverycontext.GetUserID(c)

		return nil
	})(c)

	return resolved, called, err
}

func TestAuthMiddleware_ResolveUser(t *testing.T) {
	userID := uuid.New()

	t.Run("user_id header of an existing user", func(t *testing.T) {
		f := newAuthFixture(t, "")
		f.users.EXPECT().FindByID(mock.Anything, userID).Return(&entity.User{ID: userID}, nil)

		resolved, called, err := runResolve(f.middleware, map[string]string{deliverycontext.HeaderUserID: userID.String()})

		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, userID, resolved)
	})

	t.Run("bearer token wins over the header", func(t *testing.T) {
		f := newAuthFixture(t, "")
		other := uuid.New()
		f.tokens.EXPECT().ValidateToken("good-token").Return(&service.Claims{UserID: userID}, nil)
		f.users.EXPECT().FindByID(mock.Anything, userID).Return(&entity.User{ID: userID}, nil)

		resolved, _, err := runResolve(f.middleware, map[string]string{
			echo.HeaderAuthorization:     "Bearer good-token",
			deliverycontext.HeaderUserID: other.String(),
		})

		require.NoError(t, err)
		assert.Equal(t, userID, resolved)
	})

	t.Run("invalid token", func(t *testing.T) {
		f := newAuthFixture(t, "")
		f.tokens.EXPECT().ValidateToken("bad").Return(nil, errors.New("token is expired"))

		_, called, err := runResolve(f.middleware, map[string]string{echo.HeaderAuthorization: "Bearer bad"})

		assert.False(t, called)
		assert.ErrorIs(t, err, domainerrors.ErrUserUnknown)
	})

	t.Run("non-bearer authorization", func(t *testing.T) {
		f := newAuthFixture(t, "")

		_, _, err := runResolve(f.middleware, map[string]string{echo.HeaderAuthorization: "Basic Zm9vOmJhcg=="})

		assert.ErrorIs(t, err, domainerrors.ErrUserUnknown)
	})

	t.Run("no credentials and no default", func(t *testing.T) {
		f := newAuthFixture(t, "")

		_, called, err := runResolve(f.middleware, nil)

		assert.False(t, called)
		assert.ErrorIs(t, err, domainerrors.ErrUserUnknown)
	})

	t.Run("no credentials falls back to the configured default", func(t *testing.T) {
		f := newAuthFixture(t, userID.String())
		f.users.EXPECT().FindByID(mock.Anything, userID).Return(&entity.User{ID: userID}, nil)

		resolved, called, err := runResolve(f.middleware, nil)

		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, userID, resolved)
	})

	t.Run("malformed user id", func(t *testing.T) {
		f := newAuthFixture(t, "")

		_, _, err := runResolve(f.middleware, map[string]string{deliverycontext.HeaderUserID: "42"})

		assert.ErrorIs(t, err, domainerrors.ErrUserUnknown)
	})

	t.Run("well-formed but unknown user", func(t *testing.T) {
		f := newAuthFixture(t, "")
		f.users.EXPECT().FindByID(mock.Anything, userID).Return(nil, repository.ErrUserNotFound)

		_, _, err := runResolve(f.middleware, map[string]string{deliverycontext.HeaderUserID: userID.String()})

		assert.ErrorIs(t, err, domainerrors.ErrUserUnknown)
	})

	t.Run("storage failure while checking the user", func(t *testing.T) {
		f := newAuthFixture(t, "")
		f.users.EXPECT().FindByID(mock.Anything, userID).Return(nil, errors.New("connection reset"))

		_, _, err := runResolve(f.middleware, map[string]string{deliverycontext.HeaderUserID: userID.String()})

		assert.ErrorIs(t, err, domainerrors.ErrStorageUnavailable)
	})
}
