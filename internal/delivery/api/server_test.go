package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"advisor/config"
	apimiddleware "advisor/internal/delivery/api/middleware"
	"advisor/internal/delivery/api/router"
	"advisor/internal/delivery/api/router/handler"
	deliverycontext "advisor/internal/delivery/context"
	"advisor/internal/domain/service"
	"advisor/internal/infra/auth"
	"advisor/internal/infra/persistence/postgres"
	"advisor/internal/infra/persistence/testdb"
	mockservice "advisor/internal/mocks/service"
	"advisor/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"golang.org/x/crypto/bcrypt"
)

type envelope struct {
	SessionID    string          `json:"session_id"`
	Message      string          `json:"message"`
	Data         json.RawMessage `json:"data"`
	NextQuestion *struct {
		QuestionID int64 `json:"question_id"`
	} `json:"next_question"`
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
}

type testServer struct {
	t         *testing.T
	echo      *echo.Echo
	publisher *mockservice.MockEventPublisher
}

// newTestServer assembles the real stack over an in-memory SQLite catalog.
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db := testdb.New(t)
	testdb.SeedCatalog(t, db)
	testdb.SeedFunds(t, db)

	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost},
	}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.SecretKey.Access = "test-secret"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	userRepo := postgres.NewUserRepository(db)
	catalogRepo := postgres.NewCatalogRepository(db)
	responseRepo := postgres.NewResponseRepository(db)
	txManager := postgres.NewTransactionManager(db)
	publisher := mockservice.NewMockEventPublisher(t)

	routerParams := router.RouterParams{
		QuestionnaireHandler: handler.NewQuestionnaireHandler(handler.QuestionnaireHandlerParams{
			QuestionnaireUC: impl.NewQuestionnaireService(impl.QuestionnaireServiceParams{
				TxManager:    txManager,
				CatalogRepo:  catalogRepo,
				ResponseRepo: responseRepo,
				Publisher:    publisher,
				Logger:       logger,
			}),
			Logger: logger,
		}),
		UserHandler: handler.NewUserHandler(handler.UserHandlerParams{
			UserUC: impl.NewUserService(impl.UserServiceParams{
				TxManager:    txManager,
				UserRepo:     userRepo,
				Hasher:       auth.NewBcryptHasher(cfg),
				TokenService: tokens,
				Logger:       logger,
			}),
			Logger: logger,
		}),
		FundHandler: handler.NewFundHandler(handler.FundHandlerParams{
			FundUC: impl.NewFundService(impl.FundServiceParams{
				FundRepo: postgres.NewFundRepository(db),
				Logger:   logger,
			}),
			Logger: logger,
		}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{
			TokenService: tokens,
			UserRepo:     userRepo,
			Config:       cfg,
			Logger:       logger,
		}),
	}

	srv, err := NewServer(ServerParams{
		Lc:              fxtest.NewLifecycle(t),
		Cfg:             cfg,
		Logger:          logger,
		ErrorMiddleware: apimiddleware.NewErrorMiddleware(logger),
		RouterParams:    routerParams,
	})
	require.NoError(t, err)

	return &testServer{t: t, echo: srv.(*apiServer).server, publisher: publisher}
}

func (s *testServer) do(method, path, body string, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	var env envelope
	require.NoError(s.t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return rec, env
}

func (s *testServer) register(email string) string {
	s.t.Helper()

	rec, env := s.do(http.MethodPost, "/auth/register",
		`{"name":"Ana","email":"`+email+`","password":"correct-horse"}`, nil)
	require.Equal(s.t, http.StatusCreated, rec.Code, rec.Body.String())

	var auth handler.AuthResponse
	require.NoError(s.t, json.Unmarshal(env.Data, &auth))

	return auth.AccessToken
}

func TestServer_QuestionnaireWalkthrough(t *testing.T) {
	s := newTestServer(t)
	token := s.register("ana@example.com")
	bearer := map[string]string{
		echo.HeaderAuthorization:        "Bearer " + token,
		deliverycontext.HeaderSessionID: "walkthrough",
	}

	rec, env := s.do(http.MethodGet, "/questions/next", "", bearer)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "walkthrough", rec.Header().Get(deliverycontext.HeaderSessionID))
	assert.Equal(t, "walkthrough", env.SessionID)

	var first struct {
		QuestionID int64 `json:"question_id"`
		Options    []struct {
			OptionID int64 `json:"option_id"`
		} `json:"options"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &first))
	assert.Equal(t, int64(10), first.QuestionID)
	require.Len(t, first.Options, 2)
	assert.Equal(t, int64(100), first.Options[0].OptionID)
	assert.Equal(t, int64(101), first.Options[1].OptionID)

	_, env = s.do(http.MethodPost, "/user-responses/", `{"response_id":100}`, bearer)
	require.NotNil(t, env.NextQuestion)
	assert.Equal(t, int64(11), env.NextQuestion.QuestionID)

	// Re-sending the answer to a question already passed is rejected without touching the log.
	rec, env = s.do(http.MethodPost, "/user-responses/", `{"response_id":100}`, bearer)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "INVALID_OPTION", env.Error.Code)

	_, env = s.do(http.MethodPost, "/user-responses", `{"response_id":111}`, bearer)
	require.NotNil(t, env.NextQuestion)
	assert.Equal(t, int64(20), env.NextQuestion.QuestionID)

	s.publisher.EXPECT().
		PublishQuestionnaireCompleted(mock.Anything, mock.MatchedBy(func(e *service.QuestionnaireCompletedEvent) bool {
			return e.AnsweredCount == 3 && e.SessionID == "walkthrough"
		})).
		Return(nil).
		Once()

	rec, env = s.do(http.MethodPost, "/user-responses/", `{"response_id":200}`, bearer)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, env.NextQuestion)
	assert.Contains(t, env.Message, "completed all questions")

	_, env = s.do(http.MethodGet, "/questions/next", "", bearer)
	assert.Equal(t, "No more questions available", env.Message)
	assert.Empty(t, env.Data)

	rec, env = s.do(http.MethodPost, "/user-responses/", `{"response_id":200}`, bearer)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NO_QUESTION_TO_ANSWER", env.Error.Code)

	_, env = s.do(http.MethodGet, "/user-responses/", "", bearer)
	var history []struct {
		QuestionID int64 `json:"question_id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &history))
	require.Len(t, history, 3)
	assert.Equal(t, []int64{10, 11, 20}, []int64{history[0].QuestionID, history[1].QuestionID, history[2].QuestionID})
}

func TestServer_UserResolution(t *testing.T) {
	s := newTestServer(t)

	t.Run("no credentials", func(t *testing.T) {
		rec, env := s.do(http.MethodGet, "/questions/next", "", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "USER_UNKNOWN", env.Error.Code)
		assert.NotEmpty(t, env.SessionID)
	})

	t.Run("unknown user_id", func(t *testing.T) {
		rec, env := s.do(http.MethodPost, "/user-responses/", `{"response_id":100}`,
			map[string]string{deliverycontext.HeaderUserID: uuid.NewString()})

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "USER_UNKNOWN", env.Error.Code)
	})

	t.Run("user_id header of a registered user", func(t *testing.T) {
		token := s.register("bo@example.com")
		_, env := s.do(http.MethodGet, "/user/profile", "", map[string]string{echo.HeaderAuthorization: "Bearer " + token})

		var profile handler.UserResponse
		require.NoError(t, json.Unmarshal(env.Data, &profile))

		rec, env := s.do(http.MethodGet, "/questions/next", "",
			map[string]string{deliverycontext.HeaderUserID: profile.ID.String()})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, env.Data)
	})
}

func TestServer_Validation(t *testing.T) {
	s := newTestServer(t)
	token := s.register("cy@example.com")

	rec, env := s.do(http.MethodPost, "/user-responses/", `{"response_id":0}`,
		map[string]string{echo.HeaderAuthorization: "Bearer " + token})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestServer_FundsAndHealth(t *testing.T) {
	s := newTestServer(t)

	rec, _ := s.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env := s.do(http.MethodGet, "/mutual-funds/categories", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var categories []handler.CategoryResponse
	require.NoError(t, json.Unmarshal(env.Data, &categories))
	assert.Len(t, categories, 2)

	rec, env = s.do(http.MethodGet, "/mutual-funds/categories/999/funds", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "FUND_CATEGORY_NOT_FOUND", env.Error.Code)

	rec, env = s.do(http.MethodGet, "/no-such-route", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", env.Error.Code)
}
