package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"advisor/internal/delivery/api/response"
	deliverycontext "advisor/internal/delivery/context"
	domainerrors "advisor/internal/domain/errors"
	internalerrors "advisor/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantDetail any
	}{
		{
			name:       "wrapped app error",
			err:        errors.Wrap(domainerrors.ErrNoQuestionToAnswer, "failed to submit answer"),
			wantStatus: http.StatusNotFound,
			wantCode:   "NO_QUESTION_TO_ANSWER",
		},
		{
			name:       "marked storage failure",
			err:        internalerrors.MarkWrap(errors.New("dial tcp: refused"), domainerrors.ErrStorageUnavailable, "failed to load latest response"),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "STORAGE_UNAVAILABLE",
		},
		{
			name:       "app error details are passed through",
			err:        domainerrors.ErrValidationFailed.WithDetails("OptionID must be greater than 0"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
			wantDetail: "OptionID must be greater than 0",
		},
		{
			name:       "echo http error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error is hidden",
			err:        errors.New("pq: something internal"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
		{
			name:       "server side app error drops details",
			err:        domainerrors.ErrPasswordHashFailed.WithDetails("bcrypt: cost out of range"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "PASSWORD_HASH_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodPost, "/user-responses/", nil), rec)
			deliverycontext.SetSessionID(c, "s-1")

			NewErrorMiddleware(newDiscardLogger()).HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body response.Body
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetail, body.Error.Details)
			assert.Equal(t, "s-1", body.SessionID)
			assert.NotContains(t, body.Error.Message, "pq:")
		})
	}
}

func TestErrorMiddleware_CommittedResponseIsLeftAlone(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.String(http.StatusOK, "done"))

	NewErrorMiddleware(newDiscardLogger()).HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}
