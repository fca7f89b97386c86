package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"advisor/internal/delivery/api/validator"
	deliverycontext "advisor/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const testSessionID = "session-under-test"

type testBody struct {
	SessionID    string          `json:"session_id"`
	Message      string          `json:"message"`
	Data         json.RawMessage `json:"data"`
	NextQuestion json.RawMessage `json:"next_question"`
	Error        *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details string `json:"details"`
	} `json:"error"`
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestContext builds an echo context the way the middleware chain leaves it: session tag set and,
// when userID is non-nil, the caller resolved.
func newTestContext(method, target, body string, userID *uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	deliverycontext.SetSessionID(c, testSessionID)
	if userID != nil {
		deliverycontext.SetUserID(c, *userID)
	}

	return c, rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) testBody {
	t.Helper()

	var body testBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}
