package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	domainerrors "advisor/internal/domain/errors"
	mockusecase "advisor/internal/mocks/usecase"
	"advisor/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleQuestion() *usecase.QuestionView {
	return &usecase.QuestionView{
		QuestionID:  11,
		Question:    "Investment horizon?",
		SectionID:   1,
		SectionName: "Risk",
		Options: []usecase.OptionView{
			{OptionID: 110, Response: "<3y"},
			{OptionID: 111, Response: ">3y"},
		},
	}
}

func newQuestionnaireHandler(t *testing.T) (*QuestionnaireHandler, *mockusecase.MockQuestionnaireUsecase) {
	uc := mockusecase.NewMockQuestionnaireUsecase(t)

	return NewQuestionnaireHandler(QuestionnaireHandlerParams{
		QuestionnaireUC: uc,
		Logger:          newDiscardLogger(),
	}), uc
}

func TestQuestionnaireHandler_NextQuestion(t *testing.T) {
	userID := uuid.New()

	t.Run("returns the current question under data", func(t *testing.T) {
		h, uc := newQuestionnaireHandler(t)
		uc.EXPECT().PeekNext(mock.Anything, userID, testSessionID).
			Return(&usecase.QuestionnaireStep{SessionID: testSessionID, Question: sampleQuestion()}, nil)

		c, rec := newTestContext(http.MethodGet, "/questions/next", "", &userID)
		require.NoError(t, h.NextQuestion(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, testSessionID, body.SessionID)
		assert.Empty(t, body.Message)

		var question usecase.QuestionView
		require.NoError(t, json.Unmarshal(body.Data, &question))
		assert.Equal(t, *sampleQuestion(), question)
	})

	t.Run("completed catalog returns only a message", func(t *testing.T) {
		h, uc := newQuestionnaireHandler(t)
		uc.EXPECT().PeekNext(mock.Anything, userID, testSessionID).
			Return(&usecase.QuestionnaireStep{SessionID: testSessionID, Message: usecase.MessageNoMoreQuestions, Completed: true}, nil)

		c, rec := newTestContext(http.MethodGet, "/questions/next", "", &userID)
		require.NoError(t, h.NextQuestion(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, usecase.MessageNoMoreQuestions, body.Message)
		assert.Empty(t, body.Data)
	})

	t.Run("unresolved caller", func(t *testing.T) {
		h, _ := newQuestionnaireHandler(t)

		c, rec := newTestContext(http.MethodGet, "/questions/next", "", nil)
		require.NoError(t, h.NextQuestion(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "USER_UNKNOWN", decodeBody(t, rec).Error.Code)
	})
}

func TestQuestionnaireHandler_SubmitResponse(t *testing.T) {
	userID := uuid.New()

	t.Run("records and returns the next question", func(t *testing.T) {
		h, uc := newQuestionnaireHandler(t)
		uc.EXPECT().SubmitAnswer(mock.Anything, userID, int64(100), testSessionID).
			Return(&usecase.QuestionnaireStep{
				SessionID: testSessionID,
				Message:   usecase.MessageResponseRecorded,
				Question:  sampleQuestion(),
			}, nil)

		c, rec := newTestContext(http.MethodPost, "/user-responses/", `{"response_id":100}`, &userID)
		require.NoError(t, h.SubmitResponse(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, usecase.MessageResponseRecorded, body.Message)

		var next usecase.QuestionView
		require.NoError(t, json.Unmarshal(body.NextQuestion, &next))
		assert.Equal(t, int64(11), next.QuestionID)
	})

	t.Run("final answer omits next_question", func(t *testing.T) {
		h, uc := newQuestionnaireHandler(t)
		uc.EXPECT().SubmitAnswer(mock.Anything, userID, int64(200), testSessionID).
			Return(&usecase.QuestionnaireStep{SessionID: testSessionID, Message: usecase.MessageQuestionnaireDone, Completed: true}, nil)

		c, rec := newTestContext(http.MethodPost, "/user-responses/", `{"response_id":200}`, &userID)
		require.NoError(t, h.SubmitResponse(c))

		body := decodeBody(t, rec)
		assert.Equal(t, usecase.MessageQuestionnaireDone, body.Message)
		assert.Empty(t, body.NextQuestion)
	})

	t.Run("rejects a non-positive option id before the usecase", func(t *testing.T) {
		h, _ := newQuestionnaireHandler(t)

		c, rec := newTestContext(http.MethodPost, "/user-responses/", `{"response_id":0}`, &userID)
		require.NoError(t, h.SubmitResponse(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
		assert.Contains(t, body.Error.Details, "OptionID")
	})

	t.Run("malformed body", func(t *testing.T) {
		h, _ := newQuestionnaireHandler(t)

		c, rec := newTestContext(http.MethodPost, "/user-responses/", `{"response_id":"abc"`, &userID)
		require.NoError(t, h.SubmitResponse(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", decodeBody(t, rec).Error.Code)
	})

	t.Run("wrapped domain error keeps its status", func(t *testing.T) {
		h, uc := newQuestionnaireHandler(t)
		uc.EXPECT().SubmitAnswer(mock.Anything, userID, int64(200), testSessionID).
			Return(nil, errors.Wrap(domainerrors.ErrInvalidOption, "failed to submit answer"))

		c, rec := newTestContext(http.MethodPost, "/user-responses/", `{"response_id":200}`, &userID)
		require.NoError(t, h.SubmitResponse(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "INVALID_OPTION", body.Error.Code)
		assert.Equal(t, testSessionID, body.SessionID)
	})

	t.Run("server-side failures go to the error handler", func(t *testing.T) {
		h, uc := newQuestionnaireHandler(t)
		uc.EXPECT().SubmitAnswer(mock.Anything, userID, int64(100), testSessionID).
			Return(nil, errors.Wrap(domainerrors.ErrStorageUnavailable, "connection refused"))

		c, _ := newTestContext(http.MethodPost, "/user-responses/", `{"response_id":100}`, &userID)
		err := h.SubmitResponse(c)

		assert.ErrorIs(t, err, domainerrors.ErrStorageUnavailable)
	})
}

func TestQuestionnaireHandler_ListResponses(t *testing.T) {
	userID := uuid.New()
	h, uc := newQuestionnaireHandler(t)
	uc.EXPECT().History(mock.Anything, userID).Return([]usecase.AnswerView{
		{ResponseID: 1, SectionID: 1, QuestionID: 10, OptionID: 100, Response: "Low"},
		{ResponseID: 2, SectionID: 1, QuestionID: 11, OptionID: 111, Response: ">3y"},
	}, nil)

	c, rec := newTestContext(http.MethodGet, "/user-responses/", "", &userID)
	require.NoError(t, h.ListResponses(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var answers []usecase.AnswerView
	require.NoError(t, json.Unmarshal(decodeBody(t, rec).Data, &answers))
	require.Len(t, answers, 2)
	assert.Equal(t, int64(10), answers[0].QuestionID)
	assert.Equal(t, int64(11), answers[1].QuestionID)
}
