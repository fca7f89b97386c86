package handler

import (
	"log/slog"
	"net/http"

	"advisor/internal/delivery/api/response"
	deliverycontext "advisor/internal/delivery/context"
	domainerrors "advisor/internal/domain/errors"
	"advisor/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// QuestionnaireHandlerParams holds dependencies for QuestionnaireHandler, injected by Fx.
type QuestionnaireHandlerParams struct {
	fx.In

	QuestionnaireUC usecase.QuestionnaireUsecase
	Logger          *slog.Logger
}

// QuestionnaireHandler serves the question stream and the response log.
type QuestionnaireHandler struct {
	questionnaireUC usecase.QuestionnaireUsecase
	logger          *slog.Logger
}

// NewQuestionnaireHandler is the constructor for QuestionnaireHandler
func NewQuestionnaireHandler(params QuestionnaireHandlerParams) *QuestionnaireHandler {
	return &QuestionnaireHandler{
		questionnaireUC: params.QuestionnaireUC,
		logger:          params.Logger,
	}
}

// SubmitResponseRequest carries the chosen option. The field name is kept for client compatibility.
type SubmitResponseRequest struct {
	OptionID int64 `json:"response_id" validate:"required,gt=0"`
}

// NextQuestion returns the caller's current question, or the completion message.
func (h *QuestionnaireHandler) NextQuestion(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUserUnknown)
	}

	step, err := h.questionnaireUC.PeekNext(c.Request().Context(), userID, deliverycontext.GetSessionID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if step.Completed {
		return response.Message(c, http.StatusOK, step.Message)
	}

	return response.Success(c, http.StatusOK, step.Question)
}

// SubmitResponse records an answer to the caller's current question.
func (h *QuestionnaireHandler) SubmitResponse(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUserUnknown)
	}

	var req SubmitResponseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid response input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	step, err := h.questionnaireUC.SubmitAnswer(c.Request().Context(), userID, req.OptionID, deliverycontext.GetSessionID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if step.Completed {
		return response.Message(c, http.StatusOK, step.Message)
	}

	return response.MessageWithNext(c, http.StatusOK, step.Message, step.Question)
}

// ListResponses returns the caller's recorded answers in the order they were given.
func (h *QuestionnaireHandler) ListResponses(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUserUnknown)
	}

	answers, err := h.questionnaireUC.History(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, answers)
}
