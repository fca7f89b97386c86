package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Messages returned alongside questionnaire steps.
const (
	MessageNoMoreQuestions   = "No more questions available"
	MessageResponseRecorded  = "Response recorded successfully"
	MessageQuestionnaireDone = "Response recorded. You have completed all questions."
)

// OptionView is one selectable answer. Response carries the option text.
type OptionView struct {
	OptionID int64  `json:"option_id"`
	Response string `json:"response"`
}

// QuestionView is the question a user is expected to answer next.
type QuestionView struct {
	QuestionID  int64        `json:"question_id"`
	Question    string       `json:"question"`
	SectionID   int64        `json:"section_id"`
	SectionName string       `json:"section_name"`
	Options     []OptionView `json:"options"`
}

// QuestionnaireStep is the outcome of a peek or a submit: either the next question or completion.
type QuestionnaireStep struct {
	SessionID string
	Message   string
	Question  *QuestionView // nil when Completed
	Completed bool
}

// AnswerView is one recorded answer in a user's history.
type AnswerView struct {
	ResponseID  int64     `json:"response_row_id"`
	SectionID   int64     `json:"section_id"`
	SectionName string    `json:"section_name"`
	QuestionID  int64     `json:"question_id"`
	Question    string    `json:"question"`
	OptionID    int64     `json:"option_id"`
	Response    string    `json:"response"`
	AnsweredAt  time.Time `json:"answered_at"`
}

// QuestionnaireUsecase streams the catalog to a user one question at a time.
type QuestionnaireUsecase interface {
	// PeekNext returns the user's current question, or completion. It never writes.
	PeekNext(ctx context.Context, userID uuid.UUID, sessionTag string) (*QuestionnaireStep, error)

	// SubmitAnswer records optionID as the answer to the user's current question and returns the follow-up step.
	SubmitAnswer(ctx context.Context, userID uuid.UUID, optionID int64, sessionTag string) (*QuestionnaireStep, error)

	// History returns the answers the user has recorded so far, oldest first.
	History(ctx context.Context, userID uuid.UUID) ([]AnswerView, error)
}
