package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "advisor/internal/delivery/context"
	"advisor/internal/domain/entity"
	domainerrors "advisor/internal/domain/errors"
	"advisor/internal/domain/repository"
	"advisor/internal/domain/service"
	"advisor/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// completionPublishTimeout bounds how long the final submit waits on the event sink.
const completionPublishTimeout = 2 * time.Second

// QuestionnaireServiceParams holds dependencies for the questionnaire service, injected by Fx.
type QuestionnaireServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CatalogRepo  repository.CatalogRepository
	ResponseRepo repository.ResponseRepository
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

type questionnaireService struct {
	txManager    repository.TransactionManager
	catalogRepo  repository.CatalogRepository
	responseRepo repository.ResponseRepository
	publisher    service.EventPublisher
	logger       *slog.Logger
	now          func() time.Time

	publishTimeout time.Duration
}

// NewQuestionnaireService creates the questionnaire service.
func NewQuestionnaireService(params QuestionnaireServiceParams) usecase.QuestionnaireUsecase {
	return &questionnaireService{
		txManager:    params.TxManager,
		catalogRepo:  params.CatalogRepo,
		responseRepo: params.ResponseRepo,
		publisher:    params.Publisher,
		logger:       params.Logger,
		now:          time.Now,

		publishTimeout: completionPublishTimeout,
	}
}

func (s *questionnaireService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// PeekNext returns the user's current question without writing anything.
func (s *questionnaireService) PeekNext(ctx context.Context, userID uuid.UUID, sessionTag string) (*usecase.QuestionnaireStep, error) {
	sessionTag = entity.EnsureSessionTag(sessionTag)

	current, err := currentPosition(ctx, s.catalogRepo, s.responseRepo, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve current question")
	}

	if current == nil {
		return &usecase.QuestionnaireStep{
			SessionID: sessionTag,
			Message:   usecase.MessageNoMoreQuestions,
			Completed: true,
		}, nil
	}

	view, err := s.buildQuestionView(ctx, s.catalogRepo, current)
	if err != nil {
		return nil, err
	}

	return &usecase.QuestionnaireStep{
		SessionID: sessionTag,
		Question:  view,
	}, nil
}

// SubmitAnswer validates optionID against the user's current question and appends it to the response log.
// The current question is re-read under the user's row lock inside the same transaction as the append,
// so of two concurrent submits for the same question only one can commit.
func (s *questionnaireService) SubmitAnswer(ctx context.Context, userID uuid.UUID, optionID int64, sessionTag string) (*usecase.QuestionnaireStep, error) {
	sessionTag = entity.EnsureSessionTag(sessionTag)

	var recorded *entity.UserResponse
	err := s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		resp, err := s.recordAnswer(ctx, repos, userID, optionID)
		if err != nil {
			return err
		}
		recorded = resp

		return nil
	})
	if err != nil {
		s.log(ctx).Warn("Answer rejected",
			slog.String("user_id", userID.String()),
			slog.Int64("option_id", optionID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to submit answer")
	}

	s.log(ctx).Debug("Answer recorded",
		slog.String("user_id", userID.String()),
		slog.Int64("response_id", recorded.ID),
		slog.Int64("question_id", recorded.QuestionID),
		slog.Int64("option_id", recorded.OptionID),
	)

	next, err := currentPosition(ctx, s.catalogRepo, s.responseRepo, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve next question")
	}

	if next == nil {
		s.publishCompletion(ctx, userID, recorded, sessionTag)

		return &usecase.QuestionnaireStep{
			SessionID: sessionTag,
			Message:   usecase.MessageQuestionnaireDone,
			Completed: true,
		}, nil
	}

	view, err := s.buildQuestionView(ctx, s.catalogRepo, next)
	if err != nil {
		return nil, err
	}

	return &usecase.QuestionnaireStep{
		SessionID: sessionTag,
		Message:   usecase.MessageResponseRecorded,
		Question:  view,
	}, nil
}

// recordAnswer runs inside the submit transaction; every read goes through the transaction-bound repositories.
func (s *questionnaireService) recordAnswer(
	ctx context.Context,
	repos repository.RepositoryFactory,
	userID uuid.UUID,
	optionID int64,
) (*entity.UserResponse, error) {
	if err := repos.UserRepo().LockByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserUnknown
		}

		return nil, errors.Wrap(err, "failed to lock user")
	}

	current, err := currentPosition(ctx, repos.CatalogRepo(), repos.ResponseRepo(), userID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domainerrors.ErrNoQuestionToAnswer
	}

	option, err := repos.CatalogRepo().FindOption(ctx, optionID)
	if errors.Is(err, repository.ErrOptionNotFound) {
		return nil, domainerrors.ErrInvalidOption.WrapMessage("option does not exist")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load option")
	}
	if !option.BelongsTo(current) {
		return nil, domainerrors.ErrInvalidOption
	}

	resp := &entity.UserResponse{
		UserID:     userID,
		SectionID:  current.SectionID,
		QuestionID: current.ID,
		OptionID:   option.ID,
	}
	if err := repos.ResponseRepo().Append(ctx, resp); err != nil {
		if errors.Is(err, repository.ErrDuplicateResponse) {
			return nil, domainerrors.ErrInvalidOption.WrapMessage("question was answered by a concurrent request")
		}
		if errors.Is(err, repository.ErrOptionNotFound) {
			return nil, domainerrors.ErrInvalidOption.WrapMessage("option no longer in the catalog")
		}

		return nil, errors.Wrap(err, "failed to append response")
	}

	return resp, nil
}

func (s *questionnaireService) buildQuestionView(ctx context.Context, catalog repository.CatalogRepository, question *entity.Question) (*usecase.QuestionView, error) {
	section, err := catalog.FindSection(ctx, question.SectionID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load section %d", question.SectionID)
	}

	options, err := catalog.OptionsFor(ctx, question.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load options for question %d", question.ID)
	}
	if len(options) == 0 {
		s.log(ctx).Warn("Question has no options seeded", slog.Int64("question_id", question.ID))
	}

	views := make([]usecase.OptionView, 0, len(options))
	for _, opt := range options {
		views = append(views, usecase.OptionView{
			OptionID: opt.ID,
			Response: opt.Text,
		})
	}

	return &usecase.QuestionView{
		QuestionID:  question.ID,
		Question:    question.Prompt,
		SectionID:   section.ID,
		SectionName: section.Name,
		Options:     views,
	}, nil
}

// publishCompletion notifies downstream consumers. The answer is already committed,
// so failures here are logged and swallowed. The publish outlives a cancelled request
// but is cut off after publishTimeout.
func (s *questionnaireService) publishCompletion(ctx context.Context, userID uuid.UUID, last *entity.UserResponse, sessionTag string) {
	if s.publisher == nil {
		return
	}

	answered, err := s.responseRepo.AnsweredBy(ctx, userID)
	if err != nil {
		s.log(ctx).Warn("Failed to count answers for completion event", slog.Any("error", err))
	}

	event := &service.QuestionnaireCompletedEvent{
		SessionID:     sessionTag,
		UserID:        userID.String(),
		AnsweredCount: len(answered),
		LastQuestion:  last.QuestionID,
		CompletedAt:   s.now().UTC(),
	}

	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.publishTimeout)
	defer cancel()

	if err := s.publisher.PublishQuestionnaireCompleted(pubCtx, event); err != nil {
		s.log(ctx).Error("Failed to publish questionnaire completion",
			slog.String("user_id", event.UserID),
			slog.Any("error", err),
		)
	}
}

// History returns the user's recorded answers, oldest first.
func (s *questionnaireService) History(ctx context.Context, userID uuid.UUID) ([]usecase.AnswerView, error) {
	answered, err := s.responseRepo.AnsweredBy(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load answer history")
	}

	views := make([]usecase.AnswerView, 0, len(answered))
	for _, a := range answered {
		views = append(views, usecase.AnswerView{
			ResponseID:  a.ResponseID,
			SectionID:   a.SectionID,
			SectionName: a.SectionName,
			QuestionID:  a.QuestionID,
			Question:    a.Prompt,
			OptionID:    a.OptionID,
			Response:    a.OptionText,
			AnsweredAt:  a.AnsweredAt,
		})
	}

	return views, nil
}
