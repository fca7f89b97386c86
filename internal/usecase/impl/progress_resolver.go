package impl

import (
	"context"

	"advisor/internal/domain/entity"
	"advisor/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// currentPosition derives the question the user should answer next from the latest logged response.
// Progress is never stored: no response means the first question, otherwise the question after the
// latest answered one. A nil question with a nil error means the user has completed the catalog.
func currentPosition(
	ctx context.Context,
	catalog repository.CatalogRepository,
	responses repository.ResponseRepository,
	userID uuid.UUID,
) (*entity.Question, error) {
	latest, err := responses.LatestFor(ctx, userID)
	if errors.Is(err, repository.ErrResponseNotFound) {
		return absentIfExhausted(catalog.FirstQuestion(ctx))
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load latest response")
	}

	return absentIfExhausted(catalog.NextQuestionAfter(ctx, latest.SectionID, latest.QuestionID))
}

func absentIfExhausted(question *entity.Question, err error) (*entity.Question, error) {
	if errors.Is(err, repository.ErrQuestionNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve catalog position")
	}

	return question, nil
}
