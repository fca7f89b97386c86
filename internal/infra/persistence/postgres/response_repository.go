package postgres

import (
	"context"
	"time"

	"advisor/internal/domain/entity"
	"advisor/internal/domain/repository"
	"advisor/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// responseRepository implements the append-only repository.ResponseRepository.
type responseRepository struct {
	db *gorm.DB
}

// NewResponseRepository is the constructor for responseRepository.
func NewResponseRepository(db *gorm.DB) repository.ResponseRepository {
	return &responseRepository{
		db: db,
	}
}

// Append inserts one response row and copies the generated ID and timestamp back onto the entity.
func (repo *responseRepository) Append(ctx context.Context, response *entity.UserResponse) error {
	responseM := &model.UserResponseModel{
		UserID:     response.UserID,
		SectionID:  response.SectionID,
		QuestionID: response.QuestionID,
		OptionID:   response.OptionID,
	}

	if err := repo.db.WithContext(ctx).Create(responseM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateResponse
		}
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(repository.ErrOptionNotFound, "response references a missing catalog row")
		}

		return storageError(err, "failed to append response")
	}

	response.ID = responseM.ID
	response.CreatedAt = responseM.CreatedAt

	return nil
}

func (repo *responseRepository) LatestFor(ctx context.Context, userID uuid.UUID) (*entity.UserResponse, error) {
	var responseM model.UserResponseModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id DESC").
		Take(&responseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResponseNotFound
		}

		return nil, storageError(err, "failed to find latest response")
	}

	return toUserResponseDomain(&responseM), nil
}

// answeredRow is the projection scanned by AnsweredBy.
type answeredRow struct {
	ResponseID  int64
	SectionID   int64
	SectionName string
	QuestionID  int64
	Prompt      string
	OptionID    int64
	OptionText  string
	AnsweredAt  time.Time
}

func (repo *responseRepository) AnsweredBy(ctx context.Context, userID uuid.UUID) ([]*entity.AnsweredQuestion, error) {
	var rows []answeredRow

	if err := repo.db.WithContext(ctx).
		Table("user_responses AS ur").
		Select("ur.id AS response_id, ur.section_id, s.name AS section_name, ur.question_id, q.prompt, "+
			"ur.option_id, o.text AS option_text, ur.created_at AS answered_at").
		Joins("JOIN sections s ON s.id = ur.section_id").
		Joins("JOIN questions q ON q.id = ur.question_id").
		Joins("JOIN options o ON o.id = ur.option_id").
		Where("ur.user_id = ?", userID).
		Order("ur.id ASC").
		Scan(&rows).Error; err != nil {
		return nil, storageError(err, "failed to list answered questions")
	}

	answered := make([]*entity.AnsweredQuestion, 0, len(rows))
	for _, row := range rows {
		answered = append(answered, &entity.AnsweredQuestion{
			ResponseID:  row.ResponseID,
			SectionID:   row.SectionID,
			SectionName: row.SectionName,
			QuestionID:  row.QuestionID,
			Prompt:      row.Prompt,
			OptionID:    row.OptionID,
			OptionText:  row.OptionText,
			AnsweredAt:  row.AnsweredAt,
		})
	}

	return answered, nil
}

func toUserResponseDomain(data *model.UserResponseModel) *entity.UserResponse {
	return &entity.UserResponse{
		ID:         data.ID,
		UserID:     data.UserID,
		SectionID:  data.SectionID,
		QuestionID: data.QuestionID,
		OptionID:   data.OptionID,
		CreatedAt:  data.CreatedAt,
	}
}
