package postgres

import (
	"context"

	"advisor/internal/domain/entity"
	"advisor/internal/domain/repository"
	"advisor/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// questionOrder is the canonical traversal order of the catalog.
const questionOrder = "section_id ASC, id ASC"

// catalogRepository implements repository.CatalogRepository over the seeded catalog tables.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{
		db: db,
	}
}

func (repo *catalogRepository) FirstQuestion(ctx context.Context) (*entity.Question, error) {
	var questionM model.QuestionModel

	if err := repo.db.WithContext(ctx).
		Order(questionOrder).
		Take(&questionM).Error; err != nil {
		return nil, questionLookupError(err, "failed to find first question")
	}

	return toQuestionDomain(&questionM), nil
}

// NextQuestionAfter finds the successor of (sectionID, questionID). Sections without questions
// have no rows here, so they are skipped without special handling.
func (repo *catalogRepository) NextQuestionAfter(ctx context.Context, sectionID, questionID int64) (*entity.Question, error) {
	var questionM model.QuestionModel

	if err := repo.db.WithContext(ctx).
		Where("(section_id = ? AND id > ?) OR section_id > ?", sectionID, questionID, sectionID).
		Order(questionOrder).
		Take(&questionM).Error; err != nil {
		return nil, questionLookupError(err, "failed to find next question")
	}

	return toQuestionDomain(&questionM), nil
}

func (repo *catalogRepository) OptionsFor(ctx context.Context, questionID int64) ([]*entity.Option, error) {
	var optionModels []*model.OptionModel

	if err := repo.db.WithContext(ctx).
		Where("question_id = ?", questionID).
		Order("id ASC").
		Find(&optionModels).Error; err != nil {
		return nil, storageError(err, "failed to list options")
	}

	options := make([]*entity.Option, 0, len(optionModels))
	for _, optionM := range optionModels {
		options = append(options, toOptionDomain(optionM))
	}

	return options, nil
}

func (repo *catalogRepository) FindOption(ctx context.Context, optionID int64) (*entity.Option, error) {
	var optionM model.OptionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", optionID).
		Take(&optionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOptionNotFound
		}

		return nil, storageError(err, "failed to find option")
	}

	return toOptionDomain(&optionM), nil
}

func (repo *catalogRepository) FindQuestion(ctx context.Context, questionID int64) (*entity.Question, error) {
	var questionM model.QuestionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", questionID).
		Take(&questionM).Error; err != nil {
		return nil, questionLookupError(err, "failed to find question")
	}

	return toQuestionDomain(&questionM), nil
}

func (repo *catalogRepository) FindSection(ctx context.Context, sectionID int64) (*entity.Section, error) {
	var sectionM model.SectionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", sectionID).
		Take(&sectionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSectionNotFound
		}

		return nil, storageError(err, "failed to find section")
	}

	return &entity.Section{ID: sectionM.ID, Name: sectionM.Name}, nil
}

func questionLookupError(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrQuestionNotFound
	}

	return storageError(err, message)
}

// --- Mapper Functions ---

func toQuestionDomain(data *model.QuestionModel) *entity.Question {
	return &entity.Question{
		ID:        data.ID,
		SectionID: data.SectionID,
		Prompt:    data.Prompt,
	}
}

func toOptionDomain(data *model.OptionModel) *entity.Option {
	return &entity.Option{
		ID:         data.ID,
		QuestionID: data.QuestionID,
		Text:       data.Text,
	}
}
