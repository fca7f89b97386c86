package postgres

import (
	"context"

	"advisor/internal/domain/entity"
	"advisor/internal/domain/repository"
	"advisor/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// fundRepository implements repository.FundRepository.
type fundRepository struct {
	db *gorm.DB
}

// NewFundRepository is the constructor for fundRepository.
func NewFundRepository(db *gorm.DB) repository.FundRepository {
	return &fundRepository{
		db: db,
	}
}

func (repo *fundRepository) ListCategories(ctx context.Context) ([]*entity.FundCategory, error) {
	var categoryModels []*model.FundCategoryModel

	if err := repo.db.WithContext(ctx).
		Order("id ASC").
		Find(&categoryModels).Error; err != nil {
		return nil, storageError(err, "failed to list fund categories")
	}

	categories := make([]*entity.FundCategory, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, toFundCategoryDomain(categoryM))
	}

	return categories, nil
}

func (repo *fundRepository) FindCategory(ctx context.Context, id int64) (*entity.FundCategory, error) {
	var categoryM model.FundCategoryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFundCategoryNotFound
		}

		return nil, storageError(err, "failed to find fund category")
	}

	return toFundCategoryDomain(&categoryM), nil
}

func (repo *fundRepository) ListFundsByCategory(ctx context.Context, categoryID int64) ([]*entity.Fund, error) {
	var fundModels []*model.FundModel

	if err := repo.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("id ASC").
		Find(&fundModels).Error; err != nil {
		return nil, storageError(err, "failed to list funds")
	}

	funds := make([]*entity.Fund, 0, len(fundModels))
	for _, fundM := range fundModels {
		funds = append(funds, &entity.Fund{
			ID:         fundM.ID,
			CategoryID: fundM.CategoryID,
			SchemeCode: fundM.SchemeCode,
			SchemeName: fundM.SchemeName,
			NAV:        fundM.NAV,
		})
	}

	return funds, nil
}

func toFundCategoryDomain(data *model.FundCategoryModel) *entity.FundCategory {
	return &entity.FundCategory{
		ID:          data.ID,
		Name:        data.Name,
		RiskLevel:   data.RiskLevel,
		Description: data.Description,
	}
}
