package repository

import (
	"context"
	"errors"

	"advisor/internal/domain/entity"
)

// ErrFundCategoryNotFound is returned when a category ID is unknown.
var ErrFundCategoryNotFound = errors.New("fund category not found")

// FundRepository reads the mutual-fund categories and their schemes.
type FundRepository interface {
	ListCategories(ctx context.Context) ([]*entity.FundCategory, error)
	FindCategory(ctx context.Context, id int64) (*entity.FundCategory, error)
	ListFundsByCategory(ctx context.Context, categoryID int64) ([]*entity.Fund, error)
}
