package usecase

import (
	"context"

	"advisor/internal/domain/entity"
)

// FundUsecase exposes the read-only mutual-fund catalog.
type FundUsecase interface {
	ListCategories(ctx context.Context) ([]*entity.FundCategory, error)
	ListFunds(ctx context.Context, categoryID int64) ([]*entity.Fund, error)
}
