package impl

import (
	"context"
	"log/slog"

	"advisor/internal/domain/entity"
	domainerrors "advisor/internal/domain/errors"
	"advisor/internal/domain/repository"
	"advisor/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// FundServiceParams holds dependencies for the fund catalog service, injected by Fx.
type FundServiceParams struct {
	fx.In

	FundRepo repository.FundRepository
	Logger   *slog.Logger
}

type fundService struct {
	fundRepo repository.FundRepository
	logger   *slog.Logger
}

// NewFundService creates the read-only fund catalog service.
func NewFundService(params FundServiceParams) usecase.FundUsecase {
	return &fundService{
		fundRepo: params.FundRepo,
		logger:   params.Logger,
	}
}

func (s *fundService) ListCategories(ctx context.Context) ([]*entity.FundCategory, error) {
	categories, err := s.fundRepo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list fund categories")
	}

	return categories, nil
}

// ListFunds returns the schemes of one category. An unknown category is an error, an empty one is not.
func (s *fundService) ListFunds(ctx context.Context, categoryID int64) ([]*entity.Fund, error) {
	if _, err := s.fundRepo.FindCategory(ctx, categoryID); err != nil {
		if errors.Is(err, repository.ErrFundCategoryNotFound) {
			return nil, domainerrors.ErrFundCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to load fund category")
	}

	funds, err := s.fundRepo.ListFundsByCategory(ctx, categoryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list funds")
	}

	return funds, nil
}
