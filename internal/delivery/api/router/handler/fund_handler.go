package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"advisor/internal/delivery/api/response"
	"advisor/internal/domain/entity"
	"advisor/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FundHandlerParams holds dependencies for FundHandler, injected by Fx.
type FundHandlerParams struct {
	fx.In

	FundUC usecase.FundUsecase
	Logger *slog.Logger
}

// FundHandler serves the read-only mutual-fund catalog.
type FundHandler struct {
	fundUC usecase.FundUsecase
	logger *slog.Logger
}

// NewFundHandler is the constructor for FundHandler
func NewFundHandler(params FundHandlerParams) *FundHandler {
	return &FundHandler{
		fundUC: params.FundUC,
		logger: params.Logger,
	}
}

// CategoryResponse is the wire form of a fund category.
type CategoryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	RiskLevel   string `json:"risk_level,omitempty"`
	Description string `json:"description,omitempty"`
}

// FundResponse is the wire form of a fund scheme.
type FundResponse struct {
	ID         int64   `json:"id"`
	CategoryID int64   `json:"category_id"`
	SchemeCode string  `json:"scheme_code"`
	SchemeName string  `json:"scheme_name"`
	NAV        float64 `json:"nav"`
}

// ListCategories returns every fund category ordered by id.
func (h *FundHandler) ListCategories(c echo.Context) error {
	categories, err := h.fundUC.ListCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCategoryResponses(categories))
}

// ListFunds returns the schemes of the category in the :id path parameter.
func (h *FundHandler) ListFunds(c echo.Context) error {
	categoryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || categoryID <= 0 {
		return response.BadRequest(c, "INVALID_CATEGORY_ID", "Category ID must be a positive integer")
	}

	funds, err := h.fundUC.ListFunds(c.Request().Context(), categoryID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toFundResponses(funds))
}

func toCategoryResponses(categories []*entity.FundCategory) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		out = append(out, CategoryResponse{
			ID:          category.ID,
			Name:        category.Name,
			RiskLevel:   category.RiskLevel,
			Description: category.Description,
		})
	}

	return out
}

func toFundResponses(funds []*entity.Fund) []FundResponse {
	out := make([]FundResponse, 0, len(funds))
	for _, fund := range funds {
		out = append(out, FundResponse{
			ID:         fund.ID,
			CategoryID: fund.CategoryID,
			SchemeCode: fund.SchemeCode,
			SchemeName: fund.SchemeName,
			NAV:        fund.NAV,
		})
	}

	return out
}
