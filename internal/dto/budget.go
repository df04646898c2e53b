package dto

import (
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBudgetRequest defines the payload for creating a budget.
type CreateBudgetRequest struct {
	CategoryID string          `json:"categoryID" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Period     string          `json:"period" binding:"required"` // "YYYY-MM"
}

// UpdateBudgetRequest defines the payload for updating a budget.
type UpdateBudgetRequest struct {
	CategoryID *string          `json:"categoryID"`
	Amount     *decimal.Decimal `json:"amount"`
	Period     *string          `json:"period"`
}

// BudgetResponse defines the budget data returned by the API.
type BudgetResponse struct {
	BudgetID   string          `json:"budgetID"`
	CategoryID string          `json:"categoryID"`
	Amount     decimal.Decimal `json:"amount"`
	Period     string          `json:"period"`
}

// ListBudgetsResponse wraps a list of budgets.
type ListBudgetsResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// ToBudgetResponse converts a domain.Budget to a BudgetResponse DTO.
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{
		BudgetID:   b.BudgetID,
		CategoryID: b.CategoryID,
		Amount:     b.Amount,
		Period:     b.Period,
	}
}
