package services

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/finbooks/finbooks_backend/internal/dto"
)

// BudgetSvcFacade defines operations for budget data
type BudgetSvcFacade interface {
	// GetBudgetByID retrieves a specific budget by its unique identifier.
	GetBudgetByID(ctx context.Context, companyID string, budgetID string) (*domain.Budget, error)

	// ListBudgets retrieves the budgets of a company, optionally filtered by period.
	ListBudgets(ctx context.Context, companyID string, period *string, limit int, offset int) ([]domain.Budget, error)

	// CreateBudget persists a new budget.
	CreateBudget(ctx context.Context, companyID string, req dto.CreateBudgetRequest, userID string) (*domain.Budget, error)

	// UpdateBudget updates an existing budget's details.
	UpdateBudget(ctx context.Context, companyID string, budgetID string, req dto.UpdateBudgetRequest, userID string) (*domain.Budget, error)

	// DeleteBudget removes a budget from a company.
	DeleteBudget(ctx context.Context, companyID string, budgetID string, userID string) error
}
