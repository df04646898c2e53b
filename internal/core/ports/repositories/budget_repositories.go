package repositories

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
)

// BudgetReader defines read operations for budget data
type BudgetReader interface {
	// FindBudgetByID retrieves a budget within a company by its unique identifier.
	FindBudgetByID(ctx context.Context, companyID string, budgetID string) (*domain.Budget, error)

	// ListBudgets retrieves the budgets of a company ordered by period
	// descending, optionally filtered by period.
	ListBudgets(ctx context.Context, companyID string, period *string, limit int, offset int) ([]domain.Budget, error)
}

// BudgetWriter defines write operations for budget data
type BudgetWriter interface {
	// SaveBudget persists a new budget.
	SaveBudget(ctx context.Context, budget domain.Budget) error

	// UpdateBudget updates an existing budget's details.
	UpdateBudget(ctx context.Context, budget domain.Budget) error

	// DeleteBudget removes a budget from a company.
	DeleteBudget(ctx context.Context, companyID string, budgetID string) error
}

// BudgetRepositoryFacade combines all budget-related repository interfaces
type BudgetRepositoryFacade interface {
	BudgetReader
	BudgetWriter
}
