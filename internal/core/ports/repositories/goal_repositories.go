package repositories

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
)

// GoalReader defines read operations for financial goal data
type GoalReader interface {
	// FindGoalByID retrieves a goal within a company by its unique identifier.
	FindGoalByID(ctx context.Context, companyID string, goalID string) (*domain.FinancialGoal, error)

	// ListGoals retrieves the goals of a company ordered by name.
	ListGoals(ctx context.Context, companyID string, limit int, offset int) ([]domain.FinancialGoal, error)
}

// GoalWriter defines write operations for financial goal data
type GoalWriter interface {
	// SaveGoal persists a new goal.
	SaveGoal(ctx context.Context, goal domain.FinancialGoal) error

	// UpdateGoal updates an existing goal's details.
	UpdateGoal(ctx context.Context, goal domain.FinancialGoal) error

	// DeleteGoal removes a goal from a company.
	DeleteGoal(ctx context.Context, companyID string, goalID string) error

	// ContributeToGoal increments the goal's current amount and persists the
	// funding transaction, adjusting the source wallet's balance, all within
	// a single database transaction. It returns the updated goal.
	ContributeToGoal(ctx context.Context, companyID string, goalID string, txn domain.Transaction) (*domain.FinancialGoal, error)
}

// GoalRepositoryFacade combines all goal-related repository interfaces
type GoalRepositoryFacade interface {
	GoalReader
	GoalWriter
}
