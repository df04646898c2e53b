package services

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/finbooks/finbooks_backend/internal/dto"
)

// GoalReaderSvc defines read operations for financial goal data
type GoalReaderSvc interface {
	// GetGoalByID retrieves a specific goal by its unique identifier.
	GetGoalByID(ctx context.Context, companyID string, goalID string) (*domain.FinancialGoal, error)

	// ListGoals retrieves the goals of a company.
	ListGoals(ctx context.Context, companyID string, limit int, offset int) ([]domain.FinancialGoal, error)
}

// GoalWriterSvc defines write operations for financial goal data
type GoalWriterSvc interface {
	// CreateGoal persists a new goal.
	CreateGoal(ctx context.Context, companyID string, req dto.CreateGoalRequest, userID string) (*domain.FinancialGoal, error)

	// UpdateGoal updates an existing goal's details.
	UpdateGoal(ctx context.Context, companyID string, goalID string, req dto.UpdateGoalRequest, userID string) (*domain.FinancialGoal, error)

	// DeleteGoal removes a goal from a company.
	DeleteGoal(ctx context.Context, companyID string, goalID string, userID string) error

	// Contribute moves money from a wallet into a goal, returning the
	// updated goal and the funding transaction.
	Contribute(ctx context.Context, companyID string, goalID string, req dto.ContributeRequest, userID string) (*domain.FinancialGoal, *domain.Transaction, error)
}

// GoalSvcFacade combines all goal-related service interfaces
type GoalSvcFacade interface {
	GoalReaderSvc
	GoalWriterSvc
}
