package dto

import (
	"time"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateGoalRequest defines the payload for creating a financial goal.
type CreateGoalRequest struct {
	Name         string          `json:"name" binding:"required"`
	TargetAmount decimal.Decimal `json:"targetAmount" binding:"required"`
	Deadline     *time.Time      `json:"deadline"`
}

// UpdateGoalRequest defines the payload for updating a goal. CurrentAmount is
// deliberately absent: it is mutated only via the contribute operation.
type UpdateGoalRequest struct {
	Name         *string          `json:"name"`
	TargetAmount *decimal.Decimal `json:"targetAmount"`
	Deadline     *time.Time       `json:"deadline"`
}

// ContributeRequest defines the payload for a goal contribution.
type ContributeRequest struct {
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	WalletID string          `json:"walletID" binding:"required"`
}

// GoalResponse defines the goal data returned by the API.
type GoalResponse struct {
	GoalID        string          `json:"goalID"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Deadline      *time.Time      `json:"deadline"`
}

// ListGoalsResponse wraps a list of goals.
type ListGoalsResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ContributionResponse returns the updated goal together with the funding
// transaction created alongside it.
type ContributionResponse struct {
	Goal        GoalResponse        `json:"goal"`
	Transaction TransactionResponse `json:"transaction"`
}

// ToGoalResponse converts a domain.FinancialGoal to a GoalResponse DTO.
func ToGoalResponse(g *domain.FinancialGoal) GoalResponse {
	return GoalResponse{
		GoalID:        g.GoalID,
		Name:          g.Name,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		Deadline:      g.Deadline,
	}
}
