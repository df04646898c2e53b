package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FinancialGoal is a savings target. CurrentAmount is mutated only by the
// contribution operation and only ever increases; over-funding past
// TargetAmount is permitted.
type FinancialGoal struct {
	GoalID        string          `json:"goalID"` // Primary Key (UUID)
	CompanyID     string          `json:"companyID"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Deadline      *time.Time      `json:"deadline"`
	AuditFields
}
