package domain

import "github.com/shopspring/decimal"

// Budget caps spending for a category over a period. Progress against the
// budget is derived from transactions at read time, never persisted.
type Budget struct {
	BudgetID   string          `json:"budgetID"` // Primary Key (UUID)
	CompanyID  string          `json:"companyID"`
	CategoryID string          `json:"categoryID"`
	Amount     decimal.Decimal `json:"amount"`
	Period     string          `json:"period"` // "YYYY-MM"
	AuditFields
}
