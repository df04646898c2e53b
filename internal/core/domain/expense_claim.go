package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClaimStatus is the lifecycle state of an expense claim.
// Claims are created Pending and transition one-way to Approved or Rejected.
type ClaimStatus string

const (
	ClaimPending  ClaimStatus = "PENDING"
	ClaimApproved ClaimStatus = "APPROVED"
	ClaimRejected ClaimStatus = "REJECTED"
)

// ExpenseClaim is an employee reimbursement request. Amount is always
// positive; the reimbursement transaction created on approval carries
// -abs(Amount).
type ExpenseClaim struct {
	ClaimID     string          `json:"claimID"` // Primary Key (UUID)
	CompanyID   string          `json:"companyID"`
	EmployeeID  string          `json:"employeeID"`
	Date        time.Time       `json:"date"`
	CategoryID  string          `json:"categoryID"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Status      ClaimStatus     `json:"status"`
	AuditFields
}

// ReimbursementMatches reports whether txn pays out exactly this claim:
// the amount must be the claim amount negated and the category must match.
func (c *ExpenseClaim) ReimbursementMatches(txn Transaction) bool {
	return txn.Amount.Equal(c.Amount.Abs().Neg()) && txn.CategoryID == c.CategoryID
}
