package dto

import (
	"time"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseClaimRequest defines the payload for filing an expense claim.
// Claims are always created in the PENDING state.
type CreateExpenseClaimRequest struct {
	EmployeeID  string          `json:"employeeID" binding:"required"`
	Date        time.Time       `json:"date" binding:"required"`
	CategoryID  string          `json:"categoryID" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description" binding:"required"`
}

// UpdateExpenseClaimRequest defines the payload for editing a pending claim.
type UpdateExpenseClaimRequest struct {
	Date        *time.Time       `json:"date"`
	CategoryID  *string          `json:"categoryID"`
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description"`
}

// ApproveClaimRequest optionally names the wallet the reimbursement is paid
// from. When absent, the company's default wallet is used.
type ApproveClaimRequest struct {
	WalletID *string `json:"walletID"`
}

// ExpenseClaimResponse defines the claim data returned by the API.
type ExpenseClaimResponse struct {
	ClaimID     string          `json:"claimID"`
	EmployeeID  string          `json:"employeeID"`
	Date        time.Time       `json:"date"`
	CategoryID  string          `json:"categoryID"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
}

// ListExpenseClaimsResponse wraps a list of claims.
type ListExpenseClaimsResponse struct {
	Claims []ExpenseClaimResponse `json:"claims"`
}

// ApproveClaimResponse returns the approved claim together with the
// reimbursement transaction created alongside it.
type ApproveClaimResponse struct {
	Claim       ExpenseClaimResponse `json:"claim"`
	Transaction TransactionResponse  `json:"transaction"`
}

// ToExpenseClaimResponse converts a domain.ExpenseClaim to its DTO.
func ToExpenseClaimResponse(c *domain.ExpenseClaim) ExpenseClaimResponse {
	return ExpenseClaimResponse{
		ClaimID:     c.ClaimID,
		EmployeeID:  c.EmployeeID,
		Date:        c.Date,
		CategoryID:  c.CategoryID,
		Amount:      c.Amount,
		Description: c.Description,
		Status:      string(c.Status),
	}
}
