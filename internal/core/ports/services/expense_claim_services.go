package services

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/finbooks/finbooks_backend/internal/dto"
)

// ExpenseClaimReaderSvc defines read operations for expense claim data
type ExpenseClaimReaderSvc interface {
	// GetClaimByID retrieves a specific claim by its unique identifier.
	GetClaimByID(ctx context.Context, companyID string, claimID string) (*domain.ExpenseClaim, error)

	// ListClaims retrieves the claims of a company, optionally filtered by status.
	ListClaims(ctx context.Context, companyID string, status *domain.ClaimStatus, limit int, offset int) ([]domain.ExpenseClaim, error)
}

// ExpenseClaimWriterSvc defines write operations for expense claim data
type ExpenseClaimWriterSvc interface {
	// CreateClaim files a new claim in the PENDING state.
	CreateClaim(ctx context.Context, companyID string, req dto.CreateExpenseClaimRequest, userID string) (*domain.ExpenseClaim, error)

	// UpdateClaim updates a pending claim's details.
	UpdateClaim(ctx context.Context, companyID string, claimID string, req dto.UpdateExpenseClaimRequest, userID string) (*domain.ExpenseClaim, error)

	// DeleteClaim removes a claim from a company.
	DeleteClaim(ctx context.Context, companyID string, claimID string, userID string) error

	// ApproveClaim approves a pending claim, paying the reimbursement from
	// the named wallet or the company default. It returns the approved claim
	// and the reimbursement transaction.
	ApproveClaim(ctx context.Context, companyID string, claimID string, req dto.ApproveClaimRequest, userID string) (*domain.ExpenseClaim, *domain.Transaction, error)

	// RejectClaim rejects a pending claim.
	RejectClaim(ctx context.Context, companyID string, claimID string, userID string) (*domain.ExpenseClaim, error)
}

// ExpenseClaimSvcFacade combines all claim-related service interfaces
type ExpenseClaimSvcFacade interface {
	ExpenseClaimReaderSvc
	ExpenseClaimWriterSvc
}
