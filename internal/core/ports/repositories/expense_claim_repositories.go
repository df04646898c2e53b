package repositories

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
)

// ExpenseClaimReader defines read operations for expense claim data
type ExpenseClaimReader interface {
	// FindClaimByID retrieves a claim within a company by its unique identifier.
	FindClaimByID(ctx context.Context, companyID string, claimID string) (*domain.ExpenseClaim, error)

	// ListClaims retrieves the claims of a company ordered by date descending,
	// optionally filtered by status.
	ListClaims(ctx context.Context, companyID string, status *domain.ClaimStatus, limit int, offset int) ([]domain.ExpenseClaim, error)
}

// ExpenseClaimWriter defines write operations for expense claim data
type ExpenseClaimWriter interface {
	// SaveClaim persists a new claim.
	SaveClaim(ctx context.Context, claim domain.ExpenseClaim) error

	// UpdateClaim updates an existing claim's details.
	UpdateClaim(ctx context.Context, claim domain.ExpenseClaim) error

	// DeleteClaim removes a claim from a company.
	DeleteClaim(ctx context.Context, companyID string, claimID string) error

	// ApproveClaim marks a PENDING claim APPROVED and persists the
	// reimbursement transaction, adjusting the paying wallet's balance, all
	// within a single database transaction. A claim that is not PENDING
	// results in apperrors.ErrConflict and nothing is written.
	ApproveClaim(ctx context.Context, companyID string, claimID string, txn domain.Transaction) (*domain.ExpenseClaim, error)

	// RejectClaim marks a PENDING claim REJECTED. A claim that is not
	// PENDING results in apperrors.ErrConflict.
	RejectClaim(ctx context.Context, companyID string, claimID string, updatedBy string) (*domain.ExpenseClaim, error)
}

// ExpenseClaimRepositoryFacade combines all claim-related repository interfaces
type ExpenseClaimRepositoryFacade interface {
	ExpenseClaimReader
	ExpenseClaimWriter
}
