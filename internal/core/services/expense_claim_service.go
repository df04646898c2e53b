package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
	"github.com/finbooks/finbooks_backend/internal/events"
	"github.com/finbooks/finbooks_backend/internal/middleware"
)

// expenseClaimService manages employee reimbursement claims. Approval pays
// the claim out of a wallet via a single repository transaction.
type expenseClaimService struct {
	claimRepo   portsrepo.ExpenseClaimRepositoryFacade
	companyRepo portsrepo.CompanyRepositoryFacade
	walletRepo  portsrepo.WalletRepositoryFacade
	hrRepo      portsrepo.HRRepositoryFacade
	publisher   events.Publisher
}

// NewExpenseClaimService creates a new instance of expenseClaimService.
func NewExpenseClaimService(
	claimRepo portsrepo.ExpenseClaimRepositoryFacade,
	companyRepo portsrepo.CompanyRepositoryFacade,
	walletRepo portsrepo.WalletRepositoryFacade,
	hrRepo portsrepo.HRRepositoryFacade,
	publisher events.Publisher,
) portssvc.ExpenseClaimSvcFacade {
	return &expenseClaimService{
		claimRepo:   claimRepo,
		companyRepo: companyRepo,
		walletRepo:  walletRepo,
		hrRepo:      hrRepo,
		publisher:   publisher,
	}
}

var _ portssvc.ExpenseClaimSvcFacade = (*expenseClaimService)(nil)

func (s *expenseClaimService) GetClaimByID(ctx context.Context, companyID string, claimID string) (*domain.ExpenseClaim, error) {
	return s.claimRepo.FindClaimByID(ctx, companyID, claimID)
}

func (s *expenseClaimService) ListClaims(ctx context.Context, companyID string, status *domain.ClaimStatus, limit int, offset int) ([]domain.ExpenseClaim, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.claimRepo.ListClaims(ctx, companyID, status, limit, offset)
}

func (s *expenseClaimService) CreateClaim(ctx context.Context, companyID string, req dto.CreateExpenseClaimRequest, userID string) (*domain.ExpenseClaim, error) {
	if req.Amount.IsNegative() || req.Amount.IsZero() {
		return nil, fmt.Errorf("%w: claim amount must be positive", apperrors.ErrValidation)
	}

	if _, err := s.hrRepo.FindEmployeeByID(ctx, companyID, req.EmployeeID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	claim := domain.ExpenseClaim{
		ClaimID:     uuid.NewString(),
		CompanyID:   companyID,
		EmployeeID:  req.EmployeeID,
		Date:        req.Date,
		CategoryID:  req.CategoryID,
		Amount:      req.Amount,
		Description: req.Description,
		Status:      domain.ClaimPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.claimRepo.SaveClaim(ctx, claim); err != nil {
		return nil, err
	}
	return &claim, nil
}

func (s *expenseClaimService) UpdateClaim(ctx context.Context, companyID string, claimID string, req dto.UpdateExpenseClaimRequest, userID string) (*domain.ExpenseClaim, error) {
	claim, err := s.claimRepo.FindClaimByID(ctx, companyID, claimID)
	if err != nil {
		return nil, err
	}
	if claim.Status != domain.ClaimPending {
		return nil, fmt.Errorf("%w: only pending claims can be edited", apperrors.ErrConflict)
	}

	if req.Date != nil {
		claim.Date = *req.Date
	}
	if req.CategoryID != nil {
		claim.CategoryID = *req.CategoryID
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() || req.Amount.IsZero() {
			return nil, fmt.Errorf("%w: claim amount must be positive", apperrors.ErrValidation)
		}
		claim.Amount = *req.Amount
	}
	if req.Description != nil {
		claim.Description = *req.Description
	}
	claim.LastUpdatedAt = time.Now().UTC()
	claim.LastUpdatedBy = userID

	if err := s.claimRepo.UpdateClaim(ctx, *claim); err != nil {
		return nil, err
	}
	return claim, nil
}

func (s *expenseClaimService) DeleteClaim(ctx context.Context, companyID string, claimID string, userID string) error {
	return s.claimRepo.DeleteClaim(ctx, companyID, claimID)
}

// ApproveClaim approves a pending claim. The reimbursement is paid from the
// wallet named in the request, falling back to the company's default wallet.
// The status flip, the transaction insert and the wallet debit commit
// together or not at all.
func (s *expenseClaimService) ApproveClaim(ctx context.Context, companyID string, claimID string, req dto.ApproveClaimRequest, userID string) (*domain.ExpenseClaim, *domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	claim, err := s.claimRepo.FindClaimByID(ctx, companyID, claimID)
	if err != nil {
		return nil, nil, err
	}

	walletID := ""
	if req.WalletID != nil && *req.WalletID != "" {
		walletID = *req.WalletID
	} else {
		company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
		if err != nil {
			return nil, nil, err
		}
		if company.DefaultWalletID == nil || *company.DefaultWalletID == "" {
			return nil, nil, fmt.Errorf("%w: no wallet given and the company has no default wallet", apperrors.ErrValidation)
		}
		walletID = *company.DefaultWalletID
	}

	wallet, err := s.walletRepo.FindWalletByID(ctx, companyID, walletID)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		CompanyID:     companyID,
		Date:          now,
		Description:   fmt.Sprintf("Expense claim reimbursement: %s", claim.Description),
		Amount:        claim.Amount.Abs().Neg(),
		CurrencyCode:  wallet.CurrencyCode,
		Type:          domain.Expense,
		CategoryID:    claim.CategoryID,
		WalletID:      wallet.WalletID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	approved, err := s.claimRepo.ApproveClaim(ctx, companyID, claimID, txn)
	if err != nil {
		return nil, nil, err
	}

	if pubErr := s.publisher.Publish(ctx, events.ClaimApproved, approved); pubErr != nil {
		logger.WarnContext(ctx, "failed to publish claim approved event", slog.String("claim_id", claimID), slog.String("error", pubErr.Error()))
	}

	return approved, &txn, nil
}

// RejectClaim rejects a pending claim. No money moves.
func (s *expenseClaimService) RejectClaim(ctx context.Context, companyID string, claimID string, userID string) (*domain.ExpenseClaim, error) {
	return s.claimRepo.RejectClaim(ctx, companyID, claimID, userID)
}
