package services

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
)

// budgetPeriodPattern matches "YYYY-MM".
var budgetPeriodPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// budgetService manages per-category spending budgets.
type budgetService struct {
	budgetRepo portsrepo.BudgetRepositoryFacade
	txnRepo    portsrepo.TransactionRepositoryFacade
}

// NewBudgetService creates a new instance of budgetService.
func NewBudgetService(budgetRepo portsrepo.BudgetRepositoryFacade, txnRepo portsrepo.TransactionRepositoryFacade) portssvc.BudgetSvcFacade {
	return &budgetService{
		budgetRepo: budgetRepo,
		txnRepo:    txnRepo,
	}
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

func (s *budgetService) GetBudgetByID(ctx context.Context, companyID string, budgetID string) (*domain.Budget, error) {
	return s.budgetRepo.FindBudgetByID(ctx, companyID, budgetID)
}

func (s *budgetService) ListBudgets(ctx context.Context, companyID string, period *string, limit int, offset int) ([]domain.Budget, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.budgetRepo.ListBudgets(ctx, companyID, period, limit, offset)
}

func (s *budgetService) CreateBudget(ctx context.Context, companyID string, req dto.CreateBudgetRequest, userID string) (*domain.Budget, error) {
	if req.Amount.IsNegative() || req.Amount.IsZero() {
		return nil, fmt.Errorf("%w: budget amount must be positive", apperrors.ErrValidation)
	}
	if !budgetPeriodPattern.MatchString(req.Period) {
		return nil, fmt.Errorf("%w: budget period must be of the form YYYY-MM", apperrors.ErrValidation)
	}

	if _, err := s.txnRepo.FindCategoryByID(ctx, companyID, req.CategoryID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	budget := domain.Budget{
		BudgetID:   uuid.NewString(),
		CompanyID:  companyID,
		CategoryID: req.CategoryID,
		Amount:     req.Amount,
		Period:     req.Period,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		return nil, err
	}
	return &budget, nil
}

func (s *budgetService) UpdateBudget(ctx context.Context, companyID string, budgetID string, req dto.UpdateBudgetRequest, userID string) (*domain.Budget, error) {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, companyID, budgetID)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil {
		if _, err := s.txnRepo.FindCategoryByID(ctx, companyID, *req.CategoryID); err != nil {
			return nil, err
		}
		budget.CategoryID = *req.CategoryID
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() || req.Amount.IsZero() {
			return nil, fmt.Errorf("%w: budget amount must be positive", apperrors.ErrValidation)
		}
		budget.Amount = *req.Amount
	}
	if req.Period != nil {
		if !budgetPeriodPattern.MatchString(*req.Period) {
			return nil, fmt.Errorf("%w: budget period must be of the form YYYY-MM", apperrors.ErrValidation)
		}
		budget.Period = *req.Period
	}
	budget.LastUpdatedAt = time.Now().UTC()
	budget.LastUpdatedBy = userID

	if err := s.budgetRepo.UpdateBudget(ctx, *budget); err != nil {
		return nil, err
	}
	return budget, nil
}

func (s *budgetService) DeleteBudget(ctx context.Context, companyID string, budgetID string, userID string) error {
	return s.budgetRepo.DeleteBudget(ctx, companyID, budgetID)
}
