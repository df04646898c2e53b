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

// goalService manages financial goals. Contributions move money out of a
// wallet into the goal through a single repository transaction.
type goalService struct {
	goalRepo   portsrepo.GoalRepositoryFacade
	walletRepo portsrepo.WalletRepositoryFacade
	txnRepo    portsrepo.TransactionRepositoryFacade
	publisher  events.Publisher
}

// NewGoalService creates a new instance of goalService.
func NewGoalService(
	goalRepo portsrepo.GoalRepositoryFacade,
	walletRepo portsrepo.WalletRepositoryFacade,
	txnRepo portsrepo.TransactionRepositoryFacade,
	publisher events.Publisher,
) portssvc.GoalSvcFacade {
	return &goalService{
		goalRepo:   goalRepo,
		walletRepo: walletRepo,
		txnRepo:    txnRepo,
		publisher:  publisher,
	}
}

var _ portssvc.GoalSvcFacade = (*goalService)(nil)

func (s *goalService) GetGoalByID(ctx context.Context, companyID string, goalID string) (*domain.FinancialGoal, error) {
	return s.goalRepo.FindGoalByID(ctx, companyID, goalID)
}

func (s *goalService) ListGoals(ctx context.Context, companyID string, limit int, offset int) ([]domain.FinancialGoal, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.goalRepo.ListGoals(ctx, companyID, limit, offset)
}

func (s *goalService) CreateGoal(ctx context.Context, companyID string, req dto.CreateGoalRequest, userID string) (*domain.FinancialGoal, error) {
	if req.TargetAmount.IsNegative() || req.TargetAmount.IsZero() {
		return nil, fmt.Errorf("%w: goal target amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	goal := domain.FinancialGoal{
		GoalID:       uuid.NewString(),
		CompanyID:    companyID,
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
		Deadline:     req.Deadline,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.goalRepo.SaveGoal(ctx, goal); err != nil {
		return nil, err
	}
	return &goal, nil
}

func (s *goalService) UpdateGoal(ctx context.Context, companyID string, goalID string, req dto.UpdateGoalRequest, userID string) (*domain.FinancialGoal, error) {
	goal, err := s.goalRepo.FindGoalByID(ctx, companyID, goalID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		goal.Name = *req.Name
	}
	if req.TargetAmount != nil {
		if req.TargetAmount.IsNegative() || req.TargetAmount.IsZero() {
			return nil, fmt.Errorf("%w: goal target amount must be positive", apperrors.ErrValidation)
		}
		goal.TargetAmount = *req.TargetAmount
	}
	if req.Deadline != nil {
		goal.Deadline = req.Deadline
	}
	goal.LastUpdatedAt = time.Now().UTC()
	goal.LastUpdatedBy = userID

	if err := s.goalRepo.UpdateGoal(ctx, *goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *goalService) DeleteGoal(ctx context.Context, companyID string, goalID string, userID string) error {
	return s.goalRepo.DeleteGoal(ctx, companyID, goalID)
}

// Contribute funds a goal from a wallet. The goal increment, the funding
// transaction and the wallet debit commit together or not at all. The
// funding transaction is an internal transfer, recorded as an expense
// against the source wallet.
func (s *goalService) Contribute(ctx context.Context, companyID string, goalID string, req dto.ContributeRequest, userID string) (*domain.FinancialGoal, *domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.IsNegative() || req.Amount.IsZero() {
		return nil, nil, fmt.Errorf("%w: contribution amount must be positive", apperrors.ErrValidation)
	}

	goal, err := s.goalRepo.FindGoalByID(ctx, companyID, goalID)
	if err != nil {
		return nil, nil, err
	}

	wallet, err := s.walletRepo.FindWalletByID(ctx, companyID, req.WalletID)
	if err != nil {
		return nil, nil, err
	}

	categoryID, err := s.internalTransferCategoryID(ctx, companyID, userID)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		CompanyID:     companyID,
		Date:          now,
		Description:   fmt.Sprintf("Contribution to goal: %s", goal.Name),
		Amount:        req.Amount.Abs().Neg(),
		CurrencyCode:  wallet.CurrencyCode,
		Type:          domain.Expense,
		CategoryID:    categoryID,
		WalletID:      wallet.WalletID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	updated, err := s.goalRepo.ContributeToGoal(ctx, companyID, goalID, txn)
	if err != nil {
		return nil, nil, err
	}

	if pubErr := s.publisher.Publish(ctx, events.GoalFunded, updated); pubErr != nil {
		logger.WarnContext(ctx, "failed to publish goal funded event", slog.String("goal_id", goalID), slog.String("error", pubErr.Error()))
	}

	return updated, &txn, nil
}

// internalTransferCategoryID finds the company's reserved internal transfer
// category, creating it on first use.
func (s *goalService) internalTransferCategoryID(ctx context.Context, companyID string, userID string) (string, error) {
	categories, err := s.txnRepo.ListCategories(ctx, companyID, defaultListLimit, 0)
	if err != nil {
		return "", err
	}
	for _, c := range categories {
		if c.Name == domain.InternalTransferCategory {
			return c.CategoryID, nil
		}
	}

	now := time.Now().UTC()
	category := domain.Category{
		CategoryID: uuid.NewString(),
		CompanyID:  companyID,
		Name:       domain.InternalTransferCategory,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.txnRepo.SaveCategory(ctx, category); err != nil {
		return "", err
	}
	return category.CategoryID, nil
}
