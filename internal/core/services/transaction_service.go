package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
)

// transactionService manages categories and transactions. Writes go through
// repository methods that adjust the owning wallet's balance atomically.
type transactionService struct {
	txnRepo    portsrepo.TransactionRepositoryFacade
	walletRepo portsrepo.WalletRepositoryFacade
}

// NewTransactionService creates a new instance of transactionService.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade, walletRepo portsrepo.WalletRepositoryFacade) portssvc.TransactionSvcFacade {
	return &transactionService{
		txnRepo:    txnRepo,
		walletRepo: walletRepo,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// signedAmount normalizes a user-supplied amount against the transaction
// type: expenses are stored negative, income positive.
func signedAmount(amount decimal.Decimal, txnType domain.TransactionType) decimal.Decimal {
	if txnType == domain.Expense {
		return amount.Abs().Neg()
	}
	return amount.Abs()
}

// --- Categories ---

func (s *transactionService) GetCategoryByID(ctx context.Context, companyID string, categoryID string) (*domain.Category, error) {
	return s.txnRepo.FindCategoryByID(ctx, companyID, categoryID)
}

func (s *transactionService) ListCategories(ctx context.Context, companyID string, limit int, offset int) ([]domain.Category, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.txnRepo.ListCategories(ctx, companyID, limit, offset)
}

func (s *transactionService) CreateCategory(ctx context.Context, companyID string, req dto.CreateCategoryRequest, userID string) (*domain.Category, error) {
	now := time.Now().UTC()
	category := domain.Category{
		CategoryID: uuid.NewString(),
		CompanyID:  companyID,
		Name:       req.Name,
		Color:      req.Color,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.txnRepo.SaveCategory(ctx, category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *transactionService) UpdateCategory(ctx context.Context, companyID string, categoryID string, req dto.UpdateCategoryRequest, userID string) (*domain.Category, error) {
	category, err := s.txnRepo.FindCategoryByID(ctx, companyID, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Color != nil {
		category.Color = *req.Color
	}
	category.LastUpdatedAt = time.Now().UTC()
	category.LastUpdatedBy = userID

	if err := s.txnRepo.UpdateCategory(ctx, *category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *transactionService) DeleteCategory(ctx context.Context, companyID string, categoryID string, userID string) error {
	return s.txnRepo.DeleteCategory(ctx, companyID, categoryID)
}

// --- Transactions ---

func (s *transactionService) GetTransactionByID(ctx context.Context, companyID string, transactionID string) (*domain.Transaction, error) {
	return s.txnRepo.FindTransactionByID(ctx, companyID, transactionID)
}

func (s *transactionService) ListTransactions(ctx context.Context, companyID string, walletID *string, limit int, offset int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if walletID != nil {
		return s.txnRepo.ListTransactionsByWallet(ctx, companyID, *walletID, limit, offset)
	}
	return s.txnRepo.ListTransactions(ctx, companyID, limit, offset)
}

// CreateTransaction persists a new transaction. The amount is normalized to
// the sign its type implies, and the currency is taken from the wallet.
func (s *transactionService) CreateTransaction(ctx context.Context, companyID string, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	if req.Amount.IsZero() {
		return nil, fmt.Errorf("%w: transaction amount must be non-zero", apperrors.ErrValidation)
	}

	wallet, err := s.walletRepo.FindWalletByID(ctx, companyID, req.WalletID)
	if err != nil {
		return nil, err
	}

	if _, err := s.txnRepo.FindCategoryByID(ctx, companyID, req.CategoryID); err != nil {
		return nil, err
	}

	txnType := domain.TransactionType(req.Type)
	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		CompanyID:     companyID,
		Date:          req.Date,
		Description:   req.Description,
		Amount:        signedAmount(req.Amount, txnType),
		CurrencyCode:  wallet.CurrencyCode,
		Type:          txnType,
		CategoryID:    req.CategoryID,
		WalletID:      wallet.WalletID,
		Color:         req.Color,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, err
	}
	return &txn, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, companyID string, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, companyID, transactionID)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		txn.Date = *req.Date
	}
	if req.Description != nil {
		txn.Description = *req.Description
	}
	if req.Type != nil {
		txn.Type = domain.TransactionType(*req.Type)
	}
	if req.Amount != nil {
		if req.Amount.IsZero() {
			return nil, fmt.Errorf("%w: transaction amount must be non-zero", apperrors.ErrValidation)
		}
		txn.Amount = *req.Amount
	}
	// Re-normalize the sign whenever amount or type changed.
	if req.Amount != nil || req.Type != nil {
		txn.Amount = signedAmount(txn.Amount, txn.Type)
	}
	if req.CategoryID != nil {
		if _, err := s.txnRepo.FindCategoryByID(ctx, companyID, *req.CategoryID); err != nil {
			return nil, err
		}
		txn.CategoryID = *req.CategoryID
	}
	if req.WalletID != nil {
		wallet, err := s.walletRepo.FindWalletByID(ctx, companyID, *req.WalletID)
		if err != nil {
			return nil, err
		}
		txn.WalletID = wallet.WalletID
		txn.CurrencyCode = wallet.CurrencyCode
	}
	if req.Color != nil {
		txn.Color = *req.Color
	}
	txn.LastUpdatedAt = time.Now().UTC()
	txn.LastUpdatedBy = userID

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		return nil, err
	}
	return txn, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, companyID string, transactionID string, userID string) error {
	return s.txnRepo.DeleteTransaction(ctx, companyID, transactionID)
}
