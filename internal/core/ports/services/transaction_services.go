package services

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/finbooks/finbooks_backend/internal/dto"
)

// CategorySvc defines operations for category data
type CategorySvc interface {
	// GetCategoryByID retrieves a specific category by its unique identifier.
	GetCategoryByID(ctx context.Context, companyID string, categoryID string) (*domain.Category, error)

	// ListCategories retrieves the categories of a company.
	ListCategories(ctx context.Context, companyID string, limit int, offset int) ([]domain.Category, error)

	// CreateCategory persists a new category.
	CreateCategory(ctx context.Context, companyID string, req dto.CreateCategoryRequest, userID string) (*domain.Category, error)

	// UpdateCategory updates an existing category's details.
	UpdateCategory(ctx context.Context, companyID string, categoryID string, req dto.UpdateCategoryRequest, userID string) (*domain.Category, error)

	// DeleteCategory removes a category from a company.
	DeleteCategory(ctx context.Context, companyID string, categoryID string, userID string) error
}

// TransactionReaderSvc defines read operations for transaction data
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a specific transaction by its unique identifier.
	GetTransactionByID(ctx context.Context, companyID string, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves the transactions of a company, optionally
	// scoped to a single wallet.
	ListTransactions(ctx context.Context, companyID string, walletID *string, limit int, offset int) ([]domain.Transaction, error)
}

// TransactionWriterSvc defines write operations for transaction data
type TransactionWriterSvc interface {
	// CreateTransaction persists a new transaction and applies it to the
	// wallet balance.
	CreateTransaction(ctx context.Context, companyID string, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error)

	// UpdateTransaction updates an existing transaction, re-applying its
	// effect on the wallet balance.
	UpdateTransaction(ctx context.Context, companyID string, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction and reverses its effect on the
	// wallet balance.
	DeleteTransaction(ctx context.Context, companyID string, transactionID string, userID string) error
}

// TransactionSvcFacade combines category and transaction service interfaces
type TransactionSvcFacade interface {
	CategorySvc
	TransactionReaderSvc
	TransactionWriterSvc
}
