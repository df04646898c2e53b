package repositories

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
)

// CategoryReader defines read operations for category data
type CategoryReader interface {
	// FindCategoryByID retrieves a category within a company by its unique identifier.
	FindCategoryByID(ctx context.Context, companyID string, categoryID string) (*domain.Category, error)

	// ListCategories retrieves the categories of a company ordered by name.
	ListCategories(ctx context.Context, companyID string, limit int, offset int) ([]domain.Category, error)
}

// CategoryWriter defines write operations for category data
type CategoryWriter interface {
	// SaveCategory persists a new category.
	SaveCategory(ctx context.Context, category domain.Category) error

	// UpdateCategory updates an existing category's details.
	UpdateCategory(ctx context.Context, category domain.Category) error

	// DeleteCategory removes a category from a company.
	DeleteCategory(ctx context.Context, companyID string, categoryID string) error
}

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction within a company by its unique identifier.
	FindTransactionByID(ctx context.Context, companyID string, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves the transactions of a company ordered by date descending.
	ListTransactions(ctx context.Context, companyID string, limit int, offset int) ([]domain.Transaction, error)

	// ListTransactionsByWallet retrieves the transactions of a single wallet ordered by date descending.
	ListTransactionsByWallet(ctx context.Context, companyID string, walletID string, limit int, offset int) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data.
// Saves, updates and deletes adjust the owning wallet's balance within the
// same database transaction.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction and applies its signed amount
	// to the wallet balance.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction updates an existing transaction, reversing the old
	// amount and applying the new one to the affected wallet balances.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction and reverses its amount on the
	// wallet balance.
	DeleteTransaction(ctx context.Context, companyID string, transactionID string) error
}

// TransactionRepositoryFacade combines category and transaction repository interfaces
type TransactionRepositoryFacade interface {
	CategoryReader
	CategoryWriter
	TransactionReader
	TransactionWriter
}
