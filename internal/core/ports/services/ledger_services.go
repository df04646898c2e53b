package services

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/finbooks/finbooks_backend/internal/dto"
)

// LedgerAccountSvc defines operations for ledger account data
type LedgerAccountSvc interface {
	// GetAccountByID retrieves a specific ledger account by its unique identifier.
	GetAccountByID(ctx context.Context, companyID string, accountID string) (*domain.LedgerAccount, error)

	// ListAccounts retrieves the ledger accounts of a company.
	ListAccounts(ctx context.Context, companyID string, limit int, offset int) ([]domain.LedgerAccount, error)

	// CreateAccount persists a new ledger account.
	CreateAccount(ctx context.Context, companyID string, req dto.CreateLedgerAccountRequest, userID string) (*domain.LedgerAccount, error)

	// UpdateAccount updates an existing ledger account's details.
	UpdateAccount(ctx context.Context, companyID string, accountID string, req dto.UpdateLedgerAccountRequest, userID string) (*domain.LedgerAccount, error)

	// DeleteAccount removes a ledger account from a company.
	DeleteAccount(ctx context.Context, companyID string, accountID string, userID string) error
}

// JournalEntrySvc defines operations for journal entry data
type JournalEntrySvc interface {
	// GetJournalEntryByID retrieves a specific journal entry by its unique identifier.
	GetJournalEntryByID(ctx context.Context, companyID string, entryID string) (*domain.JournalEntry, error)

	// ListJournalEntries retrieves the journal entries of a company.
	ListJournalEntries(ctx context.Context, companyID string, limit int, offset int) ([]domain.JournalEntry, error)

	// CreateJournalEntry validates and posts a balanced journal entry. Total
	// debits must equal total credits, the total must be positive, every
	// account must exist in the company, and no line may carry both a debit
	// and a credit.
	CreateJournalEntry(ctx context.Context, companyID string, req dto.CreateJournalEntryRequest, userID string) (*domain.JournalEntry, error)

	// UpdateJournalEntry amends a journal entry. A new line set replaces the
	// old one and is revalidated against the same balance rules as creation.
	UpdateJournalEntry(ctx context.Context, companyID string, entryID string, req dto.UpdateJournalEntryRequest, userID string) (*domain.JournalEntry, error)

	// DeleteJournalEntry removes a journal entry from a company.
	DeleteJournalEntry(ctx context.Context, companyID string, entryID string, userID string) error
}

// LedgerSvcFacade combines account and journal service interfaces
type LedgerSvcFacade interface {
	LedgerAccountSvc
	JournalEntrySvc
}
