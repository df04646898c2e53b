package repositories

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
)

// LedgerAccountReader defines read operations for ledger account data
type LedgerAccountReader interface {
	// FindAccountByID retrieves a ledger account within a company by its unique identifier.
	FindAccountByID(ctx context.Context, companyID string, accountID string) (*domain.LedgerAccount, error)

	// FindAccountsByIDs retrieves multiple ledger accounts of a company by their IDs.
	FindAccountsByIDs(ctx context.Context, companyID string, accountIDs []string) (map[string]domain.LedgerAccount, error)

	// ListAccounts retrieves the ledger accounts of a company ordered by code.
	ListAccounts(ctx context.Context, companyID string, limit int, offset int) ([]domain.LedgerAccount, error)
}

// LedgerAccountWriter defines write operations for ledger account data
type LedgerAccountWriter interface {
	// SaveAccount persists a new ledger account.
	SaveAccount(ctx context.Context, account domain.LedgerAccount) error

	// UpdateAccount updates an existing ledger account's details.
	UpdateAccount(ctx context.Context, account domain.LedgerAccount) error

	// DeleteAccount removes a ledger account from a company.
	DeleteAccount(ctx context.Context, companyID string, accountID string) error
}

// JournalEntryReader defines read operations for journal entry data
type JournalEntryReader interface {
	// FindJournalEntryByID retrieves a journal entry and its lines within a
	// company by its unique identifier.
	FindJournalEntryByID(ctx context.Context, companyID string, entryID string) (*domain.JournalEntry, error)

	// ListJournalEntries retrieves the journal entries of a company ordered
	// by date descending.
	ListJournalEntries(ctx context.Context, companyID string, limit int, offset int) ([]domain.JournalEntry, error)
}

// JournalEntryWriter defines write operations for journal entry data
type JournalEntryWriter interface {
	// SaveJournalEntry persists a journal entry and its lines within a
	// single database transaction.
	SaveJournalEntry(ctx context.Context, entry domain.JournalEntry) error

	// UpdateJournalEntry updates the entry header and replaces its full line
	// set within a single database transaction.
	UpdateJournalEntry(ctx context.Context, entry domain.JournalEntry) error

	// DeleteJournalEntry removes a journal entry and its lines.
	DeleteJournalEntry(ctx context.Context, companyID string, entryID string) error
}

// LedgerRepositoryFacade combines account and journal repository interfaces
type LedgerRepositoryFacade interface {
	LedgerAccountReader
	LedgerAccountWriter
	JournalEntryReader
	JournalEntryWriter
}
