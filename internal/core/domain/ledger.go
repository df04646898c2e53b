package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerAccountType defines the fundamental accounting type of a
// chart-of-accounts entry.
type LedgerAccountType string

const (
	Asset      LedgerAccountType = "ASSET"
	Liability  LedgerAccountType = "LIABILITY"
	Equity     LedgerAccountType = "EQUITY"
	IncomeAcc  LedgerAccountType = "INCOME"
	ExpenseAcc LedgerAccountType = "EXPENSE"
)

// LedgerAccount is a chart-of-accounts entry referenced by journal lines.
type LedgerAccount struct {
	AccountID string            `json:"accountID"` // Primary Key (UUID)
	CompanyID string            `json:"companyID"`
	Code      string            `json:"code"` // e.g. "1000"
	Name      string            `json:"name"`
	Type      LedgerAccountType `json:"type"`
	AuditFields
}

// JournalLine is a single debit or credit against one ledger account.
// Exactly one of Debit/Credit is expected to be nonzero on a meaningful line.
type JournalLine struct {
	LineID      string          `json:"lineID"` // Primary Key (UUID)
	AccountID   string          `json:"accountID"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description"`
}

// JournalEntry is a balanced double-entry record: the sum of line debits
// must equal the sum of line credits, and the common total must be positive.
type JournalEntry struct {
	EntryID   string        `json:"entryID"` // Primary Key (UUID)
	CompanyID string        `json:"companyID"`
	Date      time.Time     `json:"date"`
	Ref       string        `json:"ref"` // Free-form reference, e.g. "JE-2026-014"
	Lines     []JournalLine `json:"lines"`
	AuditFields
}
