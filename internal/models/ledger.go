package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditFields mirror the audit columns shared by every table.
type AuditFields struct {
	CreatedAt     time.Time
	CreatedBy     string
	LastUpdatedAt time.Time
	LastUpdatedBy string
}

// LedgerAccountType mirrors the account_type column.
type LedgerAccountType string

// LedgerAccount is the database representation of a chart-of-accounts entry.
type LedgerAccount struct {
	AccountID string
	CompanyID string
	Code      string
	Name      string
	Type      LedgerAccountType
	AuditFields
}

// JournalLine is the database representation of one journal entry line.
type JournalLine struct {
	LineID      string
	EntryID     string
	AccountID   string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Description string
	AuditFields
}

// JournalEntry is the database representation of a journal entry header.
type JournalEntry struct {
	EntryID   string
	CompanyID string
	Date      time.Time
	Ref       string
	AuditFields
}
