package dto

import (
	"time"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLedgerAccountRequest defines the payload for creating a ledger account.
type CreateLedgerAccountRequest struct {
	Code string `json:"code" binding:"required"`
	Name string `json:"name" binding:"required"`
	Type string `json:"type" binding:"required,oneof=ASSET LIABILITY EQUITY INCOME EXPENSE"`
}

// UpdateLedgerAccountRequest defines the payload for updating a ledger account.
type UpdateLedgerAccountRequest struct {
	Code *string `json:"code"`
	Name *string `json:"name"`
	Type *string `json:"type" binding:"omitempty,oneof=ASSET LIABILITY EQUITY INCOME EXPENSE"`
}

// LedgerAccountResponse defines the account data returned by the API.
type LedgerAccountResponse struct {
	AccountID string `json:"accountID"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	Type      string `json:"type"`
}

// ListLedgerAccountsResponse wraps a list of ledger accounts.
type ListLedgerAccountsResponse struct {
	Accounts []LedgerAccountResponse `json:"accounts"`
}

// JournalLineRequest is one line of a journal entry. Exactly one of Debit and
// Credit should be non-zero.
type JournalLineRequest struct {
	AccountID   string          `json:"accountID" binding:"required"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description"`
}

// CreateJournalEntryRequest defines the payload for posting a journal entry.
// The lines must balance: total debits equal total credits.
type CreateJournalEntryRequest struct {
	Date  time.Time            `json:"date" binding:"required"`
	Ref   string               `json:"ref"`
	Lines []JournalLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// UpdateJournalEntryRequest defines the payload for amending a journal entry.
// When Lines is present it replaces the full line set and must balance.
type UpdateJournalEntryRequest struct {
	Date  *time.Time           `json:"date"`
	Ref   *string              `json:"ref"`
	Lines []JournalLineRequest `json:"lines" binding:"omitempty,min=2,dive"`
}

// JournalLineResponse is one posted journal line.
type JournalLineResponse struct {
	LineID      string          `json:"lineID"`
	AccountID   string          `json:"accountID"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description"`
}

// JournalEntryResponse defines the journal entry data returned by the API.
type JournalEntryResponse struct {
	EntryID string                `json:"entryID"`
	Date    time.Time             `json:"date"`
	Ref     string                `json:"ref"`
	Lines   []JournalLineResponse `json:"lines"`
}

// ListJournalEntriesResponse wraps a list of journal entries.
type ListJournalEntriesResponse struct {
	Entries []JournalEntryResponse `json:"entries"`
}

// ToLedgerAccountResponse converts a domain.LedgerAccount to its DTO.
func ToLedgerAccountResponse(a *domain.LedgerAccount) LedgerAccountResponse {
	return LedgerAccountResponse{
		AccountID: a.AccountID,
		Code:      a.Code,
		Name:      a.Name,
		Type:      string(a.Type),
	}
}

// ToJournalEntryResponse converts a domain.JournalEntry to its DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	lines := make([]JournalLineResponse, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = JournalLineResponse{
			LineID:      l.LineID,
			AccountID:   l.AccountID,
			Debit:       l.Debit,
			Credit:      l.Credit,
			Description: l.Description,
		}
	}
	return JournalEntryResponse{
		EntryID: e.EntryID,
		Date:    e.Date,
		Ref:     e.Ref,
		Lines:   lines,
	}
}
