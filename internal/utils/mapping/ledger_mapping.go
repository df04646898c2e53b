package mapping

import (
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/finbooks/finbooks_backend/internal/models"
)

// ToModelLedgerAccount converts a domain LedgerAccount to a model LedgerAccount
func ToModelLedgerAccount(d domain.LedgerAccount) models.LedgerAccount {
	return models.LedgerAccount{
		AccountID:   d.AccountID,
		CompanyID:   d.CompanyID,
		Code:        d.Code,
		Name:        d.Name,
		Type:        models.LedgerAccountType(d.Type),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLedgerAccount converts a model LedgerAccount to a domain LedgerAccount
func ToDomainLedgerAccount(m models.LedgerAccount) domain.LedgerAccount {
	return domain.LedgerAccount{
		AccountID:   m.AccountID,
		CompanyID:   m.CompanyID,
		Code:        m.Code,
		Name:        m.Name,
		Type:        domain.LedgerAccountType(m.Type),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournalEntry converts a domain JournalEntry header to its model form.
// Lines are mapped separately since they live in their own table.
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:     d.EntryID,
		CompanyID:   d.CompanyID,
		Date:        d.Date,
		Ref:         d.Ref,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a model JournalEntry header and its lines to
// a domain JournalEntry.
func ToDomainJournalEntry(m models.JournalEntry, lines []models.JournalLine) domain.JournalEntry {
	domainLines := make([]domain.JournalLine, len(lines))
	for i, l := range lines {
		domainLines[i] = domain.JournalLine{
			LineID:      l.LineID,
			AccountID:   l.AccountID,
			Debit:       l.Debit,
			Credit:      l.Credit,
			Description: l.Description,
		}
	}
	return domain.JournalEntry{
		EntryID:     m.EntryID,
		CompanyID:   m.CompanyID,
		Date:        m.Date,
		Ref:         m.Ref,
		Lines:       domainLines,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournalLines converts a domain entry's lines to their model form,
// stamping the owning entry id.
func ToModelJournalLines(d domain.JournalEntry) []models.JournalLine {
	lines := make([]models.JournalLine, len(d.Lines))
	for i, l := range d.Lines {
		lines[i] = models.JournalLine{
			LineID:      l.LineID,
			EntryID:     d.EntryID,
			AccountID:   l.AccountID,
			Debit:       l.Debit,
			Credit:      l.Credit,
			Description: l.Description,
			AuditFields: ToModelAuditFields(d.AuditFields),
		}
	}
	return lines
}
