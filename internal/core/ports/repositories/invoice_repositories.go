package repositories

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
)

// InvoiceReader defines read operations for invoice data
type InvoiceReader interface {
	// FindInvoiceByID retrieves an invoice and its lines within a company by
	// its unique identifier.
	FindInvoiceByID(ctx context.Context, companyID string, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves the invoices of a company ordered by issue date
	// descending, optionally filtered by status.
	ListInvoices(ctx context.Context, companyID string, status *domain.InvoiceStatus, limit int, offset int) ([]domain.Invoice, error)
}

// InvoiceWriter defines write operations for invoice data
type InvoiceWriter interface {
	// SaveInvoice persists a new invoice and its lines, assigning the next
	// invoice number ("INV-001" style) from the company's sequence. It
	// returns the stored invoice.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error)

	// UpdateInvoice updates an invoice's details, replacing its lines when
	// new ones are given.
	UpdateInvoice(ctx context.Context, invoice domain.Invoice, replaceLines bool) error

	// DeleteInvoice removes an invoice and its lines.
	DeleteInvoice(ctx context.Context, companyID string, invoiceID string) error
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
