package services

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/finbooks/finbooks_backend/internal/dto"
)

// InvoiceSvcFacade defines operations for invoice data
type InvoiceSvcFacade interface {
	// GetInvoiceByID retrieves a specific invoice by its unique identifier.
	GetInvoiceByID(ctx context.Context, companyID string, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves the invoices of a company, optionally filtered by status.
	ListInvoices(ctx context.Context, companyID string, status *domain.InvoiceStatus, limit int, offset int) ([]domain.Invoice, error)

	// CreateInvoice persists a new invoice with a generated invoice number
	// and a total computed from its lines.
	CreateInvoice(ctx context.Context, companyID string, req dto.CreateInvoiceRequest, userID string) (*domain.Invoice, error)

	// UpdateInvoice updates an existing invoice, recomputing its total when
	// the lines change.
	UpdateInvoice(ctx context.Context, companyID string, invoiceID string, req dto.UpdateInvoiceRequest, userID string) (*domain.Invoice, error)

	// DeleteInvoice removes an invoice from a company.
	DeleteInvoice(ctx context.Context, companyID string, invoiceID string, userID string) error
}
