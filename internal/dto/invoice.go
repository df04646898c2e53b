package dto

import (
	"time"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvoiceLineRequest is one line of an invoice create/update.
type InvoiceLineRequest struct {
	Description string          `json:"description" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unitPrice" binding:"required"`
}

// CreateInvoiceRequest defines the payload for creating an invoice. The
// invoice number ("INV-NNN") is generated server-side and the total is
// computed from the lines.
type CreateInvoiceRequest struct {
	CustomerID string               `json:"customerID" binding:"required"`
	IssueDate  time.Time            `json:"issueDate" binding:"required"`
	DueDate    time.Time            `json:"dueDate" binding:"required"`
	Status     string               `json:"status" binding:"omitempty,oneof=DRAFT SENT PAID OVERDUE"`
	Lines      []InvoiceLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// UpdateInvoiceRequest defines the payload for updating an invoice.
type UpdateInvoiceRequest struct {
	CustomerID *string              `json:"customerID"`
	IssueDate  *time.Time           `json:"issueDate"`
	DueDate    *time.Time           `json:"dueDate"`
	Status     *string              `json:"status" binding:"omitempty,oneof=DRAFT SENT PAID OVERDUE"`
	Lines      []InvoiceLineRequest `json:"lines" binding:"omitempty,min=1,dive"`
}

// InvoiceLineResponse is one billed line item.
type InvoiceLineResponse struct {
	LineID      string          `json:"lineID"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// InvoiceResponse defines the invoice data returned by the API.
type InvoiceResponse struct {
	InvoiceID     string                `json:"invoiceID"`
	InvoiceNumber string                `json:"invoiceNumber"`
	CustomerID    string                `json:"customerID"`
	IssueDate     time.Time             `json:"issueDate"`
	DueDate       time.Time             `json:"dueDate"`
	Status        string                `json:"status"`
	Total         decimal.Decimal       `json:"total"`
	Lines         []InvoiceLineResponse `json:"lines"`
}

// ListInvoicesResponse wraps a list of invoices.
type ListInvoicesResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
}

// ToInvoiceResponse converts a domain.Invoice to an InvoiceResponse DTO.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	lines := make([]InvoiceLineResponse, len(inv.Lines))
	for i, l := range inv.Lines {
		lines[i] = InvoiceLineResponse{
			LineID:      l.LineID,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
		}
	}
	return InvoiceResponse{
		InvoiceID:     inv.InvoiceID,
		InvoiceNumber: inv.InvoiceNumber,
		CustomerID:    inv.CustomerID,
		IssueDate:     inv.IssueDate,
		DueDate:       inv.DueDate,
		Status:        string(inv.Status),
		Total:         inv.Total,
		Lines:         lines,
	}
}
