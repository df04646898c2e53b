package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
)

// invoiceService manages sales invoices.
type invoiceService struct {
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	contactRepo portsrepo.ContactRepositoryFacade
}

// NewInvoiceService creates a new instance of invoiceService.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepositoryFacade, contactRepo portsrepo.ContactRepositoryFacade) portssvc.InvoiceSvcFacade {
	return &invoiceService{
		invoiceRepo: invoiceRepo,
		contactRepo: contactRepo,
	}
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

func (s *invoiceService) GetInvoiceByID(ctx context.Context, companyID string, invoiceID string) (*domain.Invoice, error) {
	return s.invoiceRepo.FindInvoiceByID(ctx, companyID, invoiceID)
}

func (s *invoiceService) ListInvoices(ctx context.Context, companyID string, status *domain.InvoiceStatus, limit int, offset int) ([]domain.Invoice, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.invoiceRepo.ListInvoices(ctx, companyID, status, limit, offset)
}

// CreateInvoice persists a new invoice. The customer must be a contact of
// the company, the due date must not precede the issue date, and the total
// is computed from the lines.
func (s *invoiceService) CreateInvoice(ctx context.Context, companyID string, req dto.CreateInvoiceRequest, userID string) (*domain.Invoice, error) {
	if req.DueDate.Before(req.IssueDate) {
		return nil, fmt.Errorf("%w: due date must not precede issue date", apperrors.ErrValidation)
	}

	if _, err := s.contactRepo.FindContactByID(ctx, companyID, req.CustomerID); err != nil {
		return nil, err
	}

	status := domain.InvoiceDraft
	if req.Status != "" {
		status = domain.InvoiceStatus(req.Status)
	}

	now := time.Now().UTC()
	lines := make([]domain.InvoiceLine, len(req.Lines))
	for i, l := range req.Lines {
		lines[i] = domain.InvoiceLine{
			LineID:      uuid.NewString(),
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
		}
	}

	invoice := domain.Invoice{
		InvoiceID:  uuid.NewString(),
		CompanyID:  companyID,
		CustomerID: req.CustomerID,
		IssueDate:  req.IssueDate,
		DueDate:    req.DueDate,
		Status:     status,
		Lines:      lines,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	invoice.Total = invoice.ComputeTotal()

	return s.invoiceRepo.SaveInvoice(ctx, invoice)
}

func (s *invoiceService) UpdateInvoice(ctx context.Context, companyID string, invoiceID string, req dto.UpdateInvoiceRequest, userID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, companyID, invoiceID)
	if err != nil {
		return nil, err
	}

	if req.CustomerID != nil {
		if _, err := s.contactRepo.FindContactByID(ctx, companyID, *req.CustomerID); err != nil {
			return nil, err
		}
		invoice.CustomerID = *req.CustomerID
	}
	if req.IssueDate != nil {
		invoice.IssueDate = *req.IssueDate
	}
	if req.DueDate != nil {
		invoice.DueDate = *req.DueDate
	}
	if invoice.DueDate.Before(invoice.IssueDate) {
		return nil, fmt.Errorf("%w: due date must not precede issue date", apperrors.ErrValidation)
	}
	if req.Status != nil {
		invoice.Status = domain.InvoiceStatus(*req.Status)
	}

	replaceLines := len(req.Lines) > 0
	if replaceLines {
		lines := make([]domain.InvoiceLine, len(req.Lines))
		for i, l := range req.Lines {
			lines[i] = domain.InvoiceLine{
				LineID:      uuid.NewString(),
				Description: l.Description,
				Quantity:    l.Quantity,
				UnitPrice:   l.UnitPrice,
			}
		}
		invoice.Lines = lines
		invoice.Total = invoice.ComputeTotal()
	}
	invoice.LastUpdatedAt = time.Now().UTC()
	invoice.LastUpdatedBy = userID

	if err := s.invoiceRepo.UpdateInvoice(ctx, *invoice, replaceLines); err != nil {
		return nil, err
	}
	return invoice, nil
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, companyID string, invoiceID string, userID string) error {
	return s.invoiceRepo.DeleteInvoice(ctx, companyID, invoiceID)
}
