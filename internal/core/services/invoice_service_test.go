package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/core/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
)

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

var _ portsrepo.InvoiceRepositoryFacade = (*MockInvoiceRepository)(nil)

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, companyID string, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, companyID, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoices(ctx context.Context, companyID string, status *domain.InvoiceStatus, limit int, offset int) ([]domain.Invoice, error) {
	args := m.Called(ctx, companyID, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error) {
	args := m.Called(ctx, invoice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice, replaceLines bool) error {
	args := m.Called(ctx, invoice, replaceLines)
	return args.Error(0)
}

func (m *MockInvoiceRepository) DeleteInvoice(ctx context.Context, companyID string, invoiceID string) error {
	args := m.Called(ctx, companyID, invoiceID)
	return args.Error(0)
}

// --- Test Suite Setup ---
type InvoiceServiceTestSuite struct {
	suite.Suite
	mockInvoiceRepo *MockInvoiceRepository
	mockContactRepo *MockContactRepository
	service         portssvc.InvoiceSvcFacade
	companyID       string
	userID          string
	customer        domain.Contact
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockContactRepo = new(MockContactRepository)
	suite.service = services.NewInvoiceService(suite.mockInvoiceRepo, suite.mockContactRepo)

	suite.companyID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.customer = domain.Contact{
		ContactID: uuid.NewString(),
		CompanyID: suite.companyID,
		Name:      "Globex Corp",
		Type:      domain.ContactCustomer,
	}
}

// --- Test Cases ---

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_TotalComputedFromLines() {
	ctx := context.Background()
	issue := time.Now().UTC()
	req := dto.CreateInvoiceRequest{
		CustomerID: suite.customer.ContactID,
		IssueDate:  issue,
		DueDate:    issue.AddDate(0, 0, 30),
		Lines: []dto.InvoiceLineRequest{
			{Description: "Consulting", Quantity: decimal.NewFromInt(8), UnitPrice: decimal.NewFromInt(150)},
			{Description: "Travel", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(200)},
		},
	}

	suite.mockContactRepo.On("FindContactByID", ctx, suite.companyID, suite.customer.ContactID).Return(&suite.customer, nil).Once()
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.Total.Equal(decimal.NewFromInt(1400)) && inv.Status == domain.InvoiceDraft && len(inv.Lines) == 2
	})).Return(&domain.Invoice{
		InvoiceID:     uuid.NewString(),
		InvoiceNumber: "INV-001",
		Status:        domain.InvoiceDraft,
		Total:         decimal.NewFromInt(1400),
	}, nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, suite.companyID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("INV-001", invoice.InvoiceNumber)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_DueDateBeforeIssueDate() {
	ctx := context.Background()
	issue := time.Now().UTC()
	req := dto.CreateInvoiceRequest{
		CustomerID: suite.customer.ContactID,
		IssueDate:  issue,
		DueDate:    issue.AddDate(0, 0, -1),
		Lines: []dto.InvoiceLineRequest{
			{Description: "Consulting", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(100)},
		},
	}

	_, err := suite.service.CreateInvoice(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_UnknownCustomer() {
	ctx := context.Background()
	issue := time.Now().UTC()
	req := dto.CreateInvoiceRequest{
		CustomerID: uuid.NewString(),
		IssueDate:  issue,
		DueDate:    issue.AddDate(0, 0, 14),
		Lines: []dto.InvoiceLineRequest{
			{Description: "Consulting", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(100)},
		},
	}

	suite.mockContactRepo.On("FindContactByID", ctx, suite.companyID, req.CustomerID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateInvoice(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_DatesCheckedAfterMerge() {
	ctx := context.Background()
	issue := time.Now().UTC()
	existing := &domain.Invoice{
		InvoiceID:  uuid.NewString(),
		CompanyID:  suite.companyID,
		CustomerID: suite.customer.ContactID,
		IssueDate:  issue,
		DueDate:    issue.AddDate(0, 0, 30),
		Status:     domain.InvoiceDraft,
	}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, suite.companyID, existing.InvoiceID).Return(existing, nil).Once()

	// Moving the issue date past the existing due date must fail.
	badIssue := issue.AddDate(0, 2, 0)
	_, err := suite.service.UpdateInvoice(ctx, suite.companyID, existing.InvoiceID, dto.UpdateInvoiceRequest{IssueDate: &badIssue}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "UpdateInvoice", mock.Anything, mock.Anything, mock.Anything)
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
