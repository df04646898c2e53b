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
	"github.com/finbooks/finbooks_backend/internal/events"
)

// --- Mock InventoryRepository ---
type MockInventoryRepository struct {
	mock.Mock
}

var _ portsrepo.InventoryRepositoryFacade = (*MockInventoryRepository)(nil)

func (m *MockInventoryRepository) FindProductByID(ctx context.Context, companyID string, productID string) (*domain.Product, error) {
	args := m.Called(ctx, companyID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockInventoryRepository) ListProducts(ctx context.Context, companyID string, limit int, offset int) ([]domain.Product, error) {
	args := m.Called(ctx, companyID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockInventoryRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockInventoryRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockInventoryRepository) DeleteProduct(ctx context.Context, companyID string, productID string) error {
	args := m.Called(ctx, companyID, productID)
	return args.Error(0)
}

func (m *MockInventoryRepository) FindPurchaseOrderByID(ctx context.Context, companyID string, poID string) (*domain.PurchaseOrder, error) {
	args := m.Called(ctx, companyID, poID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseOrder), args.Error(1)
}

func (m *MockInventoryRepository) ListPurchaseOrders(ctx context.Context, companyID string, status *domain.PurchaseOrderStatus, limit int, offset int) ([]domain.PurchaseOrder, error) {
	args := m.Called(ctx, companyID, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PurchaseOrder), args.Error(1)
}

func (m *MockInventoryRepository) SavePurchaseOrder(ctx context.Context, po domain.PurchaseOrder) (*domain.PurchaseOrder, error) {
	args := m.Called(ctx, po)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseOrder), args.Error(1)
}

func (m *MockInventoryRepository) UpdatePurchaseOrder(ctx context.Context, po domain.PurchaseOrder, replaceLines bool) error {
	args := m.Called(ctx, po, replaceLines)
	return args.Error(0)
}

func (m *MockInventoryRepository) DeletePurchaseOrder(ctx context.Context, companyID string, poID string) error {
	args := m.Called(ctx, companyID, poID)
	return args.Error(0)
}

func (m *MockInventoryRepository) ReceivePurchaseOrder(ctx context.Context, companyID string, poID string, updatedBy string) (*domain.PurchaseOrder, []domain.Product, []string, error) {
	args := m.Called(ctx, companyID, poID, updatedBy)
	if args.Get(0) == nil {
		return nil, nil, nil, args.Error(3)
	}
	var products []domain.Product
	if args.Get(1) != nil {
		products = args.Get(1).([]domain.Product)
	}
	var missing []string
	if args.Get(2) != nil {
		missing = args.Get(2).([]string)
	}
	return args.Get(0).(*domain.PurchaseOrder), products, missing, args.Error(3)
}

// --- Mock ContactRepository ---
type MockContactRepository struct {
	mock.Mock
}

var _ portsrepo.ContactRepositoryFacade = (*MockContactRepository)(nil)

func (m *MockContactRepository) FindContactByID(ctx context.Context, companyID string, contactID string) (*domain.Contact, error) {
	args := m.Called(ctx, companyID, contactID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contact), args.Error(1)
}

func (m *MockContactRepository) ListContacts(ctx context.Context, companyID string, contactType *domain.ContactType, limit int, offset int) ([]domain.Contact, error) {
	args := m.Called(ctx, companyID, contactType, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contact), args.Error(1)
}

func (m *MockContactRepository) SaveContact(ctx context.Context, contact domain.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) UpdateContact(ctx context.Context, contact domain.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) DeleteContact(ctx context.Context, companyID string, contactID string) error {
	args := m.Called(ctx, companyID, contactID)
	return args.Error(0)
}

// --- Test Suite Setup ---
type InventoryServiceTestSuite struct {
	suite.Suite
	mockInventoryRepo *MockInventoryRepository
	mockContactRepo   *MockContactRepository
	mockPublisher     *MockPublisher
	service           portssvc.InventorySvcFacade
	companyID         string
	userID            string
	supplier          domain.Contact
	product           domain.Product
}

func (suite *InventoryServiceTestSuite) SetupTest() {
	suite.mockInventoryRepo = new(MockInventoryRepository)
	suite.mockContactRepo = new(MockContactRepository)
	suite.mockPublisher = new(MockPublisher)
	suite.service = services.NewInventoryService(suite.mockInventoryRepo, suite.mockContactRepo, suite.mockPublisher)

	suite.companyID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.supplier = domain.Contact{
		ContactID: uuid.NewString(),
		CompanyID: suite.companyID,
		Name:      "Northwind Supplies",
		Type:      domain.ContactSupplier,
	}
	suite.product = domain.Product{
		ProductID: uuid.NewString(),
		CompanyID: suite.companyID,
		SKU:       "WID-01",
		Name:      "Widget",
		Price:     decimal.NewFromInt(15),
		Cost:      decimal.NewFromInt(9),
		Stock:     4,
	}
}

// --- Test Cases ---

func (suite *InventoryServiceTestSuite) TestCreatePurchaseOrder_TotalComputedFromLines() {
	ctx := context.Background()
	req := dto.CreatePurchaseOrderRequest{
		SupplierID: suite.supplier.ContactID,
		OrderDate:  time.Now().UTC(),
		Lines: []dto.PurchaseOrderLineRequest{
			{ProductID: suite.product.ProductID, Quantity: 10, UnitCost: decimal.NewFromInt(9)},
		},
	}

	suite.mockContactRepo.On("FindContactByID", ctx, suite.companyID, suite.supplier.ContactID).Return(&suite.supplier, nil).Once()
	suite.mockInventoryRepo.On("FindProductByID", ctx, suite.companyID, suite.product.ProductID).Return(&suite.product, nil).Once()
	suite.mockInventoryRepo.On("SavePurchaseOrder", ctx, mock.MatchedBy(func(po domain.PurchaseOrder) bool {
		return po.TotalCost.Equal(decimal.NewFromInt(90)) && po.Status == domain.PODraft && len(po.Lines) == 1
	})).Return(&domain.PurchaseOrder{
		PurchaseOrderID: uuid.NewString(),
		PONumber:        "PO-001",
		Status:          domain.PODraft,
		TotalCost:       decimal.NewFromInt(90),
	}, nil).Once()

	po, err := suite.service.CreatePurchaseOrder(ctx, suite.companyID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("PO-001", po.PONumber)
	suite.mockInventoryRepo.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestCreatePurchaseOrder_SupplierNotFound() {
	ctx := context.Background()
	req := dto.CreatePurchaseOrderRequest{
		SupplierID: uuid.NewString(),
		OrderDate:  time.Now().UTC(),
		Lines: []dto.PurchaseOrderLineRequest{
			{ProductID: suite.product.ProductID, Quantity: 1, UnitCost: decimal.NewFromInt(9)},
		},
	}

	suite.mockContactRepo.On("FindContactByID", ctx, suite.companyID, req.SupplierID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreatePurchaseOrder(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockInventoryRepo.AssertNotCalled(suite.T(), "SavePurchaseOrder", mock.Anything, mock.Anything)
}

func (suite *InventoryServiceTestSuite) TestUpdatePurchaseOrder_AlreadyReceived() {
	ctx := context.Background()
	po := &domain.PurchaseOrder{
		PurchaseOrderID: uuid.NewString(),
		CompanyID:       suite.companyID,
		Status:          domain.POReceived,
	}

	suite.mockInventoryRepo.On("FindPurchaseOrderByID", ctx, suite.companyID, po.PurchaseOrderID).Return(po, nil).Once()

	newStatus := "CANCELLED"
	_, err := suite.service.UpdatePurchaseOrder(ctx, suite.companyID, po.PurchaseOrderID, dto.UpdatePurchaseOrderRequest{Status: &newStatus}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockInventoryRepo.AssertNotCalled(suite.T(), "UpdatePurchaseOrder", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InventoryServiceTestSuite) TestReceivePurchaseOrder_Success() {
	ctx := context.Background()
	poID := uuid.NewString()
	received := &domain.PurchaseOrder{
		PurchaseOrderID: poID,
		CompanyID:       suite.companyID,
		Status:          domain.POReceived,
	}
	restocked := suite.product
	restocked.Stock += 10

	suite.mockInventoryRepo.On("ReceivePurchaseOrder", ctx, suite.companyID, poID, suite.userID).Return(received, []domain.Product{restocked}, nil, nil).Once()
	suite.mockPublisher.On("Publish", ctx, events.PurchaseOrderReceived, received).Return(nil).Once()

	po, products, missing, err := suite.service.ReceivePurchaseOrder(ctx, suite.companyID, poID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.POReceived, po.Status)
	suite.Len(products, 1)
	suite.Equal(int64(14), products[0].Stock)
	suite.Empty(missing)
	suite.mockPublisher.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestReceivePurchaseOrder_MissingProductsReported() {
	ctx := context.Background()
	poID := uuid.NewString()
	missingID := uuid.NewString()
	received := &domain.PurchaseOrder{
		PurchaseOrderID: poID,
		CompanyID:       suite.companyID,
		Status:          domain.POReceived,
	}

	suite.mockInventoryRepo.On("ReceivePurchaseOrder", ctx, suite.companyID, poID, suite.userID).Return(received, []domain.Product{}, []string{missingID}, nil).Once()
	suite.mockPublisher.On("Publish", ctx, events.PurchaseOrderReceived, received).Return(nil).Once()

	_, products, missing, err := suite.service.ReceivePurchaseOrder(ctx, suite.companyID, poID, suite.userID)

	suite.Require().NoError(err)
	suite.Empty(products)
	suite.Equal([]string{missingID}, missing)
}

func (suite *InventoryServiceTestSuite) TestReceivePurchaseOrder_Terminal() {
	ctx := context.Background()
	poID := uuid.NewString()

	suite.mockInventoryRepo.On("ReceivePurchaseOrder", ctx, suite.companyID, poID, suite.userID).Return(nil, nil, nil, apperrors.ErrConflict).Once()

	_, _, _, err := suite.service.ReceivePurchaseOrder(ctx, suite.companyID, poID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockPublisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestInventoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InventoryServiceTestSuite))
}
