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

// --- Mock ExpenseClaimRepository ---
type MockExpenseClaimRepository struct {
	mock.Mock
}

var _ portsrepo.ExpenseClaimRepositoryFacade = (*MockExpenseClaimRepository)(nil)

func (m *MockExpenseClaimRepository) FindClaimByID(ctx context.Context, companyID string, claimID string) (*domain.ExpenseClaim, error) {
	args := m.Called(ctx, companyID, claimID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseClaim), args.Error(1)
}

func (m *MockExpenseClaimRepository) ListClaims(ctx context.Context, companyID string, status *domain.ClaimStatus, limit int, offset int) ([]domain.ExpenseClaim, error) {
	args := m.Called(ctx, companyID, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExpenseClaim), args.Error(1)
}

func (m *MockExpenseClaimRepository) SaveClaim(ctx context.Context, claim domain.ExpenseClaim) error {
	args := m.Called(ctx, claim)
	return args.Error(0)
}

func (m *MockExpenseClaimRepository) UpdateClaim(ctx context.Context, claim domain.ExpenseClaim) error {
	args := m.Called(ctx, claim)
	return args.Error(0)
}

func (m *MockExpenseClaimRepository) DeleteClaim(ctx context.Context, companyID string, claimID string) error {
	args := m.Called(ctx, companyID, claimID)
	return args.Error(0)
}

func (m *MockExpenseClaimRepository) ApproveClaim(ctx context.Context, companyID string, claimID string, txn domain.Transaction) (*domain.ExpenseClaim, error) {
	args := m.Called(ctx, companyID, claimID, txn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseClaim), args.Error(1)
}

func (m *MockExpenseClaimRepository) RejectClaim(ctx context.Context, companyID string, claimID string, updatedBy string) (*domain.ExpenseClaim, error) {
	args := m.Called(ctx, companyID, claimID, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseClaim), args.Error(1)
}

// --- Mock CompanyRepository ---
type MockCompanyRepository struct {
	mock.Mock
}

var _ portsrepo.CompanyRepositoryFacade = (*MockCompanyRepository)(nil)

func (m *MockCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) UpdateCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

// --- Mock WalletRepository ---
type MockWalletRepository struct {
	mock.Mock
}

var _ portsrepo.WalletRepositoryFacade = (*MockWalletRepository)(nil)

func (m *MockWalletRepository) FindWalletByID(ctx context.Context, companyID string, walletID string) (*domain.Wallet, error) {
	args := m.Called(ctx, companyID, walletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) ListWallets(ctx context.Context, companyID string, limit int, offset int) ([]domain.Wallet, error) {
	args := m.Called(ctx, companyID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) SaveWallet(ctx context.Context, wallet domain.Wallet) error {
	args := m.Called(ctx, wallet)
	return args.Error(0)
}

func (m *MockWalletRepository) UpdateWallet(ctx context.Context, wallet domain.Wallet) error {
	args := m.Called(ctx, wallet)
	return args.Error(0)
}

func (m *MockWalletRepository) DeleteWallet(ctx context.Context, companyID string, walletID string) error {
	args := m.Called(ctx, companyID, walletID)
	return args.Error(0)
}

// --- Mock HRRepository ---
type MockHRRepository struct {
	mock.Mock
}

var _ portsrepo.HRRepositoryFacade = (*MockHRRepository)(nil)

func (m *MockHRRepository) FindEmployeeByID(ctx context.Context, companyID string, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, companyID, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockHRRepository) ListEmployees(ctx context.Context, companyID string, limit int, offset int) ([]domain.Employee, error) {
	args := m.Called(ctx, companyID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockHRRepository) SaveEmployee(ctx context.Context, employee domain.Employee) (*domain.Employee, error) {
	args := m.Called(ctx, employee)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockHRRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockHRRepository) DeleteEmployee(ctx context.Context, companyID string, employeeID string) error {
	args := m.Called(ctx, companyID, employeeID)
	return args.Error(0)
}

func (m *MockHRRepository) FindTimesheetByID(ctx context.Context, companyID string, timesheetID string) (*domain.Timesheet, error) {
	args := m.Called(ctx, companyID, timesheetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Timesheet), args.Error(1)
}

func (m *MockHRRepository) ListTimesheets(ctx context.Context, companyID string, employeeID *string, limit int, offset int) ([]domain.Timesheet, error) {
	args := m.Called(ctx, companyID, employeeID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Timesheet), args.Error(1)
}

func (m *MockHRRepository) SaveTimesheet(ctx context.Context, timesheet domain.Timesheet) error {
	args := m.Called(ctx, timesheet)
	return args.Error(0)
}

func (m *MockHRRepository) UpdateTimesheet(ctx context.Context, timesheet domain.Timesheet) error {
	args := m.Called(ctx, timesheet)
	return args.Error(0)
}

func (m *MockHRRepository) DeleteTimesheet(ctx context.Context, companyID string, timesheetID string) error {
	args := m.Called(ctx, companyID, timesheetID)
	return args.Error(0)
}

// --- Mock event publisher ---
type MockPublisher struct {
	mock.Mock
}

var _ events.Publisher = (*MockPublisher)(nil)

func (m *MockPublisher) Publish(ctx context.Context, eventType string, payload any) error {
	args := m.Called(ctx, eventType, payload)
	return args.Error(0)
}

// --- Test Suite Setup ---
type ExpenseClaimServiceTestSuite struct {
	suite.Suite
	mockClaimRepo   *MockExpenseClaimRepository
	mockCompanyRepo *MockCompanyRepository
	mockWalletRepo  *MockWalletRepository
	mockHRRepo      *MockHRRepository
	mockPublisher   *MockPublisher
	service         portssvc.ExpenseClaimSvcFacade
	companyID       string
	userID          string
	employee        domain.Employee
	wallet          domain.Wallet
}

func (suite *ExpenseClaimServiceTestSuite) SetupTest() {
	suite.mockClaimRepo = new(MockExpenseClaimRepository)
	suite.mockCompanyRepo = new(MockCompanyRepository)
	suite.mockWalletRepo = new(MockWalletRepository)
	suite.mockHRRepo = new(MockHRRepository)
	suite.mockPublisher = new(MockPublisher)
	suite.service = services.NewExpenseClaimService(
		suite.mockClaimRepo,
		suite.mockCompanyRepo,
		suite.mockWalletRepo,
		suite.mockHRRepo,
		suite.mockPublisher,
	)

	suite.companyID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.employee = domain.Employee{
		EmployeeID:     uuid.NewString(),
		CompanyID:      suite.companyID,
		EmployeeNumber: "E-001",
		Name:           "Dana Reeves",
	}
	suite.wallet = domain.Wallet{
		WalletID:     uuid.NewString(),
		CompanyID:    suite.companyID,
		Name:         "Main Account",
		Balance:      decimal.NewFromInt(1000),
		CurrencyCode: "USD",
	}
}

func (suite *ExpenseClaimServiceTestSuite) pendingClaim() *domain.ExpenseClaim {
	return &domain.ExpenseClaim{
		ClaimID:     uuid.NewString(),
		CompanyID:   suite.companyID,
		EmployeeID:  suite.employee.EmployeeID,
		Date:        time.Now().UTC(),
		CategoryID:  uuid.NewString(),
		Amount:      decimal.NewFromInt(75),
		Description: "Taxi to client site",
		Status:      domain.ClaimPending,
	}
}

// --- Test Cases ---

func (suite *ExpenseClaimServiceTestSuite) TestCreateClaim_Success() {
	ctx := context.Background()
	req := dto.CreateExpenseClaimRequest{
		EmployeeID:  suite.employee.EmployeeID,
		Date:        time.Now().UTC(),
		CategoryID:  uuid.NewString(),
		Amount:      decimal.NewFromInt(42),
		Description: "Team lunch",
	}

	suite.mockHRRepo.On("FindEmployeeByID", ctx, suite.companyID, suite.employee.EmployeeID).Return(&suite.employee, nil).Once()
	suite.mockClaimRepo.On("SaveClaim", ctx, mock.AnythingOfType("domain.ExpenseClaim")).Return(nil).Once()

	claim, err := suite.service.CreateClaim(ctx, suite.companyID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(claim)
	suite.Equal(domain.ClaimPending, claim.Status)
	suite.Equal(suite.userID, claim.CreatedBy)
	suite.mockHRRepo.AssertExpectations(suite.T())
	suite.mockClaimRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseClaimServiceTestSuite) TestCreateClaim_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateExpenseClaimRequest{
		EmployeeID: suite.employee.EmployeeID,
		Date:       time.Now().UTC(),
		Amount:     decimal.NewFromInt(-10),
	}

	_, err := suite.service.CreateClaim(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockClaimRepo.AssertNotCalled(suite.T(), "SaveClaim", mock.Anything, mock.Anything)
}

func (suite *ExpenseClaimServiceTestSuite) TestCreateClaim_UnknownEmployee() {
	ctx := context.Background()
	req := dto.CreateExpenseClaimRequest{
		EmployeeID: uuid.NewString(),
		Date:       time.Now().UTC(),
		Amount:     decimal.NewFromInt(10),
	}

	suite.mockHRRepo.On("FindEmployeeByID", ctx, suite.companyID, req.EmployeeID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateClaim(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockClaimRepo.AssertNotCalled(suite.T(), "SaveClaim", mock.Anything, mock.Anything)
}

func (suite *ExpenseClaimServiceTestSuite) TestUpdateClaim_NotPending() {
	ctx := context.Background()
	claim := suite.pendingClaim()
	claim.Status = domain.ClaimApproved

	suite.mockClaimRepo.On("FindClaimByID", ctx, suite.companyID, claim.ClaimID).Return(claim, nil).Once()

	newDesc := "Edited"
	_, err := suite.service.UpdateClaim(ctx, suite.companyID, claim.ClaimID, dto.UpdateExpenseClaimRequest{Description: &newDesc}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockClaimRepo.AssertNotCalled(suite.T(), "UpdateClaim", mock.Anything, mock.Anything)
}

func (suite *ExpenseClaimServiceTestSuite) TestApproveClaim_ExplicitWallet() {
	ctx := context.Background()
	claim := suite.pendingClaim()
	approved := *claim
	approved.Status = domain.ClaimApproved

	suite.mockClaimRepo.On("FindClaimByID", ctx, suite.companyID, claim.ClaimID).Return(claim, nil).Once()
	suite.mockWalletRepo.On("FindWalletByID", ctx, suite.companyID, suite.wallet.WalletID).Return(&suite.wallet, nil).Once()
	suite.mockClaimRepo.On("ApproveClaim", ctx, suite.companyID, claim.ClaimID, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Amount.Equal(claim.Amount.Neg()) &&
			txn.Type == domain.Expense &&
			txn.WalletID == suite.wallet.WalletID &&
			txn.CurrencyCode == suite.wallet.CurrencyCode
	})).Return(&approved, nil).Once()
	suite.mockPublisher.On("Publish", ctx, events.ClaimApproved, &approved).Return(nil).Once()

	result, txn, err := suite.service.ApproveClaim(ctx, suite.companyID, claim.ClaimID, dto.ApproveClaimRequest{WalletID: &suite.wallet.WalletID}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.ClaimApproved, result.Status)
	suite.Require().NotNil(txn)
	suite.True(txn.Amount.IsNegative())
	suite.mockCompanyRepo.AssertNotCalled(suite.T(), "FindCompanyByID", mock.Anything, mock.Anything)
	suite.mockClaimRepo.AssertExpectations(suite.T())
	suite.mockPublisher.AssertExpectations(suite.T())
}

func (suite *ExpenseClaimServiceTestSuite) TestApproveClaim_DefaultWallet() {
	ctx := context.Background()
	claim := suite.pendingClaim()
	approved := *claim
	approved.Status = domain.ClaimApproved
	company := domain.Company{
		CompanyID:       suite.companyID,
		Name:            "Acme LLC",
		DefaultWalletID: &suite.wallet.WalletID,
		CurrencyCode:    "USD",
	}

	suite.mockClaimRepo.On("FindClaimByID", ctx, suite.companyID, claim.ClaimID).Return(claim, nil).Once()
	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.companyID).Return(&company, nil).Once()
	suite.mockWalletRepo.On("FindWalletByID", ctx, suite.companyID, suite.wallet.WalletID).Return(&suite.wallet, nil).Once()
	suite.mockClaimRepo.On("ApproveClaim", ctx, suite.companyID, claim.ClaimID, mock.AnythingOfType("domain.Transaction")).Return(&approved, nil).Once()
	suite.mockPublisher.On("Publish", ctx, events.ClaimApproved, &approved).Return(nil).Once()

	result, _, err := suite.service.ApproveClaim(ctx, suite.companyID, claim.ClaimID, dto.ApproveClaimRequest{}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.ClaimApproved, result.Status)
	suite.mockCompanyRepo.AssertExpectations(suite.T())
	suite.mockClaimRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseClaimServiceTestSuite) TestApproveClaim_NoWalletAvailable() {
	ctx := context.Background()
	claim := suite.pendingClaim()
	company := domain.Company{
		CompanyID:    suite.companyID,
		Name:         "Acme LLC",
		CurrencyCode: "USD",
	}

	suite.mockClaimRepo.On("FindClaimByID", ctx, suite.companyID, claim.ClaimID).Return(claim, nil).Once()
	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.companyID).Return(&company, nil).Once()

	_, _, err := suite.service.ApproveClaim(ctx, suite.companyID, claim.ClaimID, dto.ApproveClaimRequest{}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockClaimRepo.AssertNotCalled(suite.T(), "ApproveClaim", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockPublisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExpenseClaimServiceTestSuite) TestApproveClaim_AlreadyDecided() {
	ctx := context.Background()
	claim := suite.pendingClaim()

	suite.mockClaimRepo.On("FindClaimByID", ctx, suite.companyID, claim.ClaimID).Return(claim, nil).Once()
	suite.mockWalletRepo.On("FindWalletByID", ctx, suite.companyID, suite.wallet.WalletID).Return(&suite.wallet, nil).Once()
	suite.mockClaimRepo.On("ApproveClaim", ctx, suite.companyID, claim.ClaimID, mock.AnythingOfType("domain.Transaction")).Return(nil, apperrors.ErrConflict).Once()

	_, _, err := suite.service.ApproveClaim(ctx, suite.companyID, claim.ClaimID, dto.ApproveClaimRequest{WalletID: &suite.wallet.WalletID}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockPublisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExpenseClaimServiceTestSuite) TestApproveClaim_PublishFailureIsNotFatal() {
	ctx := context.Background()
	claim := suite.pendingClaim()
	approved := *claim
	approved.Status = domain.ClaimApproved

	suite.mockClaimRepo.On("FindClaimByID", ctx, suite.companyID, claim.ClaimID).Return(claim, nil).Once()
	suite.mockWalletRepo.On("FindWalletByID", ctx, suite.companyID, suite.wallet.WalletID).Return(&suite.wallet, nil).Once()
	suite.mockClaimRepo.On("ApproveClaim", ctx, suite.companyID, claim.ClaimID, mock.AnythingOfType("domain.Transaction")).Return(&approved, nil).Once()
	suite.mockPublisher.On("Publish", ctx, events.ClaimApproved, &approved).Return(context.DeadlineExceeded).Once()

	result, _, err := suite.service.ApproveClaim(ctx, suite.companyID, claim.ClaimID, dto.ApproveClaimRequest{WalletID: &suite.wallet.WalletID}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.ClaimApproved, result.Status)
	suite.mockPublisher.AssertExpectations(suite.T())
}

func (suite *ExpenseClaimServiceTestSuite) TestRejectClaim() {
	ctx := context.Background()
	claim := suite.pendingClaim()
	rejected := *claim
	rejected.Status = domain.ClaimRejected

	suite.mockClaimRepo.On("RejectClaim", ctx, suite.companyID, claim.ClaimID, suite.userID).Return(&rejected, nil).Once()

	result, err := suite.service.RejectClaim(ctx, suite.companyID, claim.ClaimID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.ClaimRejected, result.Status)
	suite.mockClaimRepo.AssertExpectations(suite.T())
}

func TestExpenseClaimServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseClaimServiceTestSuite))
}
