package services_test

import (
	"context"
	"testing"

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

// --- Mock GoalRepository ---
type MockGoalRepository struct {
	mock.Mock
}

var _ portsrepo.GoalRepositoryFacade = (*MockGoalRepository)(nil)

func (m *MockGoalRepository) FindGoalByID(ctx context.Context, companyID string, goalID string) (*domain.FinancialGoal, error) {
	args := m.Called(ctx, companyID, goalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialGoal), args.Error(1)
}

func (m *MockGoalRepository) ListGoals(ctx context.Context, companyID string, limit int, offset int) ([]domain.FinancialGoal, error) {
	args := m.Called(ctx, companyID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FinancialGoal), args.Error(1)
}

func (m *MockGoalRepository) SaveGoal(ctx context.Context, goal domain.FinancialGoal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockGoalRepository) UpdateGoal(ctx context.Context, goal domain.FinancialGoal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockGoalRepository) DeleteGoal(ctx context.Context, companyID string, goalID string) error {
	args := m.Called(ctx, companyID, goalID)
	return args.Error(0)
}

func (m *MockGoalRepository) ContributeToGoal(ctx context.Context, companyID string, goalID string, txn domain.Transaction) (*domain.FinancialGoal, error) {
	args := m.Called(ctx, companyID, goalID, txn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialGoal), args.Error(1)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) FindCategoryByID(ctx context.Context, companyID string, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, companyID, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockTransactionRepository) ListCategories(ctx context.Context, companyID string, limit int, offset int) ([]domain.Category, error) {
	args := m.Called(ctx, companyID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockTransactionRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteCategory(ctx context.Context, companyID string, categoryID string) error {
	args := m.Called(ctx, companyID, categoryID)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, companyID string, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, companyID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, companyID string, limit int, offset int) ([]domain.Transaction, error) {
	args := m.Called(ctx, companyID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByWallet(ctx context.Context, companyID string, walletID string, limit int, offset int) ([]domain.Transaction, error) {
	args := m.Called(ctx, companyID, walletID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, companyID string, transactionID string) error {
	args := m.Called(ctx, companyID, transactionID)
	return args.Error(0)
}

// --- Test Suite Setup ---
type GoalServiceTestSuite struct {
	suite.Suite
	mockGoalRepo   *MockGoalRepository
	mockWalletRepo *MockWalletRepository
	mockTxnRepo    *MockTransactionRepository
	mockPublisher  *MockPublisher
	service        portssvc.GoalSvcFacade
	companyID      string
	userID         string
	goal           domain.FinancialGoal
	wallet         domain.Wallet
}

func (suite *GoalServiceTestSuite) SetupTest() {
	suite.mockGoalRepo = new(MockGoalRepository)
	suite.mockWalletRepo = new(MockWalletRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockPublisher = new(MockPublisher)
	suite.service = services.NewGoalService(suite.mockGoalRepo, suite.mockWalletRepo, suite.mockTxnRepo, suite.mockPublisher)

	suite.companyID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.goal = domain.FinancialGoal{
		GoalID:        uuid.NewString(),
		CompanyID:     suite.companyID,
		Name:          "New delivery van",
		TargetAmount:  decimal.NewFromInt(20000),
		CurrentAmount: decimal.NewFromInt(5000),
	}
	suite.wallet = domain.Wallet{
		WalletID:     uuid.NewString(),
		CompanyID:    suite.companyID,
		Name:         "Savings",
		Balance:      decimal.NewFromInt(8000),
		CurrencyCode: "EUR",
	}
}

// --- Test Cases ---

func (suite *GoalServiceTestSuite) TestContribute_Success() {
	ctx := context.Background()
	transferCategory := domain.Category{
		CategoryID: uuid.NewString(),
		CompanyID:  suite.companyID,
		Name:       domain.InternalTransferCategory,
	}
	updated := suite.goal
	updated.CurrentAmount = updated.CurrentAmount.Add(decimal.NewFromInt(500))

	suite.mockGoalRepo.On("FindGoalByID", ctx, suite.companyID, suite.goal.GoalID).Return(&suite.goal, nil).Once()
	suite.mockWalletRepo.On("FindWalletByID", ctx, suite.companyID, suite.wallet.WalletID).Return(&suite.wallet, nil).Once()
	suite.mockTxnRepo.On("ListCategories", ctx, suite.companyID, mock.AnythingOfType("int"), 0).Return([]domain.Category{transferCategory}, nil).Once()
	suite.mockGoalRepo.On("ContributeToGoal", ctx, suite.companyID, suite.goal.GoalID, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Amount.Equal(decimal.NewFromInt(-500)) &&
			txn.Type == domain.Expense &&
			txn.CategoryID == transferCategory.CategoryID &&
			txn.WalletID == suite.wallet.WalletID &&
			txn.CurrencyCode == "EUR"
	})).Return(&updated, nil).Once()
	suite.mockPublisher.On("Publish", ctx, events.GoalFunded, &updated).Return(nil).Once()

	goal, txn, err := suite.service.Contribute(ctx, suite.companyID, suite.goal.GoalID, dto.ContributeRequest{
		Amount:   decimal.NewFromInt(500),
		WalletID: suite.wallet.WalletID,
	}, suite.userID)

	suite.Require().NoError(err)
	suite.True(goal.CurrentAmount.Equal(decimal.NewFromInt(5500)))
	suite.Require().NotNil(txn)
	suite.True(txn.Amount.IsNegative())
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveCategory", mock.Anything, mock.Anything)
	suite.mockGoalRepo.AssertExpectations(suite.T())
	suite.mockPublisher.AssertExpectations(suite.T())
}

func (suite *GoalServiceTestSuite) TestContribute_CreatesTransferCategoryOnFirstUse() {
	ctx := context.Background()
	updated := suite.goal

	suite.mockGoalRepo.On("FindGoalByID", ctx, suite.companyID, suite.goal.GoalID).Return(&suite.goal, nil).Once()
	suite.mockWalletRepo.On("FindWalletByID", ctx, suite.companyID, suite.wallet.WalletID).Return(&suite.wallet, nil).Once()
	suite.mockTxnRepo.On("ListCategories", ctx, suite.companyID, mock.AnythingOfType("int"), 0).Return([]domain.Category{}, nil).Once()
	suite.mockTxnRepo.On("SaveCategory", ctx, mock.MatchedBy(func(c domain.Category) bool {
		return c.Name == domain.InternalTransferCategory && c.CompanyID == suite.companyID
	})).Return(nil).Once()
	suite.mockGoalRepo.On("ContributeToGoal", ctx, suite.companyID, suite.goal.GoalID, mock.AnythingOfType("domain.Transaction")).Return(&updated, nil).Once()
	suite.mockPublisher.On("Publish", ctx, events.GoalFunded, &updated).Return(nil).Once()

	_, _, err := suite.service.Contribute(ctx, suite.companyID, suite.goal.GoalID, dto.ContributeRequest{
		Amount:   decimal.NewFromInt(100),
		WalletID: suite.wallet.WalletID,
	}, suite.userID)

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *GoalServiceTestSuite) TestContribute_NonPositiveAmount() {
	ctx := context.Background()

	_, _, err := suite.service.Contribute(ctx, suite.companyID, suite.goal.GoalID, dto.ContributeRequest{
		Amount:   decimal.Zero,
		WalletID: suite.wallet.WalletID,
	}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockGoalRepo.AssertNotCalled(suite.T(), "ContributeToGoal", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *GoalServiceTestSuite) TestContribute_WalletNotFound() {
	ctx := context.Background()
	walletID := uuid.NewString()

	suite.mockGoalRepo.On("FindGoalByID", ctx, suite.companyID, suite.goal.GoalID).Return(&suite.goal, nil).Once()
	suite.mockWalletRepo.On("FindWalletByID", ctx, suite.companyID, walletID).Return(nil, apperrors.ErrNotFound).Once()

	_, _, err := suite.service.Contribute(ctx, suite.companyID, suite.goal.GoalID, dto.ContributeRequest{
		Amount:   decimal.NewFromInt(100),
		WalletID: walletID,
	}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockGoalRepo.AssertNotCalled(suite.T(), "ContributeToGoal", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *GoalServiceTestSuite) TestCreateGoal_NonPositiveTarget() {
	ctx := context.Background()

	_, err := suite.service.CreateGoal(ctx, suite.companyID, dto.CreateGoalRequest{
		Name:         "Bad goal",
		TargetAmount: decimal.NewFromInt(-1),
	}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockGoalRepo.AssertNotCalled(suite.T(), "SaveGoal", mock.Anything, mock.Anything)
}

func TestGoalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GoalServiceTestSuite))
}
