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
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/core/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo    *MockTransactionRepository
	mockWalletRepo *MockWalletRepository
	service        portssvc.TransactionSvcFacade
	companyID      string
	userID         string
	wallet         domain.Wallet
	category       domain.Category
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockWalletRepo = new(MockWalletRepository)
	suite.service = services.NewTransactionService(suite.mockTxnRepo, suite.mockWalletRepo)

	suite.companyID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.wallet = domain.Wallet{
		WalletID:     uuid.NewString(),
		CompanyID:    suite.companyID,
		Name:         "Checking",
		Balance:      decimal.NewFromInt(500),
		CurrencyCode: "GBP",
	}
	suite.category = domain.Category{
		CategoryID: uuid.NewString(),
		CompanyID:  suite.companyID,
		Name:       "Office Supplies",
	}
}

// --- Test Cases ---

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ExpenseStoredNegative() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Date:        time.Now().UTC(),
		Description: "Printer paper",
		Amount:      decimal.NewFromInt(30), // positive in the request
		Type:        "EXPENSE",
		CategoryID:  suite.category.CategoryID,
		WalletID:    suite.wallet.WalletID,
	}

	suite.mockWalletRepo.On("FindWalletByID", ctx, suite.companyID, suite.wallet.WalletID).Return(&suite.wallet, nil).Once()
	suite.mockTxnRepo.On("FindCategoryByID", ctx, suite.companyID, suite.category.CategoryID).Return(&suite.category, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Amount.Equal(decimal.NewFromInt(-30)) && txn.CurrencyCode == "GBP"
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.companyID, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(txn.Amount.IsNegative())
	suite.Equal(domain.Expense, txn.Type)
	suite.Equal("GBP", txn.CurrencyCode)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_IncomeStoredPositive() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Date:        time.Now().UTC(),
		Description: "Refund",
		Amount:      decimal.NewFromInt(-120), // wrong sign in the request
		Type:        "INCOME",
		CategoryID:  suite.category.CategoryID,
		WalletID:    suite.wallet.WalletID,
	}

	suite.mockWalletRepo.On("FindWalletByID", ctx, suite.companyID, suite.wallet.WalletID).Return(&suite.wallet, nil).Once()
	suite.mockTxnRepo.On("FindCategoryByID", ctx, suite.companyID, suite.category.CategoryID).Return(&suite.category, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Amount.Equal(decimal.NewFromInt(120))
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.companyID, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(txn.Amount.IsPositive())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ZeroAmount() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Date:        time.Now().UTC(),
		Description: "Nothing",
		Amount:      decimal.Zero,
		Type:        "EXPENSE",
		CategoryID:  suite.category.CategoryID,
		WalletID:    suite.wallet.WalletID,
	}

	_, err := suite.service.CreateTransaction(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_UnknownCategory() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Date:        time.Now().UTC(),
		Description: "Mystery",
		Amount:      decimal.NewFromInt(10),
		Type:        "EXPENSE",
		CategoryID:  uuid.NewString(),
		WalletID:    suite.wallet.WalletID,
	}

	suite.mockWalletRepo.On("FindWalletByID", ctx, suite.companyID, suite.wallet.WalletID).Return(&suite.wallet, nil).Once()
	suite.mockTxnRepo.On("FindCategoryByID", ctx, suite.companyID, req.CategoryID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateTransaction(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_TypeFlipRenormalizesSign() {
	ctx := context.Background()
	existing := &domain.Transaction{
		TransactionID: uuid.NewString(),
		CompanyID:     suite.companyID,
		Date:          time.Now().UTC(),
		Description:   "Misfiled",
		Amount:        decimal.NewFromInt(-45),
		CurrencyCode:  "GBP",
		Type:          domain.Expense,
		CategoryID:    suite.category.CategoryID,
		WalletID:      suite.wallet.WalletID,
	}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, suite.companyID, existing.TransactionID).Return(existing, nil).Once()
	suite.mockTxnRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Type == domain.Income && txn.Amount.Equal(decimal.NewFromInt(45))
	})).Return(nil).Once()

	newType := "INCOME"
	txn, err := suite.service.UpdateTransaction(ctx, suite.companyID, existing.TransactionID, dto.UpdateTransactionRequest{Type: &newType}, suite.userID)

	suite.Require().NoError(err)
	suite.True(txn.Amount.IsPositive())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_WalletFilter() {
	ctx := context.Background()
	walletID := suite.wallet.WalletID

	suite.mockTxnRepo.On("ListTransactionsByWallet", ctx, suite.companyID, walletID, 10, 0).Return([]domain.Transaction{}, nil).Once()

	_, err := suite.service.ListTransactions(ctx, suite.companyID, &walletID, 10, 0)

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
