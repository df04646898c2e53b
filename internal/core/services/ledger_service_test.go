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

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

var _ portsrepo.LedgerRepositoryFacade = (*MockLedgerRepository)(nil)

func (m *MockLedgerRepository) FindAccountByID(ctx context.Context, companyID string, accountID string) (*domain.LedgerAccount, error) {
	args := m.Called(ctx, companyID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerAccount), args.Error(1)
}

func (m *MockLedgerRepository) FindAccountsByIDs(ctx context.Context, companyID string, accountIDs []string) (map[string]domain.LedgerAccount, error) {
	args := m.Called(ctx, companyID, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.LedgerAccount), args.Error(1)
}

func (m *MockLedgerRepository) ListAccounts(ctx context.Context, companyID string, limit int, offset int) ([]domain.LedgerAccount, error) {
	args := m.Called(ctx, companyID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerAccount), args.Error(1)
}

func (m *MockLedgerRepository) SaveAccount(ctx context.Context, account domain.LedgerAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockLedgerRepository) UpdateAccount(ctx context.Context, account domain.LedgerAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockLedgerRepository) DeleteAccount(ctx context.Context, companyID string, accountID string) error {
	args := m.Called(ctx, companyID, accountID)
	return args.Error(0)
}

func (m *MockLedgerRepository) FindJournalEntryByID(ctx context.Context, companyID string, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, companyID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockLedgerRepository) ListJournalEntries(ctx context.Context, companyID string, limit int, offset int) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, companyID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockLedgerRepository) SaveJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLedgerRepository) UpdateJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLedgerRepository) DeleteJournalEntry(ctx context.Context, companyID string, entryID string) error {
	args := m.Called(ctx, companyID, entryID)
	return args.Error(0)
}

// --- Test Suite Setup ---
type LedgerServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo *MockLedgerRepository
	mockPublisher  *MockPublisher
	service        portssvc.LedgerSvcFacade
	companyID      string
	userID         string
	cashAccount    domain.LedgerAccount
	salesAccount   domain.LedgerAccount
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockPublisher = new(MockPublisher)
	suite.service = services.NewLedgerService(suite.mockLedgerRepo, suite.mockPublisher)

	suite.companyID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.cashAccount = domain.LedgerAccount{
		AccountID: uuid.NewString(),
		CompanyID: suite.companyID,
		Code:      "1000",
		Name:      "Cash",
		Type:      domain.Asset,
	}
	suite.salesAccount = domain.LedgerAccount{
		AccountID: uuid.NewString(),
		CompanyID: suite.companyID,
		Code:      "4000",
		Name:      "Sales",
		Type:      domain.IncomeAcc,
	}
}

func (suite *LedgerServiceTestSuite) postedEntry(amount int64) *domain.JournalEntry {
	return &domain.JournalEntry{
		EntryID:   uuid.NewString(),
		CompanyID: suite.companyID,
		Date:      time.Now().UTC(),
		Ref:       "INV-42",
		Lines: []domain.JournalLine{
			{LineID: uuid.NewString(), AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(amount)},
			{LineID: uuid.NewString(), AccountID: suite.salesAccount.AccountID, Credit: decimal.NewFromInt(amount)},
		},
	}
}

func (suite *LedgerServiceTestSuite) balancedRequest(amount int64) dto.CreateJournalEntryRequest {
	return dto.CreateJournalEntryRequest{
		Date: time.Now().UTC(),
		Ref:  "INV-42",
		Lines: []dto.JournalLineRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(amount)},
			{AccountID: suite.salesAccount.AccountID, Credit: decimal.NewFromInt(amount)},
		},
	}
}

// --- Test Cases ---

func (suite *LedgerServiceTestSuite) TestCreateJournalEntry_Success() {
	ctx := context.Background()
	req := suite.balancedRequest(250)

	accountsMap := map[string]domain.LedgerAccount{
		suite.cashAccount.AccountID:  suite.cashAccount,
		suite.salesAccount.AccountID: suite.salesAccount,
	}
	suite.mockLedgerRepo.On("FindAccountsByIDs", ctx, suite.companyID, []string{suite.cashAccount.AccountID, suite.salesAccount.AccountID}).Return(accountsMap, nil).Once()
	suite.mockLedgerRepo.On("SaveJournalEntry", ctx, mock.AnythingOfType("domain.JournalEntry")).Return(nil).Once()
	suite.mockPublisher.On("Publish", ctx, events.JournalPosted, mock.AnythingOfType("*domain.JournalEntry")).Return(nil).Once()

	entry, err := suite.service.CreateJournalEntry(ctx, suite.companyID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.NotEmpty(entry.EntryID)
	suite.Equal(suite.companyID, entry.CompanyID)
	suite.Equal("INV-42", entry.Ref)
	suite.Len(entry.Lines, 2)
	suite.NotEmpty(entry.Lines[0].LineID)
	suite.Equal(suite.userID, entry.CreatedBy)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
	suite.mockPublisher.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCreateJournalEntry_Unbalanced() {
	ctx := context.Background()
	req := dto.CreateJournalEntryRequest{
		Date: time.Now().UTC(),
		Lines: []dto.JournalLineRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(100)},
			{AccountID: suite.salesAccount.AccountID, Credit: decimal.NewFromInt(90)},
		},
	}

	_, err := suite.service.CreateJournalEntry(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrJournalUnbalanced)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveJournalEntry", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestCreateJournalEntry_MinLines() {
	ctx := context.Background()
	req := dto.CreateJournalEntryRequest{
		Date: time.Now().UTC(),
		Lines: []dto.JournalLineRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(100)},
		},
	}

	_, err := suite.service.CreateJournalEntry(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrJournalMinLines)
}

func (suite *LedgerServiceTestSuite) TestCreateJournalEntry_LineWithBothSides() {
	ctx := context.Background()
	req := dto.CreateJournalEntryRequest{
		Date: time.Now().UTC(),
		Lines: []dto.JournalLineRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(100), Credit: decimal.NewFromInt(100)},
			{AccountID: suite.salesAccount.AccountID, Credit: decimal.NewFromInt(100)},
		},
	}

	_, err := suite.service.CreateJournalEntry(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrJournalBothSides)
}

func (suite *LedgerServiceTestSuite) TestCreateJournalEntry_ZeroTotal() {
	ctx := context.Background()
	req := dto.CreateJournalEntryRequest{
		Date: time.Now().UTC(),
		Lines: []dto.JournalLineRequest{
			{AccountID: suite.cashAccount.AccountID},
			{AccountID: suite.salesAccount.AccountID},
		},
	}

	_, err := suite.service.CreateJournalEntry(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrJournalZeroTotal)
}

func (suite *LedgerServiceTestSuite) TestCreateJournalEntry_NegativeAmount() {
	ctx := context.Background()
	req := dto.CreateJournalEntryRequest{
		Date: time.Now().UTC(),
		Lines: []dto.JournalLineRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(-100)},
			{AccountID: suite.salesAccount.AccountID, Credit: decimal.NewFromInt(-100)},
		},
	}

	_, err := suite.service.CreateJournalEntry(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestCreateJournalEntry_UnknownAccount() {
	ctx := context.Background()
	req := suite.balancedRequest(100)

	// Only the cash account exists in the company.
	accountsMap := map[string]domain.LedgerAccount{
		suite.cashAccount.AccountID: suite.cashAccount,
	}
	suite.mockLedgerRepo.On("FindAccountsByIDs", ctx, suite.companyID, mock.Anything).Return(accountsMap, nil).Once()

	_, err := suite.service.CreateJournalEntry(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveJournalEntry", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestUpdateJournalEntry_ReplacesLines() {
	ctx := context.Background()
	existing := suite.postedEntry(250)

	newLines := []dto.JournalLineRequest{
		{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(300)},
		{AccountID: suite.salesAccount.AccountID, Credit: decimal.NewFromInt(300)},
	}

	accountsMap := map[string]domain.LedgerAccount{
		suite.cashAccount.AccountID:  suite.cashAccount,
		suite.salesAccount.AccountID: suite.salesAccount,
	}
	suite.mockLedgerRepo.On("FindJournalEntryByID", ctx, suite.companyID, existing.EntryID).Return(existing, nil).Once()
	suite.mockLedgerRepo.On("FindAccountsByIDs", ctx, suite.companyID, []string{suite.cashAccount.AccountID, suite.salesAccount.AccountID}).Return(accountsMap, nil).Once()
	suite.mockLedgerRepo.On("UpdateJournalEntry", ctx, mock.MatchedBy(func(e domain.JournalEntry) bool {
		return e.EntryID == existing.EntryID &&
			len(e.Lines) == 2 &&
			e.Lines[0].Debit.Equal(decimal.NewFromInt(300))
	})).Return(nil).Once()

	entry, err := suite.service.UpdateJournalEntry(ctx, suite.companyID, existing.EntryID, dto.UpdateJournalEntryRequest{Lines: newLines}, suite.userID)

	suite.Require().NoError(err)
	suite.Len(entry.Lines, 2)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestUpdateJournalEntry_UnbalancedReplacementRejected() {
	ctx := context.Background()
	existing := suite.postedEntry(250)

	suite.mockLedgerRepo.On("FindJournalEntryByID", ctx, suite.companyID, existing.EntryID).Return(existing, nil).Once()

	req := dto.UpdateJournalEntryRequest{
		Lines: []dto.JournalLineRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(100)},
			{AccountID: suite.salesAccount.AccountID, Credit: decimal.NewFromInt(90)},
		},
	}
	_, err := suite.service.UpdateJournalEntry(ctx, suite.companyID, existing.EntryID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrJournalUnbalanced)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "UpdateJournalEntry", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestUpdateJournalEntry_HeaderOnlyKeepsLines() {
	ctx := context.Background()
	existing := suite.postedEntry(250)
	originalLineID := existing.Lines[0].LineID

	suite.mockLedgerRepo.On("FindJournalEntryByID", ctx, suite.companyID, existing.EntryID).Return(existing, nil).Once()
	suite.mockLedgerRepo.On("UpdateJournalEntry", ctx, mock.MatchedBy(func(e domain.JournalEntry) bool {
		return e.Ref == "INV-99" && len(e.Lines) == 2 && e.Lines[0].LineID == originalLineID
	})).Return(nil).Once()

	newRef := "INV-99"
	entry, err := suite.service.UpdateJournalEntry(ctx, suite.companyID, existing.EntryID, dto.UpdateJournalEntryRequest{Ref: &newRef}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("INV-99", entry.Ref)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "FindAccountsByIDs", mock.Anything, mock.Anything, mock.Anything)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
