package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/core/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
)

type CompanyServiceTestSuite struct {
	suite.Suite
	mockCompanyRepo *MockCompanyRepository
	mockWalletRepo  *MockWalletRepository
	service         portssvc.CompanySvcFacade
	ctx             context.Context

	companyID string
	userID    string
}

func (s *CompanyServiceTestSuite) SetupTest() {
	s.mockCompanyRepo = new(MockCompanyRepository)
	s.mockWalletRepo = new(MockWalletRepository)
	s.service = services.NewCompanyService(s.mockCompanyRepo, s.mockWalletRepo)
	s.ctx = context.Background()

	s.companyID = uuid.NewString()
	s.userID = uuid.NewString()
}

func (s *CompanyServiceTestSuite) company() *domain.Company {
	return &domain.Company{
		CompanyID:    s.companyID,
		Name:         "Acme Tools",
		CurrencyCode: "USD",
	}
}

func strPtr(v string) *string { return &v }

func (s *CompanyServiceTestSuite) TestGetCompany() {
	s.mockCompanyRepo.On("FindCompanyByID", s.ctx, s.companyID).Return(s.company(), nil).Once()

	company, err := s.service.GetCompany(s.ctx, s.companyID)

	s.Require().NoError(err)
	s.Equal("Acme Tools", company.Name)
	s.mockCompanyRepo.AssertExpectations(s.T())
}

func (s *CompanyServiceTestSuite) TestUpdateCompany_SetsDefaultWallet() {
	walletID := uuid.NewString()
	s.mockCompanyRepo.On("FindCompanyByID", s.ctx, s.companyID).Return(s.company(), nil).Once()
	s.mockWalletRepo.On("FindWalletByID", s.ctx, s.companyID, walletID).
		Return(&domain.Wallet{WalletID: walletID, CompanyID: s.companyID}, nil).Once()
	s.mockCompanyRepo.On("UpdateCompany", s.ctx, mock.MatchedBy(func(c domain.Company) bool {
		return c.DefaultWalletID != nil && *c.DefaultWalletID == walletID && c.LastUpdatedBy == s.userID
	})).Return(nil).Once()

	req := dto.UpdateCompanyRequest{DefaultWalletID: &walletID}
	company, err := s.service.UpdateCompany(s.ctx, s.companyID, req, s.userID)

	s.Require().NoError(err)
	s.Require().NotNil(company.DefaultWalletID)
	s.Equal(walletID, *company.DefaultWalletID)
	s.mockCompanyRepo.AssertExpectations(s.T())
	s.mockWalletRepo.AssertExpectations(s.T())
}

func (s *CompanyServiceTestSuite) TestUpdateCompany_UnknownWalletRejected() {
	walletID := uuid.NewString()
	s.mockCompanyRepo.On("FindCompanyByID", s.ctx, s.companyID).Return(s.company(), nil).Once()
	s.mockWalletRepo.On("FindWalletByID", s.ctx, s.companyID, walletID).
		Return(nil, apperrors.ErrNotFound).Once()

	req := dto.UpdateCompanyRequest{DefaultWalletID: &walletID}
	_, err := s.service.UpdateCompany(s.ctx, s.companyID, req, s.userID)

	s.Require().ErrorIs(err, apperrors.ErrNotFound)
	s.mockCompanyRepo.AssertNotCalled(s.T(), "UpdateCompany", mock.Anything, mock.Anything)
}

func (s *CompanyServiceTestSuite) TestUpdateCompany_EmptyStringClearsDefault() {
	existing := s.company()
	walletID := uuid.NewString()
	existing.DefaultWalletID = &walletID

	s.mockCompanyRepo.On("FindCompanyByID", s.ctx, s.companyID).Return(existing, nil).Once()
	s.mockCompanyRepo.On("UpdateCompany", s.ctx, mock.MatchedBy(func(c domain.Company) bool {
		return c.DefaultWalletID == nil
	})).Return(nil).Once()

	req := dto.UpdateCompanyRequest{DefaultWalletID: strPtr("")}
	company, err := s.service.UpdateCompany(s.ctx, s.companyID, req, s.userID)

	s.Require().NoError(err)
	s.Nil(company.DefaultWalletID)
	// The empty string is a clear, not a lookup.
	s.mockWalletRepo.AssertNotCalled(s.T(), "FindWalletByID", mock.Anything, mock.Anything, mock.Anything)
	s.mockCompanyRepo.AssertExpectations(s.T())
}

func (s *CompanyServiceTestSuite) TestUpdateCompany_RenameAndCurrency() {
	s.mockCompanyRepo.On("FindCompanyByID", s.ctx, s.companyID).Return(s.company(), nil).Once()
	s.mockCompanyRepo.On("UpdateCompany", s.ctx, mock.MatchedBy(func(c domain.Company) bool {
		return c.Name == "Acme Tooling" && c.CurrencyCode == "EUR"
	})).Return(nil).Once()

	req := dto.UpdateCompanyRequest{Name: strPtr("Acme Tooling"), CurrencyCode: strPtr("eur")}
	company, err := s.service.UpdateCompany(s.ctx, s.companyID, req, s.userID)

	s.Require().NoError(err)
	s.Equal("EUR", company.CurrencyCode)
	s.mockCompanyRepo.AssertExpectations(s.T())
}

func TestCompanyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CompanyServiceTestSuite))
}
