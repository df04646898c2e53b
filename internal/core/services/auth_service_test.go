package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/core/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
	"github.com/finbooks/finbooks_backend/internal/platform/config"
	"github.com/finbooks/finbooks_backend/internal/utils"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByID(ctx context.Context, companyID string, userID string) (*domain.User, error) {
	args := m.Called(ctx, companyID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, companyID string, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, companyID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, companyID string, userID string) error {
	args := m.Called(ctx, companyID, userID)
	return args.Error(0)
}

type AuthServiceTestSuite struct {
	suite.Suite
	mockUserRepo    *MockUserRepository
	mockCompanyRepo *MockCompanyRepository
	service         portssvc.AuthSvcFacade
	ctx             context.Context
}

func (s *AuthServiceTestSuite) SetupTest() {
	cfg := &config.Config{
		JWTSecret:         "test-secret-key-for-auth-service",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "finbooks-test",
	}
	s.mockUserRepo = new(MockUserRepository)
	s.mockCompanyRepo = new(MockCompanyRepository)
	s.service = services.NewAuthService(cfg, s.mockUserRepo, s.mockCompanyRepo)
	s.ctx = context.Background()
}

func (s *AuthServiceTestSuite) TestRegister_CreatesCompanyWithAdminUser() {
	req := dto.RegisterRequest{
		CompanyName:  "Acme Tools",
		CurrencyCode: "usd",
		Name:         "Ada",
		Email:        "ada@acme.test",
		Password:     "correct horse",
	}

	s.mockUserRepo.On("FindUserByEmail", s.ctx, "ada@acme.test").Return(nil, apperrors.ErrNotFound).Once()
	s.mockCompanyRepo.On("SaveCompany", s.ctx, mock.MatchedBy(func(c domain.Company) bool {
		return c.Name == "Acme Tools" && c.CurrencyCode == "USD" && c.DefaultWalletID == nil
	})).Return(nil).Once()
	s.mockUserRepo.On("SaveUser", s.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Role == domain.RoleAdmin &&
			u.Email == "ada@acme.test" &&
			u.PasswordHash != "" && u.PasswordHash != "correct horse" &&
			u.CreatedBy == u.UserID
	})).Return(nil).Once()

	resp, err := s.service.Register(s.ctx, req)

	s.Require().NoError(err)
	s.NotEmpty(resp.Token)
	s.Equal(string(domain.RoleAdmin), resp.User.Role)
	s.Equal(resp.Company.CompanyID, resp.User.CompanyID)
	s.Equal("USD", resp.Company.CurrencyCode)
	s.mockUserRepo.AssertExpectations(s.T())
	s.mockCompanyRepo.AssertExpectations(s.T())
}

func (s *AuthServiceTestSuite) TestRegister_DuplicateEmailRejected() {
	req := dto.RegisterRequest{
		CompanyName:  "Acme Tools",
		CurrencyCode: "USD",
		Name:         "Ada",
		Email:        "ada@acme.test",
		Password:     "correct horse",
	}

	existing := &domain.User{UserID: uuid.NewString(), Email: "ada@acme.test"}
	s.mockUserRepo.On("FindUserByEmail", s.ctx, "ada@acme.test").Return(existing, nil).Once()

	_, err := s.service.Register(s.ctx, req)

	s.Require().ErrorIs(err, apperrors.ErrDuplicate)
	s.mockCompanyRepo.AssertNotCalled(s.T(), "SaveCompany", mock.Anything, mock.Anything)
	s.mockUserRepo.AssertNotCalled(s.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (s *AuthServiceTestSuite) TestLogin_Succeeds() {
	hash, err := utils.HashPassword("correct horse")
	s.Require().NoError(err)

	user := &domain.User{
		UserID:       uuid.NewString(),
		CompanyID:    uuid.NewString(),
		Name:         "Ada",
		Email:        "ada@acme.test",
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
	}
	s.mockUserRepo.On("FindUserByEmail", s.ctx, "ada@acme.test").Return(user, nil).Once()

	resp, err := s.service.Login(s.ctx, dto.LoginRequest{Email: "ada@acme.test", Password: "correct horse"})

	s.Require().NoError(err)
	s.NotEmpty(resp.Token)
	s.Equal(user.UserID, resp.User.UserID)
	s.mockUserRepo.AssertExpectations(s.T())
}

func (s *AuthServiceTestSuite) TestLogin_WrongPasswordIsUnauthorized() {
	hash, err := utils.HashPassword("correct horse")
	s.Require().NoError(err)

	user := &domain.User{UserID: uuid.NewString(), Email: "ada@acme.test", PasswordHash: hash}
	s.mockUserRepo.On("FindUserByEmail", s.ctx, "ada@acme.test").Return(user, nil).Once()

	_, err = s.service.Login(s.ctx, dto.LoginRequest{Email: "ada@acme.test", Password: "battery staple"})

	s.Require().ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *AuthServiceTestSuite) TestLogin_UnknownEmailIsUnauthorized() {
	s.mockUserRepo.On("FindUserByEmail", s.ctx, "ghost@acme.test").Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.Login(s.ctx, dto.LoginRequest{Email: "ghost@acme.test", Password: "anything"})

	s.Require().ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
