package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
	"github.com/finbooks/finbooks_backend/internal/middleware"
)

// --- Mock CompanyService ---
type MockCompanyService struct {
	mock.Mock
}

var _ portssvc.CompanySvcFacade = (*MockCompanyService)(nil)

func (m *MockCompanyService) GetCompany(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyService) UpdateCompany(ctx context.Context, companyID string, req dto.UpdateCompanyRequest, userID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

// --- Test Suite ---
type CompanyHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockSvc   *MockCompanyService
	jwtSecret string
	companyID string
	userID    string
}

func (suite *CompanyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.companyID = uuid.NewString()
	suite.userID = uuid.NewString()

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockSvc = new(MockCompanyService)
	v1 := suite.router.Group("/api/v1")
	registerCompanyRoutes(v1, suite.mockSvc)
}

func (suite *CompanyHandlerTestSuite) generateTestToken(role domain.UserRole) string {
	claims := domain.AccessTokenClaims{
		CompanyID: suite.companyID,
		Role:      string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "finbooks-test",
			Subject:   suite.userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *CompanyHandlerTestSuite) doRequest(method, url string, body []byte, role domain.UserRole) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req, _ = http.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, url, nil)
	}
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(role))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *CompanyHandlerTestSuite) TestGetCompany() {
	company := &domain.Company{CompanyID: suite.companyID, Name: "Acme Tools", CurrencyCode: "USD"}
	suite.mockSvc.On("GetCompany", mock.Anything, suite.companyID).Return(company, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/company", nil, domain.RoleMember)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.CompanyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Acme Tools", resp.Name)
	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *CompanyHandlerTestSuite) TestUpdateCompany_AdminSetsDefaultWallet() {
	walletID := uuid.NewString()
	updated := &domain.Company{
		CompanyID:       suite.companyID,
		Name:            "Acme Tools",
		DefaultWalletID: &walletID,
		CurrencyCode:    "USD",
	}
	suite.mockSvc.On("UpdateCompany", mock.Anything, suite.companyID, mock.MatchedBy(func(req dto.UpdateCompanyRequest) bool {
		return req.DefaultWalletID != nil && *req.DefaultWalletID == walletID
	}), suite.userID).Return(updated, nil).Once()

	body, _ := json.Marshal(gin.H{"defaultWalletID": walletID})
	w := suite.doRequest(http.MethodPut, "/api/v1/company", body, domain.RoleAdmin)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.CompanyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().NotNil(resp.DefaultWalletID)
	suite.Equal(walletID, *resp.DefaultWalletID)
	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *CompanyHandlerTestSuite) TestUpdateCompany_MemberForbidden() {
	body, _ := json.Marshal(gin.H{"name": "Acme Tooling"})
	w := suite.doRequest(http.MethodPut, "/api/v1/company", body, domain.RoleMember)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockSvc.AssertNotCalled(suite.T(), "UpdateCompany", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCompanyHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CompanyHandlerTestSuite))
}
