package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
	"github.com/finbooks/finbooks_backend/internal/middleware"
	"github.com/finbooks/finbooks_backend/internal/platform/config"
	"github.com/finbooks/finbooks_backend/internal/utils"
)

// authService implements signup, login, and access token issuance. It
// needs the config for the signing secret and expiry, the user repository
// for credential lookup, and the company repository for signup.
type authService struct {
	cfg         *config.Config
	userRepo    portsrepo.UserRepositoryFacade
	companyRepo portsrepo.CompanyRepositoryFacade
}

// NewAuthService creates a new instance of authService.
func NewAuthService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade, companyRepo portsrepo.CompanyRepositoryFacade) portssvc.AuthSvcFacade {
	return &authService{
		cfg:         cfg,
		userRepo:    userRepo,
		companyRepo: companyRepo,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login verifies the credentials and returns a signed access token.
// A missing user and a wrong password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		logger.ErrorContext(ctx, "failed to look up user for login", slog.String("error", err.Error()))
		return nil, err
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		logger.WarnContext(ctx, "login failed: password mismatch", slog.String("user_id", user.UserID))
		return nil, apperrors.ErrUnauthorized
	}

	token, _, err := s.GenerateAccessToken(ctx, user)
	if err != nil {
		logger.ErrorContext(ctx, "failed to generate access token", slog.String("user_id", user.UserID), slog.String("error", err.Error()))
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	}, nil
}

// Register creates a new company with the caller as its first user, who
// becomes the company admin. The company is saved before the user so the
// user's company foreign key resolves.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.userRepo.FindUserByEmail(ctx, req.Email); err == nil {
		return nil, apperrors.NewAppError(409, "a user with this email already exists", apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		logger.ErrorContext(ctx, "failed to check email for registration", slog.String("error", err.Error()))
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to hash password", err)
	}

	now := time.Now().UTC()
	userID := uuid.NewString()
	company := domain.Company{
		CompanyID:    uuid.NewString(),
		Name:         req.CompanyName,
		CurrencyCode: strings.ToUpper(req.CurrencyCode),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	user := domain.User{
		UserID:       userID,
		CompanyID:    company.CompanyID,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.companyRepo.SaveCompany(ctx, company); err != nil {
		logger.ErrorContext(ctx, "failed to save company during registration", slog.String("error", err.Error()))
		return nil, err
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		logger.ErrorContext(ctx, "failed to save user during registration", slog.String("company_id", company.CompanyID), slog.String("error", err.Error()))
		return nil, err
	}

	token, _, err := s.GenerateAccessToken(ctx, &user)
	if err != nil {
		logger.ErrorContext(ctx, "failed to generate access token", slog.String("user_id", user.UserID), slog.String("error", err.Error()))
		return nil, err
	}

	return &dto.RegisterResponse{
		Token:   token,
		User:    dto.ToUserResponse(&user),
		Company: dto.ToCompanyResponse(&company),
	}, nil
}

// GenerateAccessToken creates a signed JWT carrying the user and company
// identity, returning the token and its expiry.
func (s *authService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	now := time.Now().UTC()
	expiryTime := now.Add(s.cfg.JWTExpiryDuration)

	claims := domain.AccessTokenClaims{
		CompanyID: user.CompanyID,
		Role:      string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UserID,
			Issuer:    s.cfg.JWTIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiryTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", time.Time{}, apperrors.NewAppError(500, "failed to sign access token", err)
	}

	return signed, expiryTime, nil
}
