package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
	"github.com/finbooks/finbooks_backend/internal/middleware"
	"github.com/finbooks/finbooks_backend/internal/utils"
)

// userService manages the users of a company.
type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, companyID string, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, companyID, userID)
}

func (s *userService) ListUsers(ctx context.Context, companyID string, limit int, offset int) ([]domain.User, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.userRepo.ListUsers(ctx, companyID, limit, offset)
}

// CreateUser persists a new user in the caller's company with a bcrypt
// password hash.
func (s *userService) CreateUser(ctx context.Context, companyID string, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.ErrorContext(ctx, "failed to hash password", slog.String("error", err.Error()))
		return nil, err
	}

	role := domain.RoleMember
	if req.Role != "" {
		role = domain.UserRole(req.Role)
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:       uuid.NewString(),
		CompanyID:    companyID,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *userService) UpdateUser(ctx context.Context, companyID string, userID string, req dto.UpdateUserRequest, updaterUserID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, companyID, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Role != nil {
		user.Role = domain.UserRole(*req.Role)
	}
	user.LastUpdatedAt = time.Now().UTC()
	user.LastUpdatedBy = updaterUserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, companyID string, userID string, deleterUserID string) error {
	return s.userRepo.DeleteUser(ctx, companyID, userID)
}
