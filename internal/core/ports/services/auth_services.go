package services

import (
	"context"
	"time"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/finbooks/finbooks_backend/internal/dto"
)

// AuthSvcFacade defines the interface for authentication services.
type AuthSvcFacade interface {
	// Login verifies the credentials and returns a signed access token with
	// the authenticated user.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)

	// Register creates a new company with its first user as admin and
	// returns a signed access token so the caller is logged in immediately.
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error)

	// GenerateAccessToken creates a signed JWT carrying the user and company
	// identity, returning the token and its expiry.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}
