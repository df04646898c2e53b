package repositories

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a user within a company by its unique identifier.
	FindUserByID(ctx context.Context, companyID string, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email address, across companies.
	// Used by the login flow before any company scope exists.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// ListUsers retrieves the users of a company ordered by name.
	ListUsers(ctx context.Context, companyID string, limit int, offset int) ([]domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates an existing user's details.
	UpdateUser(ctx context.Context, user domain.User) error

	// DeleteUser removes a user from a company.
	DeleteUser(ctx context.Context, companyID string, userID string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
