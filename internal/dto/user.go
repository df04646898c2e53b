package dto

import "github.com/finbooks/finbooks_backend/internal/core/domain"

// CreateUserRequest defines the payload for creating a user within the
// caller's company.
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"omitempty,oneof=ADMIN MEMBER"`
}

// UpdateUserRequest defines the payload for updating a user.
type UpdateUserRequest struct {
	Name *string `json:"name"`
	Role *string `json:"role" binding:"omitempty,oneof=ADMIN MEMBER"`
}

// UserResponse defines the user data returned by the API. The password hash
// is never exposed.
type UserResponse struct {
	UserID    string `json:"userID"`
	CompanyID string `json:"companyID"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// ListUsersResponse wraps a list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToUserResponse converts a domain.User to a UserResponse DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		CompanyID: u.CompanyID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
	}
}
