package domain

// UserRole defines the roles a user can have within their company.
type UserRole string

const (
	RoleAdmin  UserRole = "ADMIN"
	RoleMember UserRole = "MEMBER"
)

// User represents an authenticated principal belonging to exactly one company.
type User struct {
	UserID       string   `json:"userID"` // Primary Key (UUID)
	CompanyID    string   `json:"companyID"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"` // bcrypt hash, never serialized
	Role         UserRole `json:"role"`
	AuditFields
}
