package dto

// LoginRequest carries credentials for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the issued bearer token and the authenticated user.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// RegisterRequest carries the signup payload: a new company and its first
// user, who becomes the company admin.
type RegisterRequest struct {
	CompanyName  string `json:"companyName" binding:"required"`
	CurrencyCode string `json:"currencyCode" binding:"required,len=3"`
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
}

// RegisterResponse returns the created company, its admin user, and a
// bearer token so the caller is logged in immediately.
type RegisterResponse struct {
	Token   string          `json:"token"`
	User    UserResponse    `json:"user"`
	Company CompanyResponse `json:"company"`
}
