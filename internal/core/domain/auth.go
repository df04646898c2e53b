package domain

import "github.com/golang-jwt/jwt/v5"

// AccessTokenClaims are the JWT claims carried by an access token. The
// subject is the user ID; CompanyID scopes every request to one tenant.
type AccessTokenClaims struct {
	CompanyID string `json:"companyID"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}
