package middleware

import "github.com/gin-gonic/gin"

const (
	// userIDKey is the key used to store the authenticated user's ID.
	userIDKey = contextKey("userID")
	// companyIDKey is the key used to store the authenticated user's company scope.
	companyIDKey = contextKey("companyID")
	// roleKey is the key used to store the authenticated user's role.
	roleKey = contextKey("role")
)

// GetRoleFromContext retrieves the authenticated user's role from the Gin context.
func GetRoleFromContext(c *gin.Context) (string, bool) {
	roleVal, exists := c.Get(string(roleKey))
	if !exists {
		roleVal := c.Request.Context().Value(roleKey)
		if roleVal != nil {
			return roleVal.(string), true
		}
		return "", false
	}

	role, ok := roleVal.(string)
	if !ok {
		return "", false
	}

	return role, true
}

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		// check in the request context as well
		userIDVal := c.Request.Context().Value(userIDKey)
		if userIDVal != nil {
			return userIDVal.(string), true
		}
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}

	return userID, true
}

// GetCompanyIDFromContext retrieves the company scope of the authenticated
// request from the Gin context. Every tenant-scoped handler derives its
// company from here, never from the request payload.
func GetCompanyIDFromContext(c *gin.Context) (string, bool) {
	companyIDVal, exists := c.Get(string(companyIDKey))
	if !exists {
		companyIDVal := c.Request.Context().Value(companyIDKey)
		if companyIDVal != nil {
			return companyIDVal.(string), true
		}
		return "", false
	}

	companyID, ok := companyIDVal.(string)
	if !ok {
		return "", false
	}

	return companyID, true
}
