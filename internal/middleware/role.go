package middleware

import (
	"net/http"

	"homeservices/internal/domain"
	"homeservices/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireUserType ensures the authenticated caller has the given user type.
func RequireUserType(required domain.UserType) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFrom(c)
		if !ok {
			response.AbortError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			return
		}

		if identity.UserType != required {
			response.AbortError(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			return
		}

		c.Next()
	}
}

// ProviderOnly gates provider-facing endpoints.
func ProviderOnly() gin.HandlerFunc {
	return RequireUserType(domain.TypeServiceProvider)
}

// AdminOnly gates platform-admin endpoints.
func AdminOnly() gin.HandlerFunc {
	return RequireUserType(domain.TypePlatformProvider)
}
