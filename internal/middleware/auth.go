package middleware

import (
	"context"
	"net/http"
	"strings"

	"homeservices/internal/domain"
	jwtsvc "homeservices/internal/pkg/jwt"
	"homeservices/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

type userResolver interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Auth validates the bearer token and resolves the caller into an
// explicit Identity stored on the request context. Any malformed,
// expired, or dangling token is rejected as unauthenticated without
// leaking which check failed.
func Auth(jwt *jwtsvc.Service, users userResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.AbortError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing Authorization header")
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			response.AbortError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid Authorization header")
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.AbortError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Empty token")
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token")
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil || user == nil || !user.IsActive {
			response.AbortError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token")
			return
		}

		c.Set(identityKey, domain.Identity{
			UserID:   user.ID,
			Username: user.Username,
			UserType: user.UserType,
			Role:     user.Role,
		})
		c.Set("user_id", user.ID)
		c.Set("role", user.Role)

		c.Next()
	}
}

// IdentityFrom returns the resolved caller set by Auth.
func IdentityFrom(c *gin.Context) (domain.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return domain.Identity{}, false
	}
	id, ok := v.(domain.Identity)
	return id, ok
}
