package middleware

import (
	"strings"

	"giglink_backend/internal/auth"
	"giglink_backend/internal/logger"
	"giglink_backend/internal/models"
	"giglink_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

const (
	// Gin context keys set by AuthMiddleware.
	ContextUserIDKey = "userID"
	ContextRoleKey   = "userRole"
)

// AuthMiddleware validates the Bearer token and stores the caller identity
// in the gin context. Everything behind it can trust GetUserID.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization header required"))
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization header must be 'Bearer {token}'"))
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(parts[1])
		if err != nil {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextRoleKey, claims.Role)

		// Propagate into the request context for logging.
		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRoles gates a route group by account kind. This is signup-role
// gating only; who may act on an application or connection is decided per
// record in the services.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get(ContextRoleKey)
		if !exists {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
			c.Abort()
			return
		}

		role := models.UserRole(roleVal.(string))
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
		c.Abort()
	}
}

// GetUserID returns the authenticated caller id, or "" when the request is
// unauthenticated.
func GetUserID(c *gin.Context) string {
	if id, exists := c.Get(ContextUserIDKey); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}
