package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookhub-backend/pkg/logger"
)

// PermissionChecker resolves whether a user holds a permission codename
// through their group memberships. Implemented by the accesscontrol service.
type PermissionChecker interface {
	HasPermission(ctx context.Context, userID uuid.UUID, codename string) (bool, error)
}

// RequirePermission gates a route on a permission codename
// (can_view, can_create, can_edit, can_delete).
// Must run after AuthMiddleware.
func RequirePermission(checker PermissionChecker, codename string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "authentication required"},
			})
			c.Abort()
			return
		}

		allowed, err := checker.HasPermission(c.Request.Context(), userID, codename)
		if err != nil {
			logger.Error().Err(err).Msg("Permission check failed")
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   gin.H{"code": "INTERNAL_SERVER_ERROR", "message": "permission check failed"},
			})
			c.Abort()
			return
		}

		if !allowed {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   gin.H{"code": "FORBIDDEN", "message": "missing permission: " + codename},
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
