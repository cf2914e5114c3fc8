package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthMiddleware validates the token carried in the Authorization header.
// Both "Token <t>" (the original wire contract of the API) and the more
// common "Bearer <t>" scheme are accepted; the token itself is a JWT.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(401, gin.H{"success": false, "error": gin.H{
				"code": "UNAUTHORIZED", "message": "missing authorization header",
			}})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || (parts[0] != "Token" && parts[0] != "Bearer") {
			c.JSON(401, gin.H{"success": false, "error": gin.H{
				"code": "UNAUTHORIZED", "message": "invalid authorization header format",
			}})
			c.Abort()
			return
		}
		token := parts[1]

		claims := jwt.MapClaims{}
		parsedToken, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})

		if err != nil || !parsedToken.Valid {
			c.JSON(401, gin.H{"success": false, "error": gin.H{
				"code": "UNAUTHORIZED", "message": "invalid token",
			}})
			c.Abort()
			return
		}

		// Refresh tokens must not be usable against the API
		if tokenType, _ := claims["type"].(string); tokenType != "access" {
			c.JSON(401, gin.H{"success": false, "error": gin.H{
				"code": "UNAUTHORIZED", "message": "invalid token type",
			}})
			c.Abort()
			return
		}

		userIDStr, ok := claims["user_id"].(string)
		if !ok {
			c.JSON(401, gin.H{"success": false, "error": gin.H{
				"code": "UNAUTHORIZED", "message": "invalid user ID in token",
			}})
			c.Abort()
			return
		}

		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			c.JSON(401, gin.H{"success": false, "error": gin.H{
				"code": "UNAUTHORIZED", "message": "invalid UUID format",
			}})
			c.Abort()
			return
		}

		c.Set("userID", userID)
		if username, ok := claims["username"].(string); ok {
			c.Set("username", username)
		}

		c.Next()
	}
}

// CurrentUserID returns the authenticated user's ID from the gin context.
// Only valid after AuthMiddleware has run.
func CurrentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get("userID")
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
