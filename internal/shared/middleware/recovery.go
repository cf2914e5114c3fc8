package middleware

import (
	"github.com/gin-gonic/gin"

	"bookhub-backend/internal/shared/response"
	"bookhub-backend/pkg/logger"
)

// Recovery turns a handler panic into a 500 envelope instead of
// tearing down the connection
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error().
					Str("request_id", c.GetString("request_id")).
					Str("path", c.Request.URL.Path).
					Interface("panic", err).
					Msg("Panic recovered")

				response.InternalServerError(c, "Internal server error")
				c.Abort()
			}
		}()

		c.Next()
	}
}
