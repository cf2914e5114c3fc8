package utils

import (
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetEnvVariable reads an env var with a fallback default
func GetEnvVariable(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// ParsePagination reads limit/offset query params with clamping.
// Bad values fall back to defaults instead of erroring.
func ParsePagination(c *gin.Context) (limit, offset int) {
	limit = DefaultLimit
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}

	return limit, offset
}
