package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"bookhub-backend/pkg/jwt"
)

const testSecret = "test-secret"

func setupAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(testSecret), func(c *gin.Context) {
		userID, ok := CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no user in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": userID.String()})
	})
	return r
}

func doAuthRequest(t *testing.T, header string) *httptest.ResponseRecorder {
	t.Helper()
	r := setupAuthRouter()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	w := doAuthRequest(t, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "missing authorization header")
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	w := doAuthRequest(t, "just-a-token")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doAuthRequest(t, "Basic dXNlcjpwYXNz")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareAcceptsBothSchemes(t *testing.T) {
	manager := jwt.NewManager(testSecret, 15*time.Minute, 24*time.Hour)
	userID := "7f9c24e5-2f02-4b3a-9d86-1d45a4b0f1aa"

	token, err := manager.GenerateAccessToken(userID, "alice")
	require.NoError(t, err)

	for _, scheme := range []string{"Token", "Bearer"} {
		w := doAuthRequest(t, scheme+" "+token)
		require.Equal(t, http.StatusOK, w.Code, "scheme %s should be accepted", scheme)
		require.Contains(t, w.Body.String(), userID)
	}
}

func TestAuthMiddlewareRejectsRefreshToken(t *testing.T) {
	manager := jwt.NewManager(testSecret, 15*time.Minute, 24*time.Hour)

	refresh, err := manager.GenerateRefreshToken("7f9c24e5-2f02-4b3a-9d86-1d45a4b0f1aa")
	require.NoError(t, err)

	w := doAuthRequest(t, "Bearer "+refresh)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "invalid token type")
}

func TestAuthMiddlewareRejectsWrongSecret(t *testing.T) {
	manager := jwt.NewManager("another-secret", 15*time.Minute, 24*time.Hour)

	token, err := manager.GenerateAccessToken("7f9c24e5-2f02-4b3a-9d86-1d45a4b0f1aa", "alice")
	require.NoError(t, err)

	w := doAuthRequest(t, "Bearer "+token)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsGarbageToken(t *testing.T) {
	w := doAuthRequest(t, "Bearer not.a.jwt")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
