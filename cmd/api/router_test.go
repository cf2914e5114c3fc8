package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"bookhub-backend/internal/config"
	"bookhub-backend/pkg/container"
	"bookhub-backend/pkg/jwt"
)

const testSecret = "test-secret"

// newTestRouter wires the route table with an empty container. Handlers
// never run in these tests; only the middleware chain is exercised.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return SetupRouter(&container.Container{
		Config: &config.Config{
			JWT: config.JWTConfig{Secret: testSecret},
		},
	})
}

func doRequest(router *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"book export", http.MethodGet, "/api/books/export"},
		{"create book", http.MethodPost, "/api/books"},
		{"delete book", http.MethodDelete, "/api/books/1"},
		{"create author", http.MethodPost, "/api/authors"},
		{"own profile", http.MethodGet, "/api/users/me"},
		{"follow status", http.MethodGet, "/api/users/00000000-0000-0000-0000-000000000001/follow"},
		{"feed", http.MethodGet, "/api/feed"},
		{"create post", http.MethodPost, "/api/posts"},
		{"notifications", http.MethodGet, "/api/notifications"},
		{"libraries", http.MethodGet, "/api/library/libraries"},
		{"group members", http.MethodGet, "/api/groups/Editors/members"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, tt.method, tt.path, "")
			require.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestExportRequiresAuthentication(t *testing.T) {
	router := newTestRouter()

	w := doRequest(router, http.MethodGet, "/api/books/export", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// A valid access token passes the middleware gate
	manager := jwt.NewManager(testSecret, 15*time.Minute, 24*time.Hour)
	token, err := manager.GenerateAccessToken("00000000-0000-0000-0000-000000000001", "alice")
	require.NoError(t, err)

	w = doRequest(router, http.MethodGet, "/api/books/export", token)
	require.NotEqual(t, http.StatusUnauthorized, w.Code)
}

func TestPublicBookRoutesStayOpen(t *testing.T) {
	router := newTestRouter()

	// Anonymous listing and detail reads must not hit the auth gate
	w := doRequest(router, http.MethodGet, "/api/books", "")
	require.NotEqual(t, http.StatusUnauthorized, w.Code)

	w = doRequest(router, http.MethodGet, "/api/books/42", "")
	require.NotEqual(t, http.StatusUnauthorized, w.Code)
}
