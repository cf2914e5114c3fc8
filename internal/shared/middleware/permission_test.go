package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fakeChecker struct {
	perms map[string]bool
	err   error
}

func (f *fakeChecker) HasPermission(_ context.Context, _ uuid.UUID, codename string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.perms[codename], nil
}

func doPermissionRequest(t *testing.T, checker PermissionChecker, codename string, authenticated bool) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()

	if authenticated {
		r.Use(func(c *gin.Context) {
			c.Set("userID", uuid.New())
		})
	}
	r.GET("/library", RequirePermission(checker, codename), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/library", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequirePermissionAllowed(t *testing.T) {
	checker := &fakeChecker{perms: map[string]bool{"can_view": true}}
	w := doPermissionRequest(t, checker, "can_view", true)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRequirePermissionDenied(t *testing.T) {
	checker := &fakeChecker{perms: map[string]bool{"can_view": true}}
	w := doPermissionRequest(t, checker, "can_delete", true)
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Contains(t, w.Body.String(), "missing permission: can_delete")
}

func TestRequirePermissionUnauthenticated(t *testing.T) {
	checker := &fakeChecker{perms: map[string]bool{"can_view": true}}
	w := doPermissionRequest(t, checker, "can_view", false)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequirePermissionCheckerError(t *testing.T) {
	checker := &fakeChecker{err: errors.New("db down")}
	w := doPermissionRequest(t, checker, "can_view", true)
	require.Equal(t, http.StatusInternalServerError, w.Code)
}
