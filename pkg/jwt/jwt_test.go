package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateAccessToken(t *testing.T) {
	manager := NewManager("test-secret", 15*time.Minute, 24*time.Hour)

	token, err := manager.GenerateAccessToken("user-1", "alice")
	require.NoError(t, err)

	claims, err := manager.ValidateAccessToken(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
	require.Equal(t, "alice", claims.Username)
	require.Equal(t, "access", claims.Type)
}

func TestRefreshTokenRejectedAsAccess(t *testing.T) {
	manager := NewManager("test-secret", 15*time.Minute, 24*time.Hour)

	refresh, err := manager.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	_, err = manager.ValidateAccessToken(refresh)
	require.Error(t, err)

	claims, err := manager.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	require.Equal(t, "refresh", claims.Type)
}

func TestRefreshTokensAreUnique(t *testing.T) {
	manager := NewManager("test-secret", 15*time.Minute, 24*time.Hour)

	first, err := manager.GenerateRefreshToken("user-1")
	require.NoError(t, err)
	second, err := manager.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	// Tokens minted back to back must still differ
	require.NotEqual(t, first, second)
}

func TestValidateWrongSecret(t *testing.T) {
	manager := NewManager("test-secret", 15*time.Minute, 24*time.Hour)
	other := NewManager("other-secret", 15*time.Minute, 24*time.Hour)

	token, err := manager.GenerateAccessToken("user-1", "alice")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	require.Error(t, err)
}

func TestValidateExpiredToken(t *testing.T) {
	manager := NewManager("test-secret", -time.Minute, 24*time.Hour)

	token, err := manager.GenerateAccessToken("user-1", "alice")
	require.NoError(t, err)

	_, err = manager.ValidateToken(token)
	require.Error(t, err)
}
