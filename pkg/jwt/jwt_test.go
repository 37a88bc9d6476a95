package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *Manager {
	return NewManager("test-secret", 15*time.Minute, 72*time.Hour)
}

func TestManager_AccessTokenRoundTrip(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateAccessToken("user-1", "dj@example.com")
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "dj@example.com", claims.Email)
	assert.Equal(t, "access", claims.Type)
}

func TestManager_RefreshTokenRoundTrip(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	claims, err := m.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "refresh", claims.Type)
}

func TestManager_TokenTypeMismatchRejected(t *testing.T) {
	m := newTestManager()

	access, err := m.GenerateAccessToken("user-1", "dj@example.com")
	require.NoError(t, err)
	refresh, err := m.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	_, err = m.ValidateRefreshToken(access)
	assert.Error(t, err)

	_, err = m.ValidateAccessToken(refresh)
	assert.Error(t, err)
}

func TestManager_WrongSecretRejected(t *testing.T) {
	token, err := newTestManager().GenerateAccessToken("user-1", "dj@example.com")
	require.NoError(t, err)

	other := NewManager("different-secret", 15*time.Minute, 72*time.Hour)
	_, err = other.ValidateAccessToken(token)

	assert.Error(t, err)
}

func TestManager_ExpiredTokenRejected(t *testing.T) {
	m := NewManager("test-secret", -time.Minute, 72*time.Hour)

	token, err := m.GenerateAccessToken("user-1", "dj@example.com")
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestManager_GarbageTokenRejected(t *testing.T) {
	_, err := newTestManager().ValidateToken("definitely not a jwt")

	assert.Error(t, err)
}
