package auth

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerify(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	userID := uuid.New().String()

	token, err := manager.Generate(userID)
	require.NoError(t, err)

	claims, err := manager.Verify(token, TokenAccess)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.Subject)
	assert.Equal(t, TokenAccess, claims.TokenType)
}

func TestVerifyRejectsWrongTokenType(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	refresh, err := manager.GenerateRefresh("user-1")
	require.NoError(t, err)

	_, err = manager.Verify(refresh, TokenAccess)
	assert.Error(t, err)

	// and the refresh path rejects access tokens
	access, err := manager.Generate("user-1")
	require.NoError(t, err)
	_, err = manager.Verify(access, TokenRefresh)
	assert.Error(t, err)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	other := NewJWTManager("other-secret", time.Hour, 24*time.Hour)

	token, err := manager.Generate("user-1")
	require.NoError(t, err)

	_, err = other.Verify(token, TokenAccess)
	assert.Error(t, err)
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	token, err := manager.Generate("user-1")
	require.NoError(t, err)

	_, err = manager.Verify(token+"x", TokenAccess)
	assert.Error(t, err)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	manager := NewJWTManager("test-secret", -time.Minute, 24*time.Hour)

	token, err := manager.Generate("user-1")
	require.NoError(t, err)

	_, err = manager.Verify(token, TokenAccess)
	assert.Error(t, err)
}

func TestExpiry(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	token, err := manager.Generate("user-1")
	require.NoError(t, err)

	expiry, err := manager.Expiry(token)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiry, 5*time.Second)
}

func TestExtractTokenFromHeader(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "/", nil)

	_, err := ExtractTokenFromHeader(req)
	assert.Error(t, err)

	req.Header.Set("Authorization", "Basic abc")
	_, err = ExtractTokenFromHeader(req)
	assert.Error(t, err)

	req.Header.Set("Authorization", "Bearer my-token")
	token, err := ExtractTokenFromHeader(req)
	require.NoError(t, err)
	assert.Equal(t, "my-token", token)
}
