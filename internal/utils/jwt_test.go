package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	manager := NewJWTManager("secret", "HS256", time.Hour)

	token, err := manager.GenerateToken(42, "a@example.com")
	require.NoError(t, err)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "a@example.com", claims.Email)
}

func TestJWTRejectsExpiredToken(t *testing.T) {
	manager := NewJWTManager("secret", "HS256", -time.Minute)

	token, err := manager.GenerateToken(42, "a@example.com")
	require.NoError(t, err)

	_, err = manager.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	manager := NewJWTManager("secret", "HS256", time.Hour)
	other := NewJWTManager("other-secret", "HS256", time.Hour)

	token, err := manager.GenerateToken(42, "a@example.com")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", hash)

	assert.NoError(t, CheckPassword("secret", hash))
	assert.Error(t, CheckPassword("wrong", hash))
}
