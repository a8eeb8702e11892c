package auth

import (
	"testing"
	"time"

	"github.com/mosg85/Angeln-Eventplaner/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundtrip(t *testing.T) {
	hash, err := HashPassword("geheim123")
	require.NoError(t, err)

	assert.NotEqual(t, "geheim123", hash)
	assert.True(t, CheckPasswordHash("geheim123", hash))
	assert.False(t, CheckPasswordHash("falsch123", hash))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("geheim123"))
	assert.ErrorIs(t, ValidatePassword("kurz"), domain.ErrValidation)
}

func TestTokenRoundtrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken(secret, "u1", domain.RoleAdmin, time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, string(domain.RoleAdmin), claims.Role)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken([]byte("secret-a"), "u1", domain.RoleUser, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken([]byte("secret-b"), token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestParseToken_Expired(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken(secret, "u1", domain.RoleUser, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(secret, token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}
