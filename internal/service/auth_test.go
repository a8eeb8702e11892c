package service

import (
	"context"
	"testing"
	"time"

	"github.com/mosg85/Angeln-Eventplaner/internal/auth"
	"github.com/mosg85/Angeln-Eventplaner/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func newAuthService(t *testing.T, snap *domain.Snapshot) *AuthService {
	t.Helper()
	return NewAuthService(newGuard(t, snap), testSecret, time.Hour, time.Hour, newTestLogger(t))
}

func authSnapshot(t *testing.T) *domain.Snapshot {
	t.Helper()
	hash, err := auth.HashPassword("geheim123")
	require.NoError(t, err)
	return &domain.Snapshot{
		Users: []domain.User{
			{ID: "u1", Name: "Anna", Email: "anna@example.com", PasswordHash: hash, Role: domain.RoleUser},
		},
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc := newAuthService(t, authSnapshot(t))

	token, user, err := svc.Login(context.Background(), "anna@example.com", "geheim123")

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)

	claims, err := auth.ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, string(domain.RoleUser), claims.Role)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := newAuthService(t, authSnapshot(t))

	_, _, err := svc.Login(context.Background(), "anna@example.com", "falsch123")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := newAuthService(t, authSnapshot(t))

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "geheim123")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Me(t *testing.T) {
	svc := newAuthService(t, authSnapshot(t))

	user, err := svc.Me(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "anna@example.com", user.Email)

	_, err = svc.Me(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestAuthService_ForgotPassword_IssuesToken(t *testing.T) {
	snap := authSnapshot(t)
	svc := newAuthService(t, snap)

	token, err := svc.ForgotPassword(context.Background(), "anna@example.com")

	require.NoError(t, err)
	assert.Len(t, token, 64)

	require.Len(t, snap.ResetTokens, 1)
	assert.Equal(t, token, snap.ResetTokens[0].Token)
	assert.Equal(t, "anna@example.com", snap.ResetTokens[0].Email)
	assert.False(t, snap.ResetTokens[0].Used)

	// The issued token is what gets handed to the user, so it must be
	// accepted verbatim by the reset step.
	require.NoError(t, svc.ResetPassword(context.Background(), token, "nagelneu123"))
}

func TestAuthService_ForgotPassword_ReplacesEarlierToken(t *testing.T) {
	snap := authSnapshot(t)
	svc := newAuthService(t, snap)

	first, err := svc.ForgotPassword(context.Background(), "anna@example.com")
	require.NoError(t, err)
	second, err := svc.ForgotPassword(context.Background(), "anna@example.com")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	require.Len(t, snap.ResetTokens, 1)
	assert.Equal(t, second, snap.ResetTokens[0].Token)
}

func TestAuthService_ForgotPassword_UnknownEmail(t *testing.T) {
	snap := authSnapshot(t)
	svc := newAuthService(t, snap)

	token, err := svc.ForgotPassword(context.Background(), "nobody@example.com")

	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Empty(t, snap.ResetTokens)
}

func TestAuthService_ResetPassword_Success(t *testing.T) {
	snap := authSnapshot(t)
	svc := newAuthService(t, snap)

	token, err := svc.ForgotPassword(context.Background(), "anna@example.com")
	require.NoError(t, err)

	require.NoError(t, svc.ResetPassword(context.Background(), token, "neuespasswort"))

	assert.True(t, auth.CheckPasswordHash("neuespasswort", snap.UserByID("u1").PasswordHash))
	assert.True(t, snap.ResetTokens[0].Used)
}

func TestAuthService_ResetPassword_TokenSingleUse(t *testing.T) {
	snap := authSnapshot(t)
	svc := newAuthService(t, snap)

	token, err := svc.ForgotPassword(context.Background(), "anna@example.com")
	require.NoError(t, err)

	require.NoError(t, svc.ResetPassword(context.Background(), token, "neuespasswort"))
	err = svc.ResetPassword(context.Background(), token, "nochmalneu1")

	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestAuthService_ResetPassword_Expired(t *testing.T) {
	snap := authSnapshot(t)
	snap.ResetTokens = []domain.ResetToken{{
		Email:     "anna@example.com",
		Token:     "expired-token",
		ExpiresAt: time.Now().Add(-time.Minute),
	}}
	svc := newAuthService(t, snap)

	err := svc.ResetPassword(context.Background(), "expired-token", "neuespasswort")

	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestAuthService_ResetPassword_UnknownToken(t *testing.T) {
	svc := newAuthService(t, authSnapshot(t))

	err := svc.ResetPassword(context.Background(), "no-such-token", "neuespasswort")

	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestAuthService_ResetPassword_ShortPassword(t *testing.T) {
	svc := newAuthService(t, authSnapshot(t))

	err := svc.ResetPassword(context.Background(), "irrelevant", "kurz")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAuthService_PurgeExpiredTokens(t *testing.T) {
	snap := authSnapshot(t)
	snap.ResetTokens = []domain.ResetToken{
		{Email: "a@example.com", Token: "t1", ExpiresAt: time.Now().Add(-time.Minute)},
		{Email: "b@example.com", Token: "t2", ExpiresAt: time.Now().Add(time.Hour), Used: true},
		{Email: "c@example.com", Token: "t3", ExpiresAt: time.Now().Add(time.Hour)},
	}
	svc := newAuthService(t, snap)

	purged, err := svc.PurgeExpiredTokens(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, purged)
	require.Len(t, snap.ResetTokens, 1)
	assert.Equal(t, "t3", snap.ResetTokens[0].Token)
}
