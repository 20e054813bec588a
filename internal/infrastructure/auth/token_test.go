package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/smartsolar/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSessionConfig() config.SessionConfig {
	return config.SessionConfig{
		Secret:     strings.Repeat("k", 32),
		Expiration: time.Hour,
		Issuer:     "solar-admin",
	}
}

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService(testSessionConfig())

	token, expiresAt, err := svc.Generate("u1", "root@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "root@example.com", claims.Email)
	assert.Equal(t, "solar-admin", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, expiresAt, claims.GetExpiresAtTime(), time.Second)
	assert.Greater(t, claims.GetRemainingTTL(), 59*time.Minute)
}

func TestTokenUniqueJTI(t *testing.T) {
	svc := NewTokenService(testSessionConfig())

	first, _, err := svc.Generate("u1", "a@example.com")
	require.NoError(t, err)
	second, _, err := svc.Generate("u1", "a@example.com")
	require.NoError(t, err)

	c1, err := svc.Validate(first)
	require.NoError(t, err)
	c2, err := svc.Validate(second)
	require.NoError(t, err)
	assert.NotEqual(t, c1.ID, c2.ID)
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := NewTokenService(testSessionConfig())
	token, _, err := issuer.Generate("u1", "a@example.com")
	require.NoError(t, err)

	other := testSessionConfig()
	other.Secret = strings.Repeat("x", 32)
	verifier := NewTokenService(other)

	_, err = verifier.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenExpired(t *testing.T) {
	cfg := testSessionConfig()
	cfg.Expiration = -time.Minute
	svc := NewTokenService(cfg)

	token, _, err := svc.Generate("u1", "a@example.com")
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenGarbage(t *testing.T) {
	svc := NewTokenService(testSessionConfig())
	_, err := svc.Validate("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2!")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2!", hash)

	assert.True(t, CheckPassword("hunter2!", hash))
	assert.False(t, CheckPassword("hunter3!", hash))
}

func TestPasswordTooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("p", 73))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}
