package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/smartsolar/backend/internal/domain/identity"
	"github.com/smartsolar/backend/internal/domain/shared"
	"github.com/smartsolar/backend/internal/infrastructure/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubCredentials struct {
	byEmail map[string]*persistence.Credential
	lookups int
}

func (s *stubCredentials) FindByEmail(_ context.Context, email string) (*persistence.Credential, error) {
	s.lookups++
	cred, ok := s.byEmail[email]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return cred, nil
}

func newTestProvider(t *testing.T, maxAttempts int, lockDuration time.Duration) (*Provider, *stubCredentials) {
	t.Helper()
	hash, err := HashPassword("correct-horse")
	require.NoError(t, err)

	creds := &stubCredentials{byEmail: map[string]*persistence.Credential{
		"root@example.com": {UserID: "u1", Email: "root@example.com", PasswordHash: hash},
	}}
	tokens := NewTokenService(testSessionConfig())
	provider := NewProvider(creds, tokens, NewMemoryRevocationStore(), maxAttempts, lockDuration, zap.NewNop())
	return provider, creds
}

func TestProviderSignIn(t *testing.T) {
	provider, _ := newTestProvider(t, 5, time.Minute)

	session, err := provider.SignIn(context.Background(), "root@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, "u1", session.UserID)
	assert.Equal(t, "root@example.com", session.Email)
	assert.NotEmpty(t, session.Token)
	assert.False(t, session.ExpiresAt.IsZero())

	// The issued token resolves back to the same session.
	current, err := provider.Current(context.Background(), session.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", current.UserID)
}

func TestProviderSignInNormalizesEmail(t *testing.T) {
	provider, _ := newTestProvider(t, 5, time.Minute)

	session, err := provider.SignIn(context.Background(), "  Root@Example.COM ", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, "u1", session.UserID)
}

func TestProviderSignInFailures(t *testing.T) {
	provider, _ := newTestProvider(t, 5, time.Minute)

	_, err := provider.SignIn(context.Background(), "ghost@example.com", "whatever")
	assert.ErrorIs(t, err, identity.ErrUserNotFound)

	_, err = provider.SignIn(context.Background(), "root@example.com", "wrong")
	assert.ErrorIs(t, err, identity.ErrWrongPassword)
}

func TestProviderLockout(t *testing.T) {
	provider, creds := newTestProvider(t, 3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := provider.SignIn(ctx, "root@example.com", "wrong")
		assert.ErrorIs(t, err, identity.ErrWrongPassword)
	}

	// Locked: even the correct password is rejected without a lookup.
	lookupsBefore := creds.lookups
	_, err := provider.SignIn(ctx, "root@example.com", "correct-horse")
	assert.ErrorIs(t, err, identity.ErrTooManyAttempts)
	assert.Equal(t, lookupsBefore, creds.lookups)

	// Case and whitespace variants hit the same lock.
	_, err = provider.SignIn(ctx, " ROOT@example.com", "correct-horse")
	assert.ErrorIs(t, err, identity.ErrTooManyAttempts)
}

func TestProviderLockoutExpires(t *testing.T) {
	provider, _ := newTestProvider(t, 2, 10*time.Millisecond)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		provider.SignIn(ctx, "root@example.com", "wrong")
	}
	_, err := provider.SignIn(ctx, "root@example.com", "correct-horse")
	require.ErrorIs(t, err, identity.ErrTooManyAttempts)

	time.Sleep(20 * time.Millisecond)

	_, err = provider.SignIn(ctx, "root@example.com", "correct-horse")
	assert.NoError(t, err)
}

func TestProviderSuccessClearsFailures(t *testing.T) {
	provider, _ := newTestProvider(t, 3, time.Minute)
	ctx := context.Background()

	provider.SignIn(ctx, "root@example.com", "wrong")
	provider.SignIn(ctx, "root@example.com", "wrong")
	_, err := provider.SignIn(ctx, "root@example.com", "correct-horse")
	require.NoError(t, err)

	// The counter restarted, so two more failures do not lock.
	provider.SignIn(ctx, "root@example.com", "wrong")
	provider.SignIn(ctx, "root@example.com", "wrong")
	_, err = provider.SignIn(ctx, "root@example.com", "correct-horse")
	assert.NoError(t, err)
}

func TestProviderSignOutRevokes(t *testing.T) {
	provider, _ := newTestProvider(t, 5, time.Minute)
	ctx := context.Background()

	session, err := provider.SignIn(ctx, "root@example.com", "correct-horse")
	require.NoError(t, err)

	require.NoError(t, provider.SignOut(ctx, session.Token))

	_, err = provider.Current(ctx, session.Token)
	assert.ErrorIs(t, err, ErrTokenRevoked)
}

func TestProviderSignOutInvalidTokenIsNoop(t *testing.T) {
	provider, _ := newTestProvider(t, 5, time.Minute)
	assert.NoError(t, provider.SignOut(context.Background(), "garbage"))
}

func TestProviderCurrentInvalidToken(t *testing.T) {
	provider, _ := newTestProvider(t, 5, time.Minute)

	_, err := provider.Current(context.Background(), strings.Repeat("x", 40))
	assert.ErrorIs(t, err, ErrInvalidToken)
}
