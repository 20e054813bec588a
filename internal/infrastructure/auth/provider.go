package auth

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/smartsolar/backend/internal/domain/document"
	"github.com/smartsolar/backend/internal/domain/identity"
	"github.com/smartsolar/backend/internal/domain/shared"
	"github.com/smartsolar/backend/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

// CredentialSource looks up sign-in credentials. Implemented by
// persistence.CredentialStore.
type CredentialSource interface {
	FindByEmail(ctx context.Context, email string) (*persistence.Credential, error)
}

// Ensure Provider implements document.IdentityProvider
var _ document.IdentityProvider = (*Provider)(nil)

// Provider implements the email/password identity side of the gateway:
// bcrypt credentials, signed session tokens, revocation on sign-out and
// a per-email lockout after repeated failures.
type Provider struct {
	credentials CredentialSource
	tokens      *TokenService
	revocation  RevocationStore
	logger      *zap.Logger

	maxAttempts  int
	lockDuration time.Duration

	mu       sync.Mutex
	failures map[string]*attemptWindow // keyed by normalized email
}

type attemptWindow struct {
	count       int
	lockedUntil time.Time
}

// NewProvider creates an identity provider.
func NewProvider(
	credentials CredentialSource,
	tokens *TokenService,
	revocation RevocationStore,
	maxAttempts int,
	lockDuration time.Duration,
	logger *zap.Logger,
) *Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Provider{
		credentials:  credentials,
		tokens:       tokens,
		revocation:   revocation,
		logger:       logger,
		maxAttempts:  maxAttempts,
		lockDuration: lockDuration,
		failures:     make(map[string]*attemptWindow),
	}
}

// SignIn verifies email/password and issues a session.
func (p *Provider) SignIn(ctx context.Context, email, password string) (*document.Session, error) {
	key := strings.ToLower(strings.TrimSpace(email))

	if p.isLocked(key) {
		return nil, identity.ErrTooManyAttempts
	}

	cred, err := p.credentials.FindByEmail(ctx, key)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			p.recordFailure(key)
			return nil, identity.ErrUserNotFound
		}
		p.logger.Error("credential lookup failed", zap.Error(err))
		return nil, identity.ErrInvalidCredentials
	}

	if !CheckPassword(password, cred.PasswordHash) {
		p.recordFailure(key)
		return nil, identity.ErrWrongPassword
	}

	p.clearFailures(key)

	token, expiresAt, err := p.tokens.Generate(cred.UserID, cred.Email)
	if err != nil {
		p.logger.Error("failed to issue session token", zap.Error(err))
		return nil, identity.ErrInvalidCredentials
	}

	return &document.Session{
		Token:     token,
		UserID:    cred.UserID,
		Email:     cred.Email,
		ExpiresAt: expiresAt,
	}, nil
}

// SignOut revokes the session carried by token. An invalid or expired
// token has nothing left to revoke and is not an error.
func (p *Provider) SignOut(ctx context.Context, token string) error {
	claims, err := p.tokens.Validate(token)
	if err != nil {
		return nil
	}
	return p.revocation.Revoke(ctx, claims.ID, claims.GetRemainingTTL())
}

// Current resolves a bearer token to its live session.
func (p *Provider) Current(ctx context.Context, token string) (*document.Session, error) {
	claims, err := p.tokens.Validate(token)
	if err != nil {
		return nil, err
	}

	revoked, err := p.revocation.IsRevoked(ctx, claims.ID)
	if err != nil {
		p.logger.Error("revocation check failed", zap.Error(err))
		return nil, ErrInvalidToken
	}
	if revoked {
		return nil, ErrTokenRevoked
	}

	return &document.Session{
		Token:     token,
		UserID:    claims.UserID,
		Email:     claims.Email,
		ExpiresAt: claims.GetExpiresAtTime(),
	}, nil
}

func (p *Provider) isLocked(key string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	w, ok := p.failures[key]
	if !ok {
		return false
	}
	if w.lockedUntil.IsZero() {
		return false
	}
	if time.Now().After(w.lockedUntil) {
		delete(p.failures, key)
		return false
	}
	return true
}

func (p *Provider) recordFailure(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	w, ok := p.failures[key]
	if !ok {
		w = &attemptWindow{}
		p.failures[key] = w
	}
	w.count++
	if w.count >= p.maxAttempts {
		w.lockedUntil = time.Now().Add(p.lockDuration)
		p.logger.Warn("account locked after repeated sign-in failures",
			zap.Int("attempts", w.count))
	}
}

func (p *Provider) clearFailures(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.failures, key)
}
