package dashboard

import (
	"context"
	"errors"

	"github.com/smartsolar/backend/internal/domain/document"
	"github.com/smartsolar/backend/internal/domain/identity"
	"github.com/smartsolar/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// SessionGate decides who may see the dashboard: a caller is authorized
// only when the identity provider vouches for a session AND the profile
// document behind that identity carries the admin role. The role lives
// on the profile, not in the session, so a demotion takes effect on the
// next check. An authenticated non-admin has their session terminated
// on the spot rather than left lingering.
type SessionGate struct {
	provider document.IdentityProvider
	store    document.Store
	logger   *zap.Logger
}

// NewSessionGate creates a gate over the given identity provider and
// profile store.
func NewSessionGate(provider document.IdentityProvider, store document.Store, logger *zap.Logger) *SessionGate {
	return &SessionGate{provider: provider, store: store, logger: logger}
}

// Login signs in with email/password and verifies the admin role. A
// valid credential without the admin role is signed back out and
// reported as access denied.
func (g *SessionGate) Login(ctx context.Context, email, password string) (*document.Session, error) {
	session, err := g.provider.SignIn(ctx, email, password)
	if err != nil {
		g.logger.Warn("sign-in rejected", zap.String("email", email), zap.Error(err))
		return nil, err
	}

	if !g.isAdmin(ctx, session.UserID) {
		if err := g.provider.SignOut(ctx, session.Token); err != nil {
			g.logger.Error("failed to terminate non-admin session",
				zap.String("user_id", session.UserID), zap.Error(err))
		}
		g.logger.Warn("non-admin login denied", zap.String("email", email))
		return nil, identity.ErrNotAdmin
	}

	g.logger.Info("admin logged in", zap.String("user_id", session.UserID))
	return session, nil
}

// Authorize resolves a bearer token to an admin session. Anything else
// (no session, expired token, missing profile, wrong role) returns
// false, and a live non-admin session is terminated.
func (g *SessionGate) Authorize(ctx context.Context, token string) (*document.Session, bool) {
	session, err := g.provider.Current(ctx, token)
	if err != nil || session == nil {
		return nil, false
	}

	if !g.isAdmin(ctx, session.UserID) {
		if err := g.provider.SignOut(ctx, session.Token); err != nil {
			g.logger.Error("failed to terminate non-admin session",
				zap.String("user_id", session.UserID), zap.Error(err))
		}
		return nil, false
	}
	return session, true
}

// Logout terminates the session carried by token.
func (g *SessionGate) Logout(ctx context.Context, token string) error {
	return g.provider.SignOut(ctx, token)
}

func (g *SessionGate) isAdmin(ctx context.Context, userID string) bool {
	doc, err := g.store.Get(ctx, document.Users, userID)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			g.logger.Warn("profile lookup failed during authorization",
				zap.String("user_id", userID), zap.Error(err))
		}
		return false
	}
	return identity.ParseUser(*doc).IsAdmin()
}
