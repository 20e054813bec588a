package dashboard

import (
	"context"
	"errors"
	"sync"

	"github.com/smartsolar/backend/internal/domain/document"
	"github.com/smartsolar/backend/internal/domain/identity"
	"github.com/smartsolar/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// UserResolver resolves the user id referenced by orders and bookings
// to the customer's profile. Results are cached for the life of the
// process and never invalidated: a profile edited elsewhere shows up
// only after a restart, which is accepted. A profile that does not
// exist is cached as a tombstone so it costs one gateway read total.
type UserResolver struct {
	store  document.Store
	logger *zap.Logger

	mu    sync.Mutex
	cache map[string]*identity.User // nil entry = known missing
}

// NewUserResolver creates a resolver backed by the given store.
func NewUserResolver(store document.Store, logger *zap.Logger) *UserResolver {
	return &UserResolver{
		store:  store,
		logger: logger,
		cache:  make(map[string]*identity.User),
	}
}

// Resolve returns the referenced profile, or nil when the user does not
// exist or the lookup failed. A nil result is not an error: callers
// render placeholder customer details. Cache hits issue no gateway
// read. A transient read failure is logged and not cached, so a later
// page render can retry it.
func (r *UserResolver) Resolve(ctx context.Context, userID string) *identity.User {
	if userID == "" {
		return nil
	}

	r.mu.Lock()
	cached, seen := r.cache[userID]
	r.mu.Unlock()
	if seen {
		return cached
	}

	doc, err := r.store.Get(ctx, document.Users, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			r.mu.Lock()
			r.cache[userID] = nil
			r.mu.Unlock()
			return nil
		}
		r.logger.Warn("user lookup failed", zap.String("user_id", userID), zap.Error(err))
		return nil
	}

	user := identity.ParseUser(*doc)
	r.mu.Lock()
	r.cache[userID] = &user
	r.mu.Unlock()
	return &user
}

// CachedCount reports how many ids the resolver has seen, including
// tombstones.
func (r *UserResolver) CachedCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.cache)
}
