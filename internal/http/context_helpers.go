package httpx

import (
	"context"

	domainsession "github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/domain/session"
	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/session"
)

// userKey is an unexported context key type to avoid collisions across packages.
type userKey struct{}

// storeKey carries the per-request session store for handlers that mutate
// session state (logout, plan changes).
type storeKey struct{}

// SetUserInContext returns a child context carrying the session user.
// If user is nil, the original ctx is returned unchanged.
func SetUserInContext(ctx context.Context, user *domainsession.User) context.Context {
	if user == nil {
		return ctx
	}
	return context.WithValue(ctx, userKey{}, user)
}

// UserFromContext returns the session user from context and whether one is present.
func UserFromContext(ctx context.Context) (*domainsession.User, bool) {
	if u, ok := ctx.Value(userKey{}).(*domainsession.User); ok && u != nil {
		return u, true
	}
	return nil, false
}

func setStoreInContext(ctx context.Context, store *session.Store) context.Context {
	if store == nil {
		return ctx
	}
	return context.WithValue(ctx, storeKey{}, store)
}

func storeFromContext(ctx context.Context) (*session.Store, bool) {
	if s, ok := ctx.Value(storeKey{}).(*session.Store); ok && s != nil {
		return s, true
	}
	return nil, false
}
