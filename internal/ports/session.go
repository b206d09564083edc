package ports

// Package ports defines interfaces (hexagonal ports) for session persistence
// and credential propagation. Implementations live in internal/adapters and
// internal/http; orchestration in internal/session.

import (
	"context"

	domainsession "github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/domain/session"
)

// SessionRecordStore persists the durable session record for one operator
// session. Load returns (nil, nil) when no record exists; errors are reserved
// for real storage failures. The session store treats every failure as an
// absent record; the backend stays the source of truth for authorization.
type SessionRecordStore interface {
	Load(ctx context.Context) (*domainsession.Record, error)
	Save(ctx context.Context, rec domainsession.Record) error
	Clear(ctx context.Context) error
}

// TokenSink receives the current bearer token on every session transition.
// *api.Client satisfies this; single-operator embeddings wire it so the
// client's static credential tracks the session.
type TokenSink interface {
	SetStaticToken(token string)
}

// TokenMirror maintains the derived, read-only copy of the bearer token for
// execution contexts that cannot read the canonical record store (the
// auth_token cookie in the browser, a token file on disk). It is regenerated
// from the canonical record on every mutating transition and never read back.
type TokenMirror interface {
	Write(ctx context.Context, token string) error
	Erase(ctx context.Context) error
}
