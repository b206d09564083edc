// Package session implements the operator session store: the single current
// authenticated identity, its durable persistence, and the credential sync
// that keeps the backend client's token in step with it.
package session

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	domainsession "github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/domain/session"
	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/ports"
)

// ErrMockSignInDisabled is returned by SignInMockEmail when the legacy
// email-only path is not enabled in configuration.
var ErrMockSignInDisabled = errors.New("mock sign-in is disabled")

// mockUserID marks sessions created by the legacy email-only sign-in path.
const mockUserID = "dev-mock"

// Options groups the dependencies of a Store. Records is required; Tokens and
// Mirror are optional and skipped when nil.
type Options struct {
	Records ports.SessionRecordStore
	Tokens  ports.TokenSink
	Mirror  ports.TokenMirror

	// AllowMockSignIn enables the legacy email-only sign-in path, which
	// creates a tokenless session. Off by default; intended for demos and
	// local development only.
	AllowMockSignIn bool

	Logger *slog.Logger
}

// Store holds the current session. It is either signed out (User() == nil)
// or signed in with a user carrying at least a UserID. All persistence
// side effects are defensive: a failing record store or mirror is logged and
// otherwise ignored, never surfaced as a state error.
type Store struct {
	records ports.SessionRecordStore
	tokens  ports.TokenSink
	mirror  ports.TokenMirror
	logger  *slog.Logger

	allowMock bool

	mu   sync.RWMutex
	user *domainsession.User
}

// New constructs a Store.
func New(opts Options) *Store {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		records:   opts.Records,
		tokens:    opts.Tokens,
		mirror:    opts.Mirror,
		logger:    logger,
		allowMock: opts.AllowMockSignIn,
	}
}

// User returns a copy of the current session user, or nil when signed out.
func (s *Store) User() *domainsession.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user.Clone()
}

// Hydrate restores the session from durable storage. It is idempotent and
// purely storage-driven: no backend call is made and the token's continued
// validity is not checked here. A missing or unrestorable record leaves the
// store signed out and explicitly clears the client credential.
func (s *Store) Hydrate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.loadRecord(ctx)
	if err != nil {
		s.logger.Warn("session hydrate: load record failed", "error", err)
	}
	if rec != nil {
		if u, ok := rec.ToUser(); ok {
			s.user = u
			s.syncToken(u.Token)
			return
		}
	}

	s.user = nil
	s.syncToken("")
}

// Credentials is the structured sign-in payload built from a login or
// register response.
type Credentials struct {
	Token     string
	UserID    string
	Email     string
	Username  string
	RoleID    *int
	IsPremium bool
	Raw       map[string]any
}

// SignIn transitions to signed-in from a structured credentials payload and
// persists the new session. Identity fields are fixed until the next SignIn;
// only the plan tier mutates in place afterwards.
func (s *Store) SignIn(ctx context.Context, creds Credentials) {
	uid := creds.UserID
	if uid == "" {
		uid = "unknown"
	}

	u := &domainsession.User{
		UserID:   uid,
		Email:    creds.Email,
		Username: creds.Username,
		RoleID:   creds.RoleID,
		Token:    creds.Token,
		Plan:     domainsession.PlanFromPremium(creds.IsPremium),
		Raw:      creds.Raw,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
	s.persist(ctx)
}

// SignInMockEmail is the legacy email-only sign-in path: it creates a
// tokenless basic-plan session for local demos. Gated behind configuration;
// see Options.AllowMockSignIn.
func (s *Store) SignInMockEmail(ctx context.Context, email string) error {
	if !s.allowMock {
		return ErrMockSignInDisabled
	}

	username := email
	if at := strings.Index(email, "@"); at > 0 {
		username = email[:at]
	}

	u := &domainsession.User{
		UserID:   mockUserID,
		Email:    email,
		Username: username,
		Plan:     domainsession.PlanBasic,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
	s.persist(ctx)
	return nil
}

// SignOut clears the in-memory session, erases the durable record and the
// token mirror, and clears the client credential. It always succeeds.
func (s *Store) SignOut(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	if s.records != nil {
		if err := s.records.Clear(ctx); err != nil {
			s.logger.Warn("session sign-out: clear record failed", "error", err)
		}
	}
	s.eraseMirror(ctx)
	s.syncToken("")
}

// Upgrade raises the plan tier to premium. A no-op when signed out or
// already premium.
func (s *Store) Upgrade(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil || s.user.Plan == domainsession.PlanPremium {
		return
	}
	s.user.Plan = domainsession.PlanPremium
	s.persist(ctx)
}

// SetPlan overwrites the plan tier. A no-op when signed out.
func (s *Store) SetPlan(ctx context.Context, plan domainsession.Plan) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return
	}
	s.user.Plan = plan
	s.persist(ctx)
}

// persist writes through every storage location for the current user:
// the durable record, the token mirror, and the client credential. The
// record store is canonical; the mirror is regenerated from it on every
// transition (and erased for tokenless sessions) so the two copies of the
// credential cannot diverge. Callers must hold s.mu.
func (s *Store) persist(ctx context.Context) {
	u := s.user
	if u == nil {
		return
	}

	if s.records != nil {
		if err := s.records.Save(ctx, u.ToRecord()); err != nil {
			s.logger.Warn("session persist: save record failed", "error", err)
		}
	}

	if u.Token != "" {
		if s.mirror != nil {
			if err := s.mirror.Write(ctx, u.Token); err != nil {
				s.logger.Warn("session persist: write token mirror failed", "error", err)
			}
		}
	} else {
		s.eraseMirror(ctx)
	}

	s.syncToken(u.Token)
}

func (s *Store) loadRecord(ctx context.Context) (*domainsession.Record, error) {
	if s.records == nil {
		return nil, nil
	}
	return s.records.Load(ctx)
}

func (s *Store) eraseMirror(ctx context.Context) {
	if s.mirror == nil {
		return
	}
	if err := s.mirror.Erase(ctx); err != nil {
		s.logger.Warn("session: erase token mirror failed", "error", err)
	}
}

func (s *Store) syncToken(token string) {
	if s.tokens != nil {
		s.tokens.SetStaticToken(token)
	}
}
