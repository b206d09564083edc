package httpx

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/ports"
	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/session"
)

// RecordStoreFactory builds the record store for one session id. The redis
// adapter keys on the id; the file adapter ignores it (single operator).
type RecordStoreFactory func(sessionID string) ports.SessionRecordStore

// SessionManager builds per-request session stores. Each request gets its
// own store bound to the caller's session_id cookie, so concurrent operators
// never share in-memory state.
type SessionManager struct {
	Records         RecordStoreFactory
	CookieDomain    string
	CookieTTL       time.Duration
	AllowMockSignIn bool
	Logger          *slog.Logger
}

// NewSessionID mints a fresh session identifier.
func (m *SessionManager) NewSessionID() string {
	return uuid.NewString()
}

// StoreFor builds the session store for the request's session id. The token
// mirror writes into the in-flight response, so any transition refreshes the
// auth_token cookie alongside the durable record.
func (m *SessionManager) StoreFor(w http.ResponseWriter, r *http.Request, sessionID string) *session.Store {
	return session.New(session.Options{
		Records: m.Records(sessionID),
		Mirror: &cookieTokenMirror{
			w:      w,
			r:      r,
			domain: m.CookieDomain,
			ttl:    m.CookieTTL,
		},
		AllowMockSignIn: m.AllowMockSignIn,
		Logger:          m.Logger,
	})
}

// sessionIDFromRequest reads the session_id cookie, or "" when absent.
func sessionIDFromRequest(r *http.Request) string {
	c, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return c.Value
}
