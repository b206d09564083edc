package httpx

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/ports"
)

// Cookie names. session_id identifies the server-side record; auth_token is
// the derived mirror of the bearer token kept for clients that read the
// credential directly.
const (
	SessionCookieName = "session_id"
	TokenCookieName   = "auth_token"
)

func isSecureRequest(r *http.Request) bool {
	return r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}

func setSessionCookie(w http.ResponseWriter, r *http.Request, p cookieParams) {
	http.SetCookie(w, &http.Cookie{
		Name:     p.Name,
		Value:    p.Value,
		Path:     "/",
		Domain:   p.Domain,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(p.TTL.Seconds()),
	})
}

func clearCookie(w http.ResponseWriter, r *http.Request, name, domain string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   domain,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}

// cookieParams groups cookie attributes.
type cookieParams struct {
	Name   string
	Value  string
	Domain string
	TTL    time.Duration
}

var _ ports.TokenMirror = (*cookieTokenMirror)(nil)

// cookieTokenMirror implements the token mirror as the auth_token cookie on
// the in-flight response. It is bound to one request/response pair and never
// reads the cookie back; the record store stays canonical.
type cookieTokenMirror struct {
	w      http.ResponseWriter
	r      *http.Request
	domain string
	ttl    time.Duration
}

func (m *cookieTokenMirror) Write(ctx context.Context, token string) error {
	setSessionCookie(m.w, m.r, cookieParams{
		Name:   TokenCookieName,
		Value:  token,
		Domain: m.domain,
		TTL:    m.ttl,
	})
	return nil
}

func (m *cookieTokenMirror) Erase(ctx context.Context) error {
	clearCookie(m.w, m.r, TokenCookieName, m.domain)
	return nil
}
