package config

import "time"

// Session store kinds.
const (
	SessionStoreRedis = "redis"
	SessionStoreFile  = "file"
)

// SessionConfig contains operator session configuration.
type SessionConfig struct {
	// Store selects the durable record store: "redis" or "file".
	Store string `env:"SESSION_STORE" envDefault:"redis"`

	// TTL is the fallback session lifetime, used when the bearer token carries
	// no usable expiry. Also the lifetime of the session cookies.
	TTL time.Duration `env:"SESSION_TTL" envDefault:"168h"`

	// FilePath is the state directory for the file store.
	FilePath string `env:"SESSION_FILE_PATH" envDefault:".hometrack"`

	// AllowMockSignIn enables the email-only development sign-in. Never enable
	// this in production.
	AllowMockSignIn bool `env:"SESSION_ALLOW_MOCK_SIGNIN" envDefault:"false"`
}

// Sanitize applies guardrails to session configuration values.
func (s *SessionConfig) Sanitize() {
	if s.TTL <= 0 {
		s.TTL = 168 * time.Hour
	}
	if s.Store != SessionStoreRedis && s.Store != SessionStoreFile {
		s.Store = SessionStoreRedis
	}
}
