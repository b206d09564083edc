package config

import "time"

// BackendConfig contains the HomeTrack backend API configuration.
type BackendConfig struct {
	// BaseURL is the root of the backend API. Paths are joined onto it.
	BaseURL string `env:"BACKEND_BASE_URL" envDefault:"https://hometrack.mlhr.org/api"`

	// Timeout is the per-request timeout for backend calls.
	Timeout time.Duration `env:"BACKEND_TIMEOUT" envDefault:"15s"`
}

// Sanitize applies guardrails to backend configuration values.
func (b *BackendConfig) Sanitize() {
	if b.Timeout <= 0 {
		b.Timeout = 15 * time.Second
	}
}
