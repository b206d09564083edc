package config

import (
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func parseConfig(t *testing.T) AppConfig {
	t.Helper()
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()
	return cfg
}

func TestDefaults(t *testing.T) {
	cfg := parseConfig(t)

	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("expected default addr :8080, got %q", cfg.HTTP.Addr)
	}
	if cfg.Backend.BaseURL != "https://hometrack.mlhr.org/api" {
		t.Errorf("unexpected backend base url %q", cfg.Backend.BaseURL)
	}
	if cfg.Backend.Timeout != 15*time.Second {
		t.Errorf("unexpected backend timeout %v", cfg.Backend.Timeout)
	}
	if cfg.Session.Store != SessionStoreRedis {
		t.Errorf("expected redis session store, got %q", cfg.Session.Store)
	}
	if cfg.Session.TTL != 168*time.Hour {
		t.Errorf("unexpected session ttl %v", cfg.Session.TTL)
	}
	if cfg.Session.AllowMockSignIn {
		t.Error("mock sign-in must be disabled by default")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("BACKEND_BASE_URL", "http://localhost:5050/api")
	t.Setenv("BACKEND_TIMEOUT", "3s")
	t.Setenv("SESSION_STORE", "file")
	t.Setenv("SESSION_ALLOW_MOCK_SIGNIN", "true")
	t.Setenv("REDIS_URI", "redis-primary:6379")

	cfg := parseConfig(t)

	if cfg.HTTP.Addr != ":9999" {
		t.Errorf("addr override not applied, got %q", cfg.HTTP.Addr)
	}
	if cfg.Backend.BaseURL != "http://localhost:5050/api" {
		t.Errorf("backend override not applied, got %q", cfg.Backend.BaseURL)
	}
	if cfg.Backend.Timeout != 3*time.Second {
		t.Errorf("timeout override not applied, got %v", cfg.Backend.Timeout)
	}
	if cfg.Session.Store != SessionStoreFile {
		t.Errorf("session store override not applied, got %q", cfg.Session.Store)
	}
	if !cfg.Session.AllowMockSignIn {
		t.Error("mock sign-in override not applied")
	}
	if cfg.Redis.URI != "redis-primary:6379" {
		t.Errorf("redis override not applied, got %q", cfg.Redis.URI)
	}
}

func TestSanitizeGuardsBadValues(t *testing.T) {
	t.Setenv("BACKEND_TIMEOUT", "0s")
	t.Setenv("SESSION_TTL", "0s")
	t.Setenv("SESSION_STORE", "carrier-pigeon")

	cfg := parseConfig(t)

	if cfg.Backend.Timeout != 15*time.Second {
		t.Errorf("expected timeout fallback, got %v", cfg.Backend.Timeout)
	}
	if cfg.Session.TTL != 168*time.Hour {
		t.Errorf("expected ttl fallback, got %v", cfg.Session.TTL)
	}
	if cfg.Session.Store != SessionStoreRedis {
		t.Errorf("expected store fallback, got %q", cfg.Session.Store)
	}
}

func TestDevModeFromNodeEnv(t *testing.T) {
	t.Setenv("NODE_ENV", "development")

	cfg := parseConfig(t)
	if !cfg.IsDev {
		t.Error("expected NODE_ENV=development to enable dev mode")
	}
}
