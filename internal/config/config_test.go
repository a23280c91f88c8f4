package config

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	for k, v := range map[string]string{
		"APP_NAME":            "jobboard",
		"APP_ENV":             "test",
		"HTTP_PORT":           "8080",
		"DB_HOST":             "localhost",
		"DB_PORT":             "5432",
		"DB_NAME":             "jobboard",
		"DB_USER":             "jobboard",
		"ADMIN_USERNAME":      "admin",
		"ADMIN_PASSWORD_HASH": "$2a$10$abcdefghijklmnopqrstuv",
		"JWT_ACCESS_SECRET":   "access",
		"JWT_REFRESH_SECRET":  "refresh",
	} {
		t.Setenv(k, v)
	}
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if cfg.Database.SSLMode != "disable" {
		t.Fatalf("expected sslmode default, got %q", cfg.Database.SSLMode)
	}
	if cfg.Redis.CacheTTL != 5*time.Minute {
		t.Fatalf("expected default cache ttl, got %s", cfg.Redis.CacheTTL)
	}
	if cfg.JWT.AccessExpiresIn != 15*time.Minute {
		t.Fatalf("expected default access expiry, got %s", cfg.JWT.AccessExpiresIn)
	}
	if !cfg.Notify.ReannounceApproved {
		t.Fatalf("expected re-announce enabled by default")
	}
}

func TestLoad_MissingRequiredVarsListed(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_NAME", "")
	t.Setenv("ADMIN_USERNAME", "")

	_, err := Load()
	if !errors.Is(err, errMissingRequiredEnv) {
		t.Fatalf("expected missing-env error, got %v", err)
	}
	for _, key := range []string{"APP_NAME", "ADMIN_USERNAME"} {
		if !strings.Contains(err.Error(), key) {
			t.Fatalf("expected %s in error, got %v", key, err)
		}
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("NOTIFY_REANNOUNCE_APPROVED", "false")
	t.Setenv("JWT_ACCESS_EXPIRES_IN", "5m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Redis.CacheTTL != 30*time.Second {
		t.Fatalf("expected 30s ttl, got %s", cfg.Redis.CacheTTL)
	}
	if cfg.Notify.ReannounceApproved {
		t.Fatalf("expected re-announce disabled")
	}
	if cfg.JWT.AccessExpiresIn != 5*time.Minute {
		t.Fatalf("expected 5m access expiry, got %s", cfg.JWT.AccessExpiresIn)
	}
}

func TestLoad_InvalidDurationFallsBack(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CACHE_TTL", "soon")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Redis.CacheTTL != 5*time.Minute {
		t.Fatalf("expected fallback ttl, got %s", cfg.Redis.CacheTTL)
	}
}
