package config

import (
	"strings"
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "portfolio-api")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("HTTP_PORT", "")

	_, err := Load()
	if err == nil {
		t.Fatalf("expected error for missing required vars")
	}
	for _, key := range []string{"APP_NAME", "APP_ENV", "HTTP_PORT"} {
		if !strings.Contains(err.Error(), key) {
			t.Fatalf("error must name %s, got %v", key, err)
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)
	t.Setenv("CORS_ALLOW_ORIGIN", "")
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_SSL_MODE", "")
	t.Setenv("DB_MIGRATIONS_DIR", "")
	t.Setenv("DB_CONNECT_TIMEOUT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.HTTP.CORSAllowOrigin != "http://localhost:3000" {
		t.Fatalf("unexpected CORS default: %q", cfg.HTTP.CORSAllowOrigin)
	}
	if cfg.Database.DBHost != "localhost" || cfg.Database.DBPort != "5432" {
		t.Fatalf("unexpected db defaults: %+v", cfg.Database)
	}
	if cfg.Database.DBSSLMode != "disable" {
		t.Fatalf("unexpected ssl mode default: %q", cfg.Database.DBSSLMode)
	}
	if cfg.Database.MigrationsDir != "migrations" {
		t.Fatalf("unexpected migrations dir default: %q", cfg.Database.MigrationsDir)
	}
	if cfg.Database.ConnectTimeout != 5*time.Second {
		t.Fatalf("unexpected connect timeout default: %v", cfg.Database.ConnectTimeout)
	}
}

func TestLoad_TrimsValues(t *testing.T) {
	setRequired(t)
	t.Setenv("HTTP_PORT", "  9090  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.HTTP.Port != "9090" {
		t.Fatalf("expected trimmed port, got %q", cfg.HTTP.Port)
	}
}

func TestOptInt32_BadValuesFallBack(t *testing.T) {
	t.Setenv("DB_POOL_MAX_CONNS", "not-a-number")
	if got := optInt32("DB_POOL_MAX_CONNS", 4); got != 4 {
		t.Fatalf("expected fallback 4, got %d", got)
	}

	t.Setenv("DB_POOL_MAX_CONNS", "-2")
	if got := optInt32("DB_POOL_MAX_CONNS", 4); got != 4 {
		t.Fatalf("negative value must fall back, got %d", got)
	}

	t.Setenv("DB_POOL_MAX_CONNS", "16")
	if got := optInt32("DB_POOL_MAX_CONNS", 4); got != 16 {
		t.Fatalf("expected 16, got %d", got)
	}
}

func TestOptDuration_BadValuesFallBack(t *testing.T) {
	t.Setenv("DB_CONNECT_TIMEOUT", "soon")
	if got := optDuration("DB_CONNECT_TIMEOUT", time.Second); got != time.Second {
		t.Fatalf("expected fallback 1s, got %v", got)
	}

	t.Setenv("DB_CONNECT_TIMEOUT", "30s")
	if got := optDuration("DB_CONNECT_TIMEOUT", time.Second); got != 30*time.Second {
		t.Fatalf("expected 30s, got %v", got)
	}
}
