package config

import (
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("VOGUE_APP_ENV", "development")
	t.Setenv("VOGUE_APP_PORT", "8080")
	t.Setenv("VOGUE_JWT_SECRET", "test-secret")
	t.Setenv("VOGUE_JWT_ISSUER", "storefront-test")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !cfg.App.IsDev() {
		t.Fatal("IsDev() = false for development")
	}
	if cfg.App.LogLevel != "info" {
		t.Fatalf("log level = %q, want info", cfg.App.LogLevel)
	}
	if cfg.KV.Driver != KVDriverSQLite {
		t.Fatalf("kv driver = %q, want sqlite", cfg.KV.Driver)
	}
	if cfg.KV.DSN != "storefront.db" {
		t.Fatalf("kv dsn = %q", cfg.KV.DSN)
	}
	if cfg.JWT.ExpirationMinutes != 720 {
		t.Fatalf("jwt expiration = %d, want 720", cfg.JWT.ExpirationMinutes)
	}
	if cfg.FeatureFlags.AutoMigrate {
		t.Fatal("auto migrate should default off")
	}
}

func TestLoadFailsWithoutRequiredVars(t *testing.T) {
	t.Setenv("VOGUE_APP_ENV", "")
	t.Setenv("VOGUE_APP_PORT", "")
	t.Setenv("VOGUE_JWT_SECRET", "")
	t.Setenv("VOGUE_JWT_ISSUER", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing required vars")
	}
}

func TestLoadNormalizesKVDriver(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("VOGUE_KV_DRIVER", "  Redis ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.KV.Driver != KVDriverRedis {
		t.Fatalf("kv driver = %q, want redis", cfg.KV.Driver)
	}
}

func TestLoadRejectsUnknownKVDriver(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("VOGUE_KV_DRIVER", "dynamo")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestIsProd(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("VOGUE_APP_ENV", "production")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.App.IsProd() {
		t.Fatal("IsProd() = false for production")
	}
	if cfg.App.IsDev() {
		t.Fatal("IsDev() = true for production")
	}
}

func TestAccessTokenTTL(t *testing.T) {
	jwt := JWTConfig{ExpirationMinutes: 90}
	if got := jwt.AccessTokenTTL(); got != 90*time.Minute {
		t.Fatalf("ttl = %v, want 90m", got)
	}

	jwt.ExpirationMinutes = 0
	if got := jwt.AccessTokenTTL(); got != 0 {
		t.Fatalf("ttl = %v, want 0", got)
	}
}
