package infra

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/surplus")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.AppEnv != "development" {
		t.Errorf("AppEnv = %q, want development", cfg.AppEnv)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "*" {
		t.Errorf("AllowedOrigins = %v, want [*]", cfg.AllowedOrigins)
	}
	if cfg.MaxQuantityKg != 500 {
		t.Errorf("MaxQuantityKg = %v, want 500", cfg.MaxQuantityKg)
	}
	if cfg.SweepInterval != time.Minute {
		t.Errorf("SweepInterval = %v, want 1m", cfg.SweepInterval)
	}
	if cfg.WSSendTimeout != 5*time.Second {
		t.Errorf("WSSendTimeout = %v, want 5s", cfg.WSSendTimeout)
	}
	if cfg.RateLimitPerMin != 120 {
		t.Errorf("RateLimitPerMin = %d, want 120", cfg.RateLimitPerMin)
	}
}

func TestLoadConfigRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error when DATABASE_URL is unset")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/surplus")
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.org, https://admin.example.org")
	t.Setenv("SWEEP_INTERVAL_SECONDS", "15")
	t.Setenv("MAX_QUANTITY_KG", "250.5")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://admin.example.org" {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
	if cfg.SweepInterval != 15*time.Second {
		t.Errorf("SweepInterval = %v, want 15s", cfg.SweepInterval)
	}
	if cfg.MaxQuantityKg != 250.5 {
		t.Errorf("MaxQuantityKg = %v, want 250.5", cfg.MaxQuantityKg)
	}
}

func TestLoadConfigRejectsNonPositiveSweepInterval(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/surplus")
	t.Setenv("SWEEP_INTERVAL_SECONDS", "0")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for zero sweep interval")
	}
}
