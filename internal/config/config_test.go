package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Fatalf("Port=%q want 8080", cfg.Server.Port)
	}
	if cfg.FPL.CacheTTL != 6*time.Hour {
		t.Fatalf("CacheTTL=%v want 6h", cfg.FPL.CacheTTL)
	}
	if cfg.Optimizer.PoolLimit != 1000 {
		t.Fatalf("PoolLimit=%d want 1000", cfg.Optimizer.PoolLimit)
	}
}

func TestLoadYAMLOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
server:
  port: "9090"
  cors_origins:
    - https://fpl.example.com
sync:
  max_age: 2h
  interval: 30m
optimizer:
  pool_limit: 500
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Fatalf("Port=%q want 9090", cfg.Server.Port)
	}
	if len(cfg.Server.CORSOrigins) != 1 || cfg.Server.CORSOrigins[0] != "https://fpl.example.com" {
		t.Fatalf("CORSOrigins=%v", cfg.Server.CORSOrigins)
	}
	if cfg.Sync.MaxAge != 2*time.Hour || cfg.Sync.Interval != 30*time.Minute {
		t.Fatalf("Sync=%+v", cfg.Sync)
	}
	if cfg.Optimizer.PoolLimit != 500 {
		t.Fatalf("PoolLimit=%d want 500", cfg.Optimizer.PoolLimit)
	}
	// Untouched sections keep defaults.
	if cfg.FPL.BaseURL == "" {
		t.Fatal("FPL.BaseURL lost its default")
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: \"9090\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("API_PORT", "7070")
	t.Setenv("SYNC_MAX_AGE", "1h")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "7070" {
		t.Fatalf("Port=%q want env override 7070", cfg.Server.Port)
	}
	if cfg.Sync.MaxAge != time.Hour {
		t.Fatalf("MaxAge=%v want 1h", cfg.Sync.MaxAge)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "EmptyPort", mutate: func(c *Config) { c.Server.Port = "" }},
		{name: "EmptyBaseURL", mutate: func(c *Config) { c.FPL.BaseURL = "" }},
		{name: "ZeroCacheTTL", mutate: func(c *Config) { c.FPL.CacheTTL = 0 }},
		{name: "NegativeMaxAge", mutate: func(c *Config) { c.Sync.MaxAge = -time.Hour }},
		{name: "ZeroInterval", mutate: func(c *Config) { c.Sync.Interval = 0 }},
		{name: "ZeroPoolLimit", mutate: func(c *Config) { c.Optimizer.PoolLimit = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}

	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestProduction(t *testing.T) {
	cfg := Default()
	if cfg.Production() {
		t.Fatal("default config should not be production")
	}
	cfg.Server.Env = "production"
	if !cfg.Production() {
		t.Fatal("production env not detected")
	}
}
