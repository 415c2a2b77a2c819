package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML), with environment
// variable overrides applied on top.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	FPL       FPLConfig       `yaml:"fpl"`
	Sync      SyncConfig      `yaml:"sync"`
	Optimizer OptimizerConfig `yaml:"optimizer"`
}

type ServerConfig struct {
	Port        string   `yaml:"port" envconfig:"API_PORT"`
	Env         string   `yaml:"env" envconfig:"API_ENV"`
	CORSOrigins []string `yaml:"cors_origins" envconfig:"CORS_ORIGINS"`
}

type FPLConfig struct {
	BaseURL  string        `yaml:"base_url" envconfig:"FPL_API_BASE_URL"`
	CacheTTL time.Duration `yaml:"cache_ttl" envconfig:"FPL_CACHE_TTL"`
}

type SyncConfig struct {
	// MaxAge is the staleness threshold: request paths trigger a re-sync
	// when the last successful sync is at least this old.
	MaxAge time.Duration `yaml:"max_age" envconfig:"SYNC_MAX_AGE"`
	// Interval is the background refresh cadence.
	Interval time.Duration `yaml:"interval" envconfig:"SYNC_INTERVAL"`
}

type OptimizerConfig struct {
	// PoolLimit bounds how many players are loaded as transfer candidates.
	PoolLimit int `yaml:"pool_limit" envconfig:"OPTIMIZER_POOL_LIMIT"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        "8080",
			CORSOrigins: []string{"http://localhost:5173"},
		},
		FPL: FPLConfig{
			BaseURL:  "https://fantasy.premierleague.com/api",
			CacheTTL: 6 * time.Hour,
		},
		Sync: SyncConfig{
			MaxAge:   6 * time.Hour,
			Interval: 1 * time.Hour,
		},
		Optimizer: OptimizerConfig{
			PoolLimit: 1000,
		},
	}
}

// Load reads the YAML file at path (optional: a missing file just yields
// defaults), applies environment overrides, and validates the result.
func Load(path string) (*Config, error) {
	c := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		} else if err := yaml.Unmarshal(raw, c); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := envconfig.Process("", c); err != nil {
		return nil, fmt.Errorf("env overrides: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Server.Port == "" {
		return errors.New("server.port is required")
	}
	if c.FPL.BaseURL == "" {
		return errors.New("fpl.base_url is required")
	}
	if c.FPL.CacheTTL <= 0 {
		return errors.New("fpl.cache_ttl must be positive")
	}
	if c.Sync.MaxAge <= 0 {
		return errors.New("sync.max_age must be positive")
	}
	if c.Sync.Interval <= 0 {
		return errors.New("sync.interval must be positive")
	}
	if c.Optimizer.PoolLimit <= 0 {
		return errors.New("optimizer.pool_limit must be positive")
	}
	return nil
}

// Production reports whether the server runs in production mode.
func (c *Config) Production() bool {
	return c.Server.Env == "production"
}
