package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the full simulator configuration.
type Config struct {
	Session SessionConfig `yaml:"session"`
	Wallet  WalletConfig  `yaml:"wallet"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// SessionConfig controls the trading session.
type SessionConfig struct {
	// SeedFile points at the YAML file with the demo market catalog.
	// Empty means the built-in catalog.
	SeedFile string `yaml:"seed_file"`
}

// WalletConfig controls the simulated wallet.
type WalletConfig struct {
	AccountID       string  `yaml:"account_id"`
	StartingBalance float64 `yaml:"starting_balance"` // XLM
	LatencyMS       int     `yaml:"latency_ms"`       // simulated round-trip
	FailConnect     bool    `yaml:"fail_connect"`     // demo the failure path
}

// StorageConfig selects the store backing the session.
type StorageConfig struct {
	Driver string `yaml:"driver"` // memory | sqlite
	DSN    string `yaml:"dsn"`    // sqlite path, or ":memory:"
}

// LogConfig controls log format and level.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// Load reads the YAML config plus a .env file if present. Environment
// variables override the YAML for the keys they cover. A missing config
// file is not an error — everything has a default.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// defaults only
	case err != nil:
		return nil, fmt.Errorf("config.Load: read %q: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config.Load: parse YAML: %w", err)
		}
	}

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)
	return &cfg, nil
}

// WalletLatency returns the simulated round-trip as a time.Duration.
func (c *Config) WalletLatency() time.Duration {
	return time.Duration(c.Wallet.LatencyMS) * time.Millisecond
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("STORAGE_DSN"); v != "" {
		cfg.Storage.DSN = v
	}
}

func setDefaults(cfg *Config) {
	if cfg.Wallet.StartingBalance <= 0 {
		cfg.Wallet.StartingBalance = 1000
	}
	if cfg.Wallet.LatencyMS <= 0 {
		cfg.Wallet.LatencyMS = 300
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = "memory"
	}
	if cfg.Storage.DSN == "" {
		cfg.Storage.DSN = ":memory:"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}
