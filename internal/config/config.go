package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Store backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config represents the top-level umsatz.yaml configuration.
type Config struct {
	DefaultCurrency string      `yaml:"default_currency"`
	LogLevel        string      `yaml:"log_level"`
	Store           StoreConfig `yaml:"store"`
}

// StoreConfig selects and locates the persistence backend.
type StoreConfig struct {
	Backend string `yaml:"backend"` // "file" or "sqlite"
	Path    string `yaml:"path"`    // data directory (file) or db file (sqlite)
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		DefaultCurrency: "EUR",
		LogLevel:        "info",
		Store: StoreConfig{
			Backend: BackendFile,
			Path:    "data",
		},
	}
}

// Load reads an umsatz.yaml file from disk. A missing file yields the
// defaults rather than an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// ApplyEnv overlays environment variables onto the config, loading a
// local .env file first if one exists.
func (c *Config) ApplyEnv() {
	_ = godotenv.Load()

	if v := os.Getenv("UMSATZ_CURRENCY"); v != "" {
		c.DefaultCurrency = v
	}
	if v := os.Getenv("UMSATZ_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("UMSATZ_STORE_BACKEND"); v != "" {
		c.Store.Backend = v
	}
	if v := os.Getenv("UMSATZ_STORE_PATH"); v != "" {
		c.Store.Path = v
	}
}
