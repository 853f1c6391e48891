package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.DefaultCurrency = "CHF"
	cfg.Store.Backend = BackendSQLite
	cfg.Store.Path = "umsatz.db"

	path := filepath.Join(t.TempDir(), "umsatz.yaml")
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "CHF", got.DefaultCurrency)
	assert.Equal(t, BackendSQLite, got.Store.Backend)
	assert.Equal(t, "umsatz.db", got.Store.Path)
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "EUR", cfg.DefaultCurrency)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, BackendFile, cfg.Store.Backend)
	assert.Equal(t, "data", cfg.Store.Path)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "umsatz.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_currency: USD\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "USD", cfg.DefaultCurrency)
	assert.Equal(t, BackendFile, cfg.Store.Backend)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("UMSATZ_CURRENCY", "GBP")
	t.Setenv("UMSATZ_STORE_BACKEND", BackendSQLite)

	cfg := Default()
	cfg.ApplyEnv()
	assert.Equal(t, "GBP", cfg.DefaultCurrency)
	assert.Equal(t, BackendSQLite, cfg.Store.Backend)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "umsatz.yaml")
	require.NoError(t, Save(path, Default()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "default_currency: EUR")
	assert.Contains(t, contents, "backend: file")
}
