package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "history.json", cfg.History.File)
	assert.Equal(t, "auto", cfg.Organize.Backend)
	assert.False(t, cfg.Organize.DryRun)
	assert.True(t, cfg.Activity.Enabled)
	assert.Equal(t, 30, cfg.Activity.RetentionDays)
	assert.True(t, cfg.Ledger.Enabled)
	assert.Equal(t, 2*time.Second, cfg.Watch.Debounce)
	assert.Equal(t, "icon.png", cfg.GUI.Icon)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFrom_MissingDefaultUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SUDO_USER", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFrom_MissingExplicitPathFails(t *testing.T) {
	_, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadFrom_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[history]
file = "/var/lib/yearsort/history.json"

[organize]
dry_run = true
backend = "copy"

[watch]
debounce = "500ms"

[logging]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/yearsort/history.json", cfg.History.File)
	assert.True(t, cfg.Organize.DryRun)
	assert.Equal(t, "copy", cfg.Organize.Backend)
	assert.Equal(t, 500*time.Millisecond, cfg.Watch.Debounce)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// untouched sections keep defaults
	assert.True(t, cfg.Activity.Enabled)
	assert.Equal(t, 5, cfg.Logging.MaxBackups)
}

func TestSaveTo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	cfg := DefaultConfig()
	cfg.History.File = `C:\state\history.json`
	cfg.Ledger.Enabled = false
	cfg.Watch.Debounce = 5 * time.Second
	require.NoError(t, cfg.SaveTo(path))

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLedgerPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SUDO_USER", "")

	cfg := DefaultConfig()
	p, err := cfg.LedgerPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "yearsort", "ledger.db"), p)

	cfg.Ledger.Path = "/tmp/custom.db"
	p, err = cfg.LedgerPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.db", p)
}

func TestLoggingConfig_DefaultsFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SUDO_USER", "")

	lc := DefaultConfig().LoggingConfig(false)
	assert.False(t, lc.Console)
	assert.Equal(t, filepath.Join(home, ".config", "yearsort", "logs", "yearsort.log"), lc.File)
}
