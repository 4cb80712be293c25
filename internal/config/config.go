package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Nomadcxx/yearsort/internal/history"
	"github.com/Nomadcxx/yearsort/internal/logging"
	"github.com/Nomadcxx/yearsort/internal/paths"
	"github.com/spf13/viper"
)

type Config struct {
	History  HistoryConfig  `mapstructure:"history"`
	Organize OrganizeConfig `mapstructure:"organize"`
	Activity ActivityConfig `mapstructure:"activity"`
	Ledger   LedgerConfig   `mapstructure:"ledger"`
	Watch    WatchConfig    `mapstructure:"watch"`
	GUI      GUIConfig      `mapstructure:"gui"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// HistoryConfig locates the list of organized folders. A relative file is
// resolved against the working directory.
type HistoryConfig struct {
	File string `mapstructure:"file"`
}

type OrganizeConfig struct {
	DryRun bool `mapstructure:"dry_run"`
	// Backend is auto, rename or copy.
	Backend string `mapstructure:"backend"`
}

type ActivityConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	RetentionDays int  `mapstructure:"retention_days"`
}

type LedgerConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce"`
}

type GUIConfig struct {
	Icon string `mapstructure:"icon"`
}

type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

func DefaultConfig() *Config {
	return &Config{
		History: HistoryConfig{
			File: history.DefaultFile,
		},
		Organize: OrganizeConfig{
			DryRun:  false,
			Backend: "auto",
		},
		Activity: ActivityConfig{
			Enabled:       true,
			RetentionDays: 30,
		},
		Ledger: LedgerConfig{
			Enabled: true,
			Path:    "",
		},
		Watch: WatchConfig{
			Debounce: 2 * time.Second,
		},
		GUI: GUIConfig{
			Icon: "icon.png",
		},
		Logging: LoggingConfig{
			Level:      "info",
			File:       "",
			MaxSizeMB:  10,
			MaxBackups: 5,
		},
	}
}

// Load reads the default config file, or returns defaults when it is absent.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom reads path (default location when empty). A missing file at the
// default location is not an error; a missing explicit path is.
func LoadFrom(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := paths.ConfigPath()
		if err != nil {
			return nil, fmt.Errorf("unable to get config path: %w", err)
		}
		path = p
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	} else if explicit {
		return nil, fmt.Errorf("unable to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to unmarshal config: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the default location.
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("unable to create config dir: %w", err)
	}
	return os.WriteFile(path, []byte(c.ToTOML()), 0644)
}

func ConfigPath() (string, error) {
	return paths.ConfigPath()
}

func ConfigExists() bool {
	path, err := ConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// LedgerPath returns the configured ledger path or the default one.
func (c *Config) LedgerPath() (string, error) {
	if c.Ledger.Path != "" {
		return c.Ledger.Path, nil
	}
	return paths.LedgerPath()
}

// LoggingConfig converts to logging.Config, defaulting the file location.
func (c *Config) LoggingConfig(console bool) logging.Config {
	lc := logging.Config{
		Level:      c.Logging.Level,
		File:       c.Logging.File,
		MaxSizeMB:  c.Logging.MaxSizeMB,
		MaxBackups: c.Logging.MaxBackups,
		Console:    console,
	}
	if lc.File == "" {
		if p, err := paths.LogPath(); err == nil {
			lc.File = p
		}
	}
	return lc
}

func (c *Config) ToTOML() string {
	return fmt.Sprintf(`# yearsort configuration
# Generated by: yearsort config init

# ============================================================================
# HISTORY
# List of folders that have been organized (JSON array).
# A relative path is resolved against the directory yearsort runs in.
# ============================================================================
[history]
file = %q

# ============================================================================
# ORGANIZE
# ============================================================================
[organize]
# Preview mode - report target folders without moving anything
dry_run = %v

# How files are moved: auto (rename, copy if that fails), rename, copy
backend = %q

# ============================================================================
# ACTIVITY LOG
# One JSON line per file handled, one file per day
# ============================================================================
[activity]
enabled = %v
retention_days = %d

# ============================================================================
# MOVE LEDGER
# SQLite record of moves, used by 'yearsort stats'
# Empty path = ~/.config/yearsort/ledger.db
# ============================================================================
[ledger]
enabled = %v
path = %q

# ============================================================================
# WATCH MODE
# Quiet period after the last new file before a folder is organized
# ============================================================================
[watch]
debounce = %q

# ============================================================================
# DESKTOP APP
# ============================================================================
[gui]
icon = %q

# ============================================================================
# LOGGING
# Empty file = ~/.config/yearsort/logs/yearsort.log
# ============================================================================
[logging]
level = %q
file = %q
max_size_mb = %d
max_backups = %d
`,
		c.History.File,
		c.Organize.DryRun,
		c.Organize.Backend,
		c.Activity.Enabled,
		c.Activity.RetentionDays,
		c.Ledger.Enabled,
		c.Ledger.Path,
		c.Watch.Debounce.String(),
		c.GUI.Icon,
		c.Logging.Level,
		c.Logging.File,
		c.Logging.MaxSizeMB,
		c.Logging.MaxBackups,
	)
}
