package translator

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"

	"github.com/vikdevelop/bintrans/history"
	"github.com/vikdevelop/bintrans/settings"
)

// AppID names the per-user data and config directories.
const AppID = "bintrans"

// EnvPrefix prefixes every environment override, e.g. BINTRANS_MODE.
const EnvPrefix = "BINTRANS_"

// Config holds initialization parameters for the translator and its
// subsystems.
type Config struct {
	History   history.Config `json:"history"`
	ConfigDir string         `json:"config_dir,omitempty" env:"CONFIG_DIR"`
	Mode      string         `json:"mode,omitempty" env:"MODE"`     // "auto", "encode" or "decode"
	Strict    *bool          `json:"strict,omitempty" env:"STRICT"` // reject short trailing groups; nil leaves the lower layer's value
	Locale    string         `json:"locale,omitempty" env:"LOCALE"` // BCP 47 tag; empty detects from the environment
	LocaleDir string         `json:"locale_dir,omitempty" env:"LOCALE_DIR"`
}

// DefaultConfig returns a Config using the per-user data and config
// directories. History is disabled when no data directory can be found.
func DefaultConfig() Config {
	h := history.DefaultConfig()
	h.Dir = DefaultDataDir()
	return Config{
		History:   h,
		ConfigDir: DefaultConfigDir(),
		Mode:      "auto",
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	c.History.Merge(&source.History)

	if source.ConfigDir != "" {
		c.ConfigDir = source.ConfigDir
	}
	if source.Mode != "" {
		c.Mode = source.Mode
	}
	if source.Strict != nil {
		strict := *source.Strict
		c.Strict = &strict
	}
	if source.Locale != "" {
		c.Locale = source.Locale
	}
	if source.LocaleDir != "" {
		c.LocaleDir = source.LocaleDir
	}
}

// StrictLength reports whether short trailing binary groups are rejected.
func (c *Config) StrictLength() bool {
	return c.Strict != nil && *c.Strict
}

// LoadConfig reads a JSON config file, merges it with defaults, and returns
// the resulting Config.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	loaded, err := ReadConfigFile(filename)
	if err != nil {
		return nil, err
	}

	cfg.Merge(loaded)
	return &cfg, nil
}

// ReadConfigFile parses a JSON config file without applying defaults.
func ReadConfigFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &loaded, nil
}

// EnvConfig parses the BINTRANS_* environment variables without applying
// defaults.
func EnvConfig() (*Config, error) {
	var fromEnv Config
	if err := env.ParseWithOptions(&fromEnv, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &fromEnv, nil
}

// ApplyEnv merges BINTRANS_* environment overrides into c.
func (c *Config) ApplyEnv() error {
	fromEnv, err := EnvConfig()
	if err != nil {
		return err
	}
	c.Merge(fromEnv)
	return nil
}

// SettingsPath returns the settings file location, or "" when no config
// directory is known.
func (c *Config) SettingsPath() string {
	if c.ConfigDir == "" {
		return ""
	}
	return filepath.Join(c.ConfigDir, settings.DefaultFile)
}

// DefaultDataDir returns $XDG_DATA_HOME/bintrans, falling back to
// ~/.local/share/bintrans.
func DefaultDataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, AppID)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "share", AppID)
}

// DefaultConfigDir returns the per-user config directory for the app.
func DefaultConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppID)
}
