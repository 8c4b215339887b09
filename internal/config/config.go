// Package config loads the optional TOML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	defaultDirName   = ".codetrack"
	defaultStoreFile = "codetrack.db"
	defaultLogFile   = "codetrack.log"
	defaultTheme     = "dark"
)

// Config is the contents of config.toml.
type Config struct {
	DataDir string      `toml:"data_dir"`
	Store   StoreConfig `toml:"store"`
	Log     LogConfig   `toml:"log"`
	UI      UIConfig    `toml:"ui"`
}

// StoreConfig locates the SQLite database holding items and preferences.
type StoreConfig struct {
	File string `toml:"file"` // relative to DataDir unless absolute
}

// LogConfig controls the rotating log file.
type LogConfig struct {
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "dark" or "light"
}

// Default returns the built-in configuration.
func Default() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		DataDir: filepath.Join(home, defaultDirName),
		Store:   StoreConfig{File: defaultStoreFile},
		Log: LogConfig{
			File:       defaultLogFile,
			MaxSizeMB:  5,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		UI: UIConfig{Theme: defaultTheme},
	}
}

// DefaultPath returns ~/.codetrack/config.toml.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, defaultDirName, "config.toml")
}

// Load reads path, or DefaultPath when path is empty. A missing file yields
// the defaults. A file that does not parse also yields the defaults, along
// with the parse error so the caller can report it.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var parsed Config
	if err := toml.Unmarshal(data, &parsed); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	merge(cfg, &parsed)
	return cfg, nil
}

// merge copies the non-zero fields of src over dst and validates the result.
func merge(dst, src *Config) {
	if src.DataDir != "" {
		dst.DataDir = expandHome(src.DataDir)
	}
	if src.Store.File != "" {
		dst.Store.File = src.Store.File
	}
	if src.Log.File != "" {
		dst.Log.File = src.Log.File
	}
	if src.Log.MaxSizeMB > 0 {
		dst.Log.MaxSizeMB = src.Log.MaxSizeMB
	}
	if src.Log.MaxBackups > 0 {
		dst.Log.MaxBackups = src.Log.MaxBackups
	}
	if src.Log.MaxAgeDays > 0 {
		dst.Log.MaxAgeDays = src.Log.MaxAgeDays
	}
	switch src.UI.Theme {
	case "dark", "light":
		dst.UI.Theme = src.UI.Theme
	}
}

// StorePath returns the absolute path of the database file.
func (c *Config) StorePath() string {
	return c.resolve(c.Store.File)
}

// LogPath returns the absolute path of the log file.
func (c *Config) LogPath() string {
	return c.resolve(c.Log.File)
}

func (c *Config) resolve(name string) string {
	name = expandHome(name)
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
