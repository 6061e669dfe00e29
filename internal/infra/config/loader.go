// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/taskdeck/taskdeck/internal/domain"
)

// ConfigFileName is the name of the TOML configuration file.
const ConfigFileName = "config.toml"

// Loader loads configuration from a TOML file.
type Loader struct {
	confDir string // Config directory (e.g. ~/.config/taskdeck)
}

// NewLoader creates a Loader rooted at the default config directory.
func NewLoader() *Loader {
	return &Loader{confDir: defaultConfigDir()}
}

// NewLoaderWithDir creates a Loader with a custom config directory.
// This is useful for testing.
func NewLoaderWithDir(confDir string) *Loader {
	return &Loader{confDir: confDir}
}

// defaultConfigDir returns the default config directory.
func defaultConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "taskdeck")
}

// fileConfig mirrors the TOML layout. Pointer fields distinguish "absent"
// from zero so defaults survive a partial file.
type fileConfig struct {
	Store struct {
		Seed         *string `toml:"seed"`
		LatencyMinMS *int    `toml:"latency_min_ms"`
		LatencyMaxMS *int    `toml:"latency_max_ms"`
	} `toml:"store"`
	Session struct {
		Storage *string `toml:"storage"`
		Path    *string `toml:"path"`
	} `toml:"session"`
	Log struct {
		Level *string `toml:"level"`
	} `toml:"log"`
}

// Load returns the configuration merged over defaults. A missing file
// yields the defaults without error.
func (l *Loader) Load() (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()

	if l.confDir == "" {
		return cfg, nil
	}

	content, err := os.ReadFile(filepath.Join(l.confDir, ConfigFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var file fileConfig
	if err := toml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if file.Store.Seed != nil {
		cfg.Store.Seed = *file.Store.Seed
	}
	if file.Store.LatencyMinMS != nil {
		cfg.Store.LatencyMinMS = *file.Store.LatencyMinMS
	}
	if file.Store.LatencyMaxMS != nil {
		cfg.Store.LatencyMaxMS = *file.Store.LatencyMaxMS
	}
	if file.Session.Storage != nil {
		cfg.Session.Storage = *file.Session.Storage
	}
	if file.Session.Path != nil {
		cfg.Session.Path = *file.Session.Path
	}
	if file.Log.Level != nil {
		cfg.Log.Level = *file.Log.Level
	}

	if cfg.Session.Storage != domain.SessionStorageFile && cfg.Session.Storage != domain.SessionStorageSQLite {
		return nil, fmt.Errorf("unknown session storage %q", cfg.Session.Storage)
	}
	if cfg.Store.LatencyMinMS < 0 || cfg.Store.LatencyMaxMS < cfg.Store.LatencyMinMS {
		return nil, fmt.Errorf("invalid latency bounds %d..%d", cfg.Store.LatencyMinMS, cfg.Store.LatencyMaxMS)
	}

	return cfg, nil
}
