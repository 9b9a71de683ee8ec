package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Storage backends
const (
	BackendPreferences = "preferences"
	BackendSQLite      = "sqlite"
)

// Defaults
const (
	DefaultWindowWidth  = 960
	DefaultWindowHeight = 720
	DefaultDBFile       = "healthdiary.db"
	DefaultConfigFile   = "config.yaml"
)

// Config is the optional startup configuration file
type Config struct {
	Storage  StorageConfig `yaml:"storage"`
	Window   WindowConfig  `yaml:"window"`
	Language string        `yaml:"language"`
}

// StorageConfig selects the durable backend
type StorageConfig struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

// WindowConfig holds the initial window size
type WindowConfig struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// Load reads the YAML file at path. A missing file yields the defaults.
// dataDir is used to place the SQLite file when no path is configured.
func Load(path, dataDir string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.defaults(dataDir)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) defaults(dataDir string) {
	if c.Storage.Backend == "" {
		c.Storage.Backend = BackendPreferences
	}
	if c.Storage.Path == "" {
		c.Storage.Path = filepath.Join(dataDir, DefaultDBFile)
	}
	if c.Window.Width <= 0 {
		c.Window.Width = DefaultWindowWidth
	}
	if c.Window.Height <= 0 {
		c.Window.Height = DefaultWindowHeight
	}
	if c.Language == "" {
		c.Language = LanguageSystem
	}
}

func (c *Config) validate() error {
	switch c.Storage.Backend {
	case BackendPreferences, BackendSQLite:
		return nil
	default:
		return fmt.Errorf("unknown storage backend %q (want %s or %s)", c.Storage.Backend, BackendPreferences, BackendSQLite)
	}
}
