// Package config loads the optional YAML settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/csheth/algoscout/internal/nav"
)

// EnvPath overrides the default settings location.
const EnvPath = "ALGOSCOUT_CONFIG"

const appDir = "algoscout"

// Config holds user settings. Zero values are replaced by defaults on load.
type Config struct {
	ContentDir string    `yaml:"content_dir"`
	AltScreen  *bool     `yaml:"alt_screen"`
	StartView  string    `yaml:"start_view"`
	ExportPath string    `yaml:"export_path"`
	Log        LogConfig `yaml:"log"`
}

// LogConfig controls the session log.
type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// Default returns the settings used when no file exists.
func Default() Config {
	cfg := Config{}
	cfg.applyDefaults()
	return cfg
}

// UseAltScreen reports the effective alt screen setting.
func (c Config) UseAltScreen() bool {
	return c.AltScreen == nil || *c.AltScreen
}

// View returns the configured start screen.
func (c Config) View() nav.View {
	return nav.ParseView(c.StartView)
}

func (c *Config) applyDefaults() {
	if c.StartView == "" {
		c.StartView = string(nav.Home)
	}
	if c.ExportPath == "" {
		c.ExportPath = filepath.Join(dataDir(), "comparisons.json")
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// DefaultPath returns $ALGOSCOUT_CONFIG or <user config dir>/algoscout/config.yaml.
func DefaultPath() (string, error) {
	if path := os.Getenv(EnvPath); path != "" {
		return path, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, appDir, "config.yaml"), nil
}

// Load reads settings from path. An empty path means DefaultPath, and a
// missing file at the default location yields defaults. A missing file that
// was asked for explicitly is an error.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return Default(), nil
		}
		explicit = os.Getenv(EnvPath) != ""
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyDefaults()
	if view := nav.View(cfg.StartView); !view.Valid() {
		return Config{}, fmt.Errorf("start_view %q: want home, list, detail or compare", cfg.StartView)
	}
	return cfg, nil
}

func dataDir() string {
	if dir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(dir, ".local", "share", appDir)
	}
	return filepath.Join(os.TempDir(), appDir)
}
