// Package config loads and persists the application configuration from
// ~/.ecobin/config.yaml, with environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ecobin-app/ecobin/internal/logging"
)

// Environment variable overrides.
const (
	// EnvDataDir overrides the data directory.
	EnvDataDir = "ECOBIN_DATA_DIR"

	// EnvLogLevel overrides the configured log level.
	EnvLogLevel = "ECOBIN_LOG_LEVEL"
)

// configDirName is the dot directory under the user's home.
const configDirName = ".ecobin"

// Config is the full application configuration.
type Config struct {
	// DataDir is the root directory for the record store.
	DataDir string `yaml:"data_dir"`

	// Offline forces new records to be stamped pending.
	Offline bool `yaml:"offline"`

	Logging logging.Config `yaml:"logging"`

	// configPath is where Save writes; not serialized.
	configPath string `yaml:"-"`
}

// New returns a Config populated with defaults, overlaid with the config
// file (when present) and environment variables. A missing config file is
// not an error; an unreadable or malformed one is.
func New() (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(cfg.configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	} else if unmarshalErr := yaml.Unmarshal(data, cfg); unmarshalErr != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", cfg.configPath, unmarshalErr)
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// defaults builds the built-in configuration. The home directory anchors
// both the config file and the data dir; when it cannot be determined the
// current directory is used so the tool still runs.
func defaults() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	base := filepath.Join(home, configDirName)

	return &Config{
		DataDir: filepath.Join(base, "data"),
		Logging: logging.Config{
			Level:  "info",
			Format: "console",
		},
		configPath: filepath.Join(base, "config.yaml"),
	}
}

func applyEnvOverrides(cfg *Config) {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		cfg.DataDir = dir
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.Logging.Level = level
	}
}

// ConfigPath returns the path Save writes to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath overrides the file path used by Save. Tests use this to
// avoid touching the real home directory.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Save writes the configuration as YAML, creating the parent directory if
// needed.
func (c *Config) Save() error {
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if writeErr := os.WriteFile(c.configPath, data, 0600); writeErr != nil {
		return fmt.Errorf("writing config file: %w", writeErr)
	}
	return nil
}
