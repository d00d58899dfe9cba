// Package config handles the configuration directory, the optional
// settings file, and environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"itasks/internal/backend/simulated"
)

const (
	// AppName is the application directory name.
	AppName = "itasks"

	// SettingsFile is the optional settings filename in the config dir.
	SettingsFile = "config.yaml"

	// LogFile receives debug logs from the interactive screen.
	LogFile = "itasks.log"

	// EnvEndpoint overrides the endpoint from the settings file.
	EnvEndpoint = "ITASKS_ENDPOINT"

	// EnvToken overrides the bearer token from the settings file.
	EnvToken = "ITASKS_TOKEN"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// Logger is set by the dispatcher. Nil means no logging.
	Logger *slog.Logger

	// Endpoint is the task collection URL. Empty or non-secure endpoints
	// are simulated.
	Endpoint string

	// Token is an optional bearer token for the real endpoint.
	Token string

	// SimulatedDelay is how long a simulated create takes.
	SimulatedDelay time.Duration

	// RequestTimeout bounds each real request. Zero means no timeout
	// beyond the transport defaults.
	RequestTimeout time.Duration
}

// fileSettings is the on-disk shape of config.yaml.
type fileSettings struct {
	Endpoint       string `yaml:"endpoint"`
	Token          string `yaml:"token"`
	SimulatedDelay *time.Duration `yaml:"simulated_delay"`
	RequestTimeout *time.Duration `yaml:"request_timeout"`
}

// New creates a Config for the default or specified config directory,
// reading config.yaml there if it exists and then applying environment
// overrides.
// If configDir is empty, uses XDG_CONFIG_HOME/itasks or $HOME/.config/itasks.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := &Config{
		Dir:            dir,
		SimulatedDelay: simulated.DefaultDelay,
	}

	if err := cfg.load(); err != nil {
		return nil, err
	}

	if v := os.Getenv(EnvEndpoint); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv(EnvToken); v != "" {
		cfg.Token = v
	}
	return cfg, nil
}

// load reads the settings file. A missing file is not an error.
func (c *Config) load() error {
	data, err := os.ReadFile(c.SettingsPath())
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", SettingsFile, err)
	}

	var s fileSettings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid %s: %w", SettingsFile, err)
	}

	c.Endpoint = s.Endpoint
	c.Token = s.Token
	if s.SimulatedDelay != nil {
		if err := checkDuration("simulated_delay", *s.SimulatedDelay); err != nil {
			return err
		}
		c.SimulatedDelay = *s.SimulatedDelay
	}
	if s.RequestTimeout != nil {
		if err := checkDuration("request_timeout", *s.RequestTimeout); err != nil {
			return err
		}
		c.RequestTimeout = *s.RequestTimeout
	}
	return nil
}

func checkDuration(key string, d time.Duration) error {
	if d < 0 {
		return fmt.Errorf("invalid %s in %s: must not be negative", key, SettingsFile)
	}
	return nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// SettingsPath returns the path to config.yaml.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.Dir, SettingsFile)
}

// LogPath returns the path to the interactive screen's debug log.
func (c *Config) LogPath() string {
	return filepath.Join(c.Dir, LogFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}
