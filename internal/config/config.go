// Package config handles the XDG configuration directory and the optional
// config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"taskboard/internal/logging"
)

const (
	// AppName is the application directory name.
	AppName = "taskboard"

	// ConfigFile is the optional settings filename inside the config dir.
	ConfigFile = "config.yaml"

	// DebugLogFile receives logs while the interactive board owns the terminal.
	DebugLogFile = "debug.log"

	// DefaultBaseURL is the mock task API.
	DefaultBaseURL = "https://jsonplaceholder.typicode.com"

	// DefaultLimit is the number of tasks fetched on load.
	DefaultLimit = 10

	// DefaultTimeout bounds every API call.
	DefaultTimeout = 5 * time.Second
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// BaseURL is the root of the remote task API.
	BaseURL string

	// Limit is the number of tasks requested on load.
	Limit int

	// Timeout bounds each API call.
	Timeout time.Duration

	// Token, when set, is sent as a bearer token.
	Token string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// Log is the logger chosen for this run. Nil means discard.
	Log logrus.FieldLogger
}

// fileConfig is the on-disk shape of config.yaml.
type fileConfig struct {
	BaseURL string `yaml:"base_url"`
	Limit   int    `yaml:"limit"`
	Timeout string `yaml:"timeout"`
	Token   string `yaml:"token"`
}

// New creates a Config with defaults, using the default or specified config
// directory. If configDir is empty, uses XDG_CONFIG_HOME/taskboard or
// $HOME/.config/taskboard. A config.yaml in that directory, if present,
// overrides the defaults.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := &Config{
		Dir:     dir,
		BaseURL: DefaultBaseURL,
		Limit:   DefaultLimit,
		Timeout: DefaultTimeout,
	}
	if err := cfg.loadFile(); err != nil {
		return nil, err
	}
	return cfg, nil
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

// FilePath returns the path to config.yaml.
func (c *Config) FilePath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// DebugLogPath returns the path of the interactive board's log file.
func (c *Config) DebugLogPath() string {
	return filepath.Join(c.Dir, DebugLogFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// Logger returns c.Log, or a logger that drops everything when unset.
func (c *Config) Logger() logrus.FieldLogger {
	if c.Log != nil {
		return c.Log
	}
	return logging.Discard()
}

// SetBaseURL overrides the API root, ignoring blank values.
func (c *Config) SetBaseURL(url string) {
	url = strings.TrimSpace(url)
	if url != "" {
		c.BaseURL = strings.TrimRight(url, "/")
	}
}

// loadFile applies config.yaml on top of the defaults.
// A missing file is not an error.
func (c *Config) loadFile() error {
	data, err := os.ReadFile(c.FilePath())
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", ConfigFile, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("invalid %s: %w", ConfigFile, err)
	}

	c.SetBaseURL(fc.BaseURL)
	if fc.Limit < 0 {
		return fmt.Errorf("invalid %s: limit must be positive", ConfigFile)
	}
	if fc.Limit > 0 {
		c.Limit = fc.Limit
	}
	if fc.Timeout != "" {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil || d <= 0 {
			return fmt.Errorf("invalid %s: bad timeout %q", ConfigFile, fc.Timeout)
		}
		c.Timeout = d
	}
	c.Token = strings.TrimSpace(fc.Token)
	return nil
}
