// Package config handles the XDG configuration directory and client settings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application directory name.
	AppName = "taskclient"

	// ConfigFile is the settings filename inside the config directory.
	ConfigFile = "config.yaml"

	// EnvFile is the optional dotenv filename inside the config directory.
	EnvFile = ".env"

	// LogFile is the debug log filename.
	LogFile = "debug.log"

	// DefaultAPIURL is the API origin used when nothing overrides it.
	DefaultAPIURL = "http://localhost:3000"

	// DefaultTasksURL is the task collection endpoint, relative to the API origin.
	DefaultTasksURL = "/tasks"

	// DefaultTimeout bounds each API request.
	DefaultTimeout = 30 * time.Second
)

// Environment variable overrides.
const (
	EnvAPIURL   = "TASKCLIENT_API_URL"
	EnvTasksURL = "TASKCLIENT_TASKS_URL"
	EnvPassword = "TASKCLIENT_PASSWORD"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string `yaml:"-"`

	// APIURL is the origin of the task API, without a trailing slash.
	APIURL string `yaml:"api_url"`

	// TasksURL is the endpoint used to load the task collection.
	// A relative value resolves against APIURL.
	TasksURL string `yaml:"tasks_url"`

	// Timeout bounds each request. Zero disables the deadline.
	Timeout time.Duration `yaml:"timeout"`

	// Debug enables debug logging.
	Debug bool `yaml:"-"`

	// Quiet suppresses informational output.
	Quiet bool `yaml:"-"`

	// Logger is attached by the dispatcher once Debug is known.
	Logger *zap.Logger `yaml:"-"`
}

// New creates a Config for the default or specified config directory with default settings.
// If configDir is empty, uses XDG_CONFIG_HOME/taskclient or $HOME/.config/taskclient.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{
		Dir:      dir,
		APIURL:   DefaultAPIURL,
		TasksURL: DefaultTasksURL,
		Timeout:  DefaultTimeout,
	}, nil
}

// Load creates a Config and applies, in order: config.yaml, the .env file,
// and process environment overrides. Missing files are not an error.
func Load(configDir string) (*Config, error) {
	cfg, err := New(configDir)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(cfg.Path())
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", ConfigFile, err)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("failed to read %s: %w", ConfigFile, err)
	}

	// godotenv never overrides variables already set in the environment.
	if err := godotenv.Load(cfg.EnvPath()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("invalid %s: %w", EnvFile, err)
	}

	if v := os.Getenv(EnvAPIURL); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv(EnvTasksURL); v != "" {
		cfg.TasksURL = v
	}

	if err := cfg.SetAPIURL(cfg.APIURL); err != nil {
		return nil, err
	}
	if cfg.TasksURL == "" {
		cfg.TasksURL = DefaultTasksURL
	}
	if cfg.Timeout < 0 {
		return nil, fmt.Errorf("invalid timeout: %s", cfg.Timeout)
	}
	return cfg, nil
}

// SetAPIURL validates and stores the API origin.
func (c *Config) SetAPIURL(raw string) error {
	raw = strings.TrimRight(strings.TrimSpace(raw), "/")
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid api url: %q", raw)
	}
	c.APIURL = raw
	return nil
}

// ResolveTasksURL returns the absolute task collection URL.
func (c *Config) ResolveTasksURL() (string, error) {
	ref, err := url.Parse(c.TasksURL)
	if err != nil {
		return "", fmt.Errorf("invalid tasks url: %q", c.TasksURL)
	}
	if ref.IsAbs() {
		return ref.String(), nil
	}
	base, err := url.Parse(c.APIURL + "/")
	if err != nil {
		return "", fmt.Errorf("invalid api url: %q", c.APIURL)
	}
	return base.ResolveReference(ref).String(), nil
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

// Path returns the path to config.yaml.
func (c *Config) Path() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// EnvPath returns the path to the dotenv file.
func (c *Config) EnvPath() string {
	return filepath.Join(c.Dir, EnvFile)
}

// LogPath returns the path to the debug log.
func (c *Config) LogPath() string {
	return filepath.Join(c.Dir, LogFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// Log returns the logger attached by the dispatcher, or a no-op logger.
func (c *Config) Log() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
