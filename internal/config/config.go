package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"arttable/internal/logging"
)

// EnvPrefix is the prefix for environment overrides, e.g. ARTTABLE_API_BASE_URL
const EnvPrefix = "ARTTABLE"

// Config represents the application configuration
type Config struct {
	Version int           `mapstructure:"version" toml:"version"`
	API     APIConfig     `mapstructure:"api" toml:"api"`
	UI      UISettings    `mapstructure:"ui" toml:"ui"`
	Log     LogSettings   `mapstructure:"log" toml:"log"`
	Metrics MetricsConfig `mapstructure:"metrics" toml:"metrics"`
}

// APIConfig configures the catalog client
type APIConfig struct {
	BaseURL        string `mapstructure:"base_url" toml:"base_url"`
	UserAgent      string `mapstructure:"user_agent" toml:"user_agent"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" toml:"timeout_seconds"`
	// RequestsPerMinute paces page fetches, 0 disables pacing
	RequestsPerMinute int `mapstructure:"requests_per_minute" toml:"requests_per_minute"`
}

// Timeout returns the request timeout as a duration
func (a APIConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// UISettings represents UI-related configuration
type UISettings struct {
	PageSize        int   `mapstructure:"page_size" toml:"page_size"`
	PageSizeOptions []int `mapstructure:"page_size_options" toml:"page_size_options"`
	AltScreen       bool  `mapstructure:"alt_screen" toml:"alt_screen"`
}

// LogSettings represents logging configuration
type LogSettings struct {
	Level      string `mapstructure:"level" toml:"level"`
	File       string `mapstructure:"file" toml:"file"`
	Pretty     bool   `mapstructure:"pretty" toml:"pretty"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" toml:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days" toml:"max_age_days"`
}

// Logging converts the settings into a logger configuration
func (l LogSettings) Logging() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = logging.LogLevel(l.Level)
	cfg.FilePath = l.File
	cfg.Pretty = l.Pretty
	cfg.MaxSizeMB = l.MaxSizeMB
	cfg.MaxBackups = l.MaxBackups
	cfg.MaxAgeDays = l.MaxAgeDays
	return cfg
}

// MetricsConfig configures the optional Prometheus listener
type MetricsConfig struct {
	Addr string `mapstructure:"addr" toml:"addr"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		API: APIConfig{
			BaseURL:           "https://api.artic.edu/api/v1",
			UserAgent:         "arttable/1.0",
			TimeoutSeconds:    15,
			RequestsPerMinute: 60,
		},
		UI: UISettings{
			PageSize:        6,
			PageSizeOptions: []int{6, 12, 18},
			AltScreen:       true,
		},
		Log: LogSettings{
			Level:      "info",
			File:       "arttable.log",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// DefaultPath returns the config file location under the user config directory
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "arttable", "config.toml")
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("version", d.Version)
	v.SetDefault("api.base_url", d.API.BaseURL)
	v.SetDefault("api.user_agent", d.API.UserAgent)
	v.SetDefault("api.timeout_seconds", d.API.TimeoutSeconds)
	v.SetDefault("api.requests_per_minute", d.API.RequestsPerMinute)
	v.SetDefault("ui.page_size", d.UI.PageSize)
	v.SetDefault("ui.page_size_options", d.UI.PageSizeOptions)
	v.SetDefault("ui.alt_screen", d.UI.AltScreen)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.pretty", d.Log.Pretty)
	v.SetDefault("log.max_size_mb", d.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", d.Log.MaxBackups)
	v.SetDefault("log.max_age_days", d.Log.MaxAgeDays)
	v.SetDefault("metrics.addr", d.Metrics.Addr)
}

// Load reads configuration from path (or the default location when empty),
// applies ARTTABLE_* environment overrides, and validates the result.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("toml")

	if path == "" {
		path = DefaultPath()
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for values the UI cannot work with
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("invalid config: api.base_url is required")
	}
	if c.API.RequestsPerMinute < 0 {
		return fmt.Errorf("invalid config: api.requests_per_minute must not be negative (got %d)", c.API.RequestsPerMinute)
	}
	if c.API.TimeoutSeconds <= 0 {
		return fmt.Errorf("invalid config: api.timeout_seconds must be positive (got %d)", c.API.TimeoutSeconds)
	}
	if len(c.UI.PageSizeOptions) == 0 {
		return errors.New("invalid config: ui.page_size_options must not be empty")
	}
	for _, n := range c.UI.PageSizeOptions {
		if n <= 0 {
			return fmt.Errorf("invalid config: page size option %d must be positive", n)
		}
	}
	if !slices.Contains(c.UI.PageSizeOptions, c.UI.PageSize) {
		return fmt.Errorf("invalid config: ui.page_size %d is not one of %v", c.UI.PageSize, c.UI.PageSizeOptions)
	}
	if !logging.ValidLevel(c.Log.Level) {
		return fmt.Errorf("invalid config: unknown log level %q", c.Log.Level)
	}
	return nil
}

// Marshal encodes the configuration as TOML
func Marshal(cfg *Config) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// Save writes configuration to path, creating the directory if needed
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := Marshal(cfg)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
