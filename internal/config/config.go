package config

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/RoboSyntax/white-raven-webapp/internal/filter"
	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

const (
	EnvAPIURL   = "WHITERAVEN_API_URL"
	EnvLogLevel = "WHITERAVEN_LOG_LEVEL"
)

type Filters struct {
	MinQuality int `yaml:"min_quality"`
	MinLength  int `yaml:"min_length"`
	MaxLength  int `yaml:"max_length"`
}

type Toasts struct {
	Error   string `yaml:"error"`
	Success string `yaml:"success"`
}

type Clipboard struct {
	OSC52 bool `yaml:"osc52"`
}

type Log struct {
	Level string `yaml:"level"`
	File  string `yaml:"file,omitempty"`
}

type Config struct {
	APIURL         string    `yaml:"api_url"`
	RequestTimeout string    `yaml:"request_timeout"`
	SearchLimit    int       `yaml:"search_limit"`
	Locale         string    `yaml:"locale"`
	Filters        Filters   `yaml:"filters"`
	Toasts         Toasts    `yaml:"toasts"`
	Clipboard      Clipboard `yaml:"clipboard"`
	Log            Log       `yaml:"log"`
}

// RequestTimeoutDuration returns the per-request timeout. "0" disables it.
func (c *Config) RequestTimeoutDuration() time.Duration {
	return parseDuration(c.RequestTimeout, 30*time.Second)
}

func (c *Config) ErrorToastDuration() time.Duration {
	return parseDuration(c.Toasts.Error, 3*time.Second)
}

func (c *Config) SuccessToastDuration() time.Duration {
	return parseDuration(c.Toasts.Success, 2*time.Second)
}

// FilterDefaults returns the starting filters for a dashboard session.
func (c *Config) FilterDefaults() filter.Defaults {
	d := filter.Defaults{
		MinQuality: c.Filters.MinQuality,
		MinLength:  c.Filters.MinLength,
		MaxLength:  c.Filters.MaxLength,
	}
	if d.MinLength <= 0 {
		d.MinLength = filter.StandardDefaults.MinLength
	}
	if d.MaxLength <= 0 {
		d.MaxLength = filter.StandardDefaults.MaxLength
	}
	return d
}

func (c *Config) LogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// LogPath is where the log file lives; the TUI owns the terminal so logs never go to stderr.
func (c *Config) LogPath() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	return filepath.Join(xdg.StateHome, "whiteraven", "whiteraven.log")
}

func parseDuration(s string, def time.Duration) time.Duration {
	if strings.TrimSpace(s) == "0" {
		return 0
	}
	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return def
	}
	return d
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "whiteraven", "config.yaml")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

// LoadEnv loads .env.local and .env from the working directory. Variables
// already set in the environment win.
func LoadEnv() error {
	for _, p := range []string{".env.local", ".env"} {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("loading %s: %w", p, err)
		}
	}
	return nil
}

// Load reads the config at path (or the default path) over the embedded
// defaults, then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// Non-fatal: the embedded defaults still apply.
		_ = writeDefaults(path)
	default:
		return nil, fmt.Errorf("reading config: %w", err)
	}

	applyEnv(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvAPIURL); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

// Validate checks a config assembled outside Load, e.g. after flag overrides.
func Validate(cfg *Config) error {
	return validate(cfg)
}

func validate(cfg *Config) error {
	if cfg.APIURL == "" {
		return fmt.Errorf("api_url is required")
	}
	u, err := url.Parse(cfg.APIURL)
	if err != nil {
		return fmt.Errorf("api_url: invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api_url: scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("api_url: missing host in %q", cfg.APIURL)
	}
	if cfg.SearchLimit <= 0 {
		return fmt.Errorf("search_limit must be positive, got %d", cfg.SearchLimit)
	}
	if q := cfg.Filters.MinQuality; q < filter.MinQuality || q > filter.MaxQuality {
		return fmt.Errorf("filters.min_quality must be between %d and %d, got %d", filter.MinQuality, filter.MaxQuality, q)
	}
	for name, v := range map[string]string{
		"request_timeout": cfg.RequestTimeout,
		"toasts.error":    cfg.Toasts.Error,
		"toasts.success":  cfg.Toasts.Success,
	} {
		if v == "" || strings.TrimSpace(v) == "0" {
			continue
		}
		if _, err := time.ParseDuration(v); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}
