package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable name.
const Prefix = "PB"

// Config holds the server configuration.
type Config struct {
	AppEnv   string `envconfig:"APP_ENV" default:"dev"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Port     int    `envconfig:"PORT" default:"8080"`

	Session Session `envconfig:"SESSION"`
	Otel    Otel    `envconfig:"OTEL"`

	MaxUploadBytes int64 `envconfig:"MAX_UPLOAD_BYTES" default:"5242880"`
}

// Session holds the browser session limits.
type Session struct {
	TTL time.Duration `envconfig:"TTL" default:"2h"`
	Max int           `envconfig:"MAX" default:"1024"`
}

// Otel holds OTEL metrics export settings.
type Otel struct {
	Enabled  bool   `envconfig:"ENABLED" default:"false"`
	Endpoint string `envconfig:"ENDPOINT"`
	Insecure bool   `envconfig:"INSECURE" default:"false"`
}

// Load loads configuration from PB_* environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values envconfig cannot check on its own.
func (c *Config) Validate() error {
	switch c.AppEnv {
	case "dev", "prod":
	default:
		return fmt.Errorf("invalid %s_APP_ENV %q (allowed: dev, prod)", Prefix, c.AppEnv)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid %s_PORT %d", Prefix, c.Port)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("invalid %s_SESSION_TTL %s: must be positive", Prefix, c.Session.TTL)
	}
	if c.Session.Max <= 0 {
		return fmt.Errorf("invalid %s_SESSION_MAX %d: must be positive", Prefix, c.Session.Max)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("invalid %s_MAX_UPLOAD_BYTES %d: must be positive", Prefix, c.MaxUploadBytes)
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid %s_LOG_LEVEL %q (allowed: debug, info, warn, error)", Prefix, c.LogLevel)
	}
}
