// Package config provides configuration loading using koanf.
// Precedence: environment variables, then compiled defaults.
package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/aelexs/bridge-launcher/internal/domain"
)

// Config holds all launcher configuration.
type Config struct {
	// Environment identifier: "local", "dev", "prod"
	Environment string `koanf:"environment"`

	// Logging configuration. LogFormat defaults by environment.
	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`

	// Port is passed to the server verbatim. It is deliberately a string:
	// the server, not the launcher, rejects values it cannot parse.
	Port string `koanf:"port"`

	// Server is the ASGI server executable, looked up in PATH unless it
	// contains a slash.
	Server string `koanf:"server"`

	// Mode selects process replacement ("exec") or supervision ("child").
	Mode string `koanf:"mode"`

	// SessionsDir is created before launch. Empty disables it.
	SessionsDir string `koanf:"sessions_dir"`
}

// envKeys maps the environment variables the launcher reads to config keys.
// Anything else in the environment is ignored.
var envKeys = map[string]string{
	"ENVIRONMENT":           "environment",
	"LOG_LEVEL":             "log_level",
	"LOG_FORMAT":            "log_format",
	domain.PortEnv:          "port",
	"LAUNCHER_SERVER":       "server",
	"LAUNCHER_MODE":         "mode",
	"LAUNCHER_SESSIONS_DIR": "sessions_dir",
}

// defaults returns a Config with compiled default values.
func defaults() *Config {
	return &Config{
		Environment: "local",
		LogLevel:    "info",
		Port:        domain.DefaultPort,
		Server:      domain.DefaultServer,
		Mode:        domain.ModeExec,
		SessionsDir: domain.DefaultSessionsDir,
	}
}

// Load loads configuration following the precedence:
// 1. Environment variables (highest)
// 2. Compiled defaults (lowest)
//
// An empty variable counts as unset, so PORT="" resolves to the default port.
func Load(ctx context.Context) (*Config, error) {
	k := koanf.New(".")

	cfg := defaults()

	err := k.Load(env.ProviderWithValue("", ".", envKey), nil)
	if err != nil {
		return nil, fmt.Errorf("load env vars: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = cfg.defaultLogFormat()
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// envKey is the koanf env callback. Returning an empty key drops the
// variable.
func envKey(name, value string) (string, interface{}) {
	key, ok := envKeys[name]
	if !ok || value == "" {
		return "", nil
	}
	return key, value
}

// validate rejects values the launcher itself interprets. The port is not
// checked here.
func validate(cfg *Config) error {
	if !domain.IsValidMode(cfg.Mode) {
		return fmt.Errorf("%w: mode %q", domain.ErrInvalidConfig, cfg.Mode)
	}

	switch strings.ToLower(cfg.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format %q", domain.ErrInvalidConfig, cfg.LogFormat)
	}

	return nil
}

// ResolvePort returns raw unless it is empty, in which case it returns the
// default port. No numeric or range check is applied.
func ResolvePort(raw string) string {
	if raw == "" {
		return domain.DefaultPort
	}
	return raw
}

// IsLocal returns true if running in local development environment.
func (c *Config) IsLocal() bool {
	return c.Environment == "local"
}

// defaultLogFormat is used when LOG_FORMAT is unset: text for a developer
// terminal, json for deployed environments.
func (c *Config) defaultLogFormat() string {
	if c.IsLocal() {
		return "text"
	}
	return "json"
}
