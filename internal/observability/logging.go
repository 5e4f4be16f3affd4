// Package observability provides the launcher's structured logger.
package observability

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// LogConfig holds configuration for the structured logger.
type LogConfig struct {
	Level       string // "debug", "info", "warn", "error"
	Format      string // "json" or "text"
	ServiceName string
	Environment string

	// Output defaults to os.Stdout.
	Output io.Writer
}

// sensitivePatterns contains field name patterns that should be redacted.
// These patterns are matched case-insensitively against attribute keys.
// The launcher forwards its whole environment to the server, which carries
// Telegram API credentials.
var sensitivePatterns = []string{
	"_key",
	"_secret",
	"_token",
	"_password",
	"_hash",
	"_credential",
	"authorization",
	"bearer",
	"api_id",
	"apikey",
	"secret",
	"password",
	"private",
}

// ParseLevel maps a level name to a slog level. Unknown names mean info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// InitLogger creates a new structured logger with secret redaction.
// The returned logger is also set as the default via slog.SetDefault.
func InitLogger(cfg LogConfig) *slog.Logger {
	w := cfg.Output
	if w == nil {
		w = os.Stdout
	}

	handler := NewRedactingHandler(w, cfg.Format, &slog.HandlerOptions{
		Level: ParseLevel(cfg.Level),
	})

	logger := slog.New(handler).With(
		slog.String("service", cfg.ServiceName),
		slog.String("environment", cfg.Environment),
	)

	slog.SetDefault(logger)
	return logger
}

// NewRedactingHandler creates a text or json slog handler that redacts
// sensitive fields. A ReplaceAttr already set in opts runs first.
func NewRedactingHandler(w io.Writer, format string, opts *slog.HandlerOptions) slog.Handler {
	var o slog.HandlerOptions
	if opts != nil {
		o = *opts
	}

	originalReplace := o.ReplaceAttr
	o.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
		if originalReplace != nil {
			a = originalReplace(groups, a)
		}
		return redactSecrets(groups, a)
	}

	if strings.ToLower(format) == "json" {
		return slog.NewJSONHandler(w, &o)
	}
	return slog.NewTextHandler(w, &o)
}

// redactSecrets is a ReplaceAttr function that redacts sensitive fields.
func redactSecrets(_ []string, a slog.Attr) slog.Attr {
	if isSensitive(a.Key) {
		return slog.String(a.Key, "[REDACTED]")
	}
	return a
}

func isSensitive(name string) bool {
	lower := strings.ToLower(name)
	for _, pattern := range sensitivePatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}

// RedactEnv returns a copy of environ with the values of sensitive
// variables replaced, for debug logging of the server environment.
func RedactEnv(environ []string) []string {
	out := make([]string, 0, len(environ))
	for _, kv := range environ {
		name, _, found := strings.Cut(kv, "=")
		if found && isSensitive(name) {
			out = append(out, name+"=[REDACTED]")
			continue
		}
		out = append(out, kv)
	}
	return out
}
