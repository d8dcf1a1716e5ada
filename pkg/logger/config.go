package logger

import (
	"log/slog"
	"strings"
)

// Config describes a logger in terms of environment variables.
type Config struct {
	Env        string   `env:"APP_ENV" envDefault:"development"`
	Service    string   `env:"SERVICE_NAME" envDefault:""`
	Level      string   `env:"LOG_LEVEL" envDefault:""`
	Format     string   `env:"LOG_FORMAT" envDefault:""`
	RedactKeys []string `env:"LOG_REDACT_KEYS" envSeparator:"," envDefault:"password,token,secret,authorization"`
	RedactMask string   `env:"LOG_REDACT_MASK" envDefault:""`
}

// NewFromConfig starts from the environment preset and applies the explicit
// level and format overrides on top. Unknown levels are ignored.
func NewFromConfig(cfg Config, opts ...Option) *slog.Logger {
	configOpts := []Option{WithEnvironment(cfg.Env, cfg.Service)}

	if cfg.Level != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(cfg.Level)); err == nil {
			configOpts = append(configOpts, WithLevel(lvl))
		}
	}
	if cfg.Format != "" {
		configOpts = append(configOpts, WithFormat(Format(strings.ToLower(cfg.Format))))
	}
	if len(cfg.RedactKeys) > 0 {
		configOpts = append(configOpts, WithRedactKeys(cfg.RedactKeys...))
	}
	if cfg.RedactMask != "" {
		configOpts = append(configOpts, WithRedactMask(cfg.RedactMask))
	}

	return New(append(configOpts, opts...)...)
}
