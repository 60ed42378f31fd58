// Package config loads diagnostic settings from the environment
package config

import (
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-statblock/internal/errors"
)

// Log styles accepted by MSTSB_LOG_STYLE
const (
	StyleAlways = "always"
	StyleNever  = "never"
	StyleAuto   = "auto"
)

// LevelTrace and LevelOff extend slog's levels for MSTSB_LOG_LEVEL=trace|off
const (
	LevelTrace = slog.LevelDebug - 4
	LevelOff   = slog.LevelError + 8
)

var (
	levels = map[string]slog.Level{
		"trace":   LevelTrace,
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"off":     LevelOff,
	}
	levelNames = []string{"trace", "debug", "info", "warn", "warning", "error", "off"}
	styleNames = []string{StyleAlways, StyleNever, StyleAuto}
)

// Config controls diagnostic output only; it never changes the markup
type Config struct {
	LogLevel string `env:"MSTSB_LOG_LEVEL" envDefault:"info"`
	LogStyle string `env:"MSTSB_LOG_STYLE" envDefault:"always"`
}

// Load reads the configuration from the process environment
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFromMap reads the configuration from the given variables instead of
// the process environment
func LoadFromMap(environment map[string]string) (*Config, error) {
	if environment == nil {
		environment = map[string]string{}
	}
	return parse(env.Options{Environment: environment})
}

func parse(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogStyle = strings.ToLower(strings.TrimSpace(cfg.LogStyle))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that level and style are known values
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("MSTSB_LOG_LEVEL", c.LogLevel, levelNames, vb)
	errors.ValidateEnum("MSTSB_LOG_STYLE", c.LogStyle, styleNames, vb)

	return vb.Build()
}

// Level returns the slog level for LogLevel, defaulting to info
func (c *Config) Level() slog.Level {
	if level, ok := levels[c.LogLevel]; ok {
		return level
	}
	return slog.LevelInfo
}
