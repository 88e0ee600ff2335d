// Package logging configures the zerolog loggers used across notekeep.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config selects the log level and output format.
type Config struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

var base = zerolog.Nop()

// New builds a logger writing to w.
func New(cfg Config, w io.Writer) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if value := strings.TrimSpace(cfg.Level); value != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(value))
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		level = parsed
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", FormatConsole:
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	case FormatJSON:
	default:
		return zerolog.Nop(), fmt.Errorf("invalid log format %q", cfg.Format)
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

// Init sets the base logger from cfg, writing to stderr.
func Init(cfg Config) error {
	logger, err := New(cfg, os.Stderr)
	if err != nil {
		return err
	}
	base = logger
	return nil
}

// Component returns the base logger tagged with a component name.
func Component(name string) zerolog.Logger {
	return base.With().Str("component", name).Logger()
}
