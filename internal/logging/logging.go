// Package logging constructs the application's zerolog logger.
package logging

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New builds the root logger: JSON to stdout in production, a console
// writer otherwise. Unknown levels fall back to info.
func New(level string, production bool) zerolog.Logger {
	lvl := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level))); err == nil {
		lvl = parsed
	}

	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	if production {
		zerolog.TimeFieldFormat = time.RFC3339Nano
		return zerolog.New(os.Stdout).Level(lvl).With().Timestamp().Logger()
	}
	return zerolog.New(output).Level(lvl).With().Timestamp().Logger()
}
