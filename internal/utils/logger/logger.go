// Package logger builds the zerolog logger used by the console programs.
package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New returns a logger configured for the given environment.
//
// Development (dev): human-readable console output at DEBUG level.
// Staging: JSON output at DEBUG level.
// Production (prod): JSON output at INFO level.
//
// Output should be stderr: stdout carries the menus and tables.
func New(env string, out io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	switch env {
	case "prod":
		return zerolog.New(out).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	case "staging":
		return zerolog.New(out).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	default: // "dev" and anything unrecognised
		writer := zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
		return zerolog.New(writer).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	}
}
