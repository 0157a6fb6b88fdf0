// Package logger wraps zerolog with the constructors used across the
// application. Components receive a *Logger by pointer; tests use Nop.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger embeds zerolog.Logger so the full zerolog API is available
// directly on *Logger.
type Logger struct {
	zerolog.Logger
}

// New constructs a JSON logger writing to stdout. The component label is
// attached to every entry so logs from different parts of the pipeline can
// be filtered apart.
func New(component string) *Logger {
	level := zerolog.InfoLevel
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = zerolog.DebugLevel
	}

	l := zerolog.New(os.Stdout).
		Level(level).
		With().
		Str("component", component).
		Timestamp().
		Logger()

	return &Logger{l}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}
