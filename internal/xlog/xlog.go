// Package xlog provides a configurable zerolog-backed logger shared by
// every component, the way gnark's logger package provides one root
// logger overridable by the embedding application.
package xlog

import (
	"os"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	logger = zerolog.New(output).With().Timestamp().Logger()
}

// Set overrides the global logger, e.g. to redirect into an embedding
// application's own logging pipeline.
func Set(l zerolog.Logger) {
	logger = l
}

// Disable silences all logging.
func Disable() {
	logger = zerolog.Nop()
}

// Logger returns a sublogger scoped to component.
func Logger(component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}
