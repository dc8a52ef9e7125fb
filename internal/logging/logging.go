// Package logging configures the process-wide structured logger.
//
// The program is a pipe filter, so logging is disabled unless debug
// mode asks for it, and all log output goes to stderr to keep stdout
// clean for data.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global logger. With debug off every log call
// becomes a no-op; with it on, debug-level console output goes to w.
func Setup(w io.Writer, debug bool) {
	if !debug {
		zerolog.SetGlobalLevel(zerolog.Disabled)
		return
	}
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
	}
	log.Logger = zerolog.New(console).With().Timestamp().Logger()
}

// Get returns a logger tagged with a component name.
func Get(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}
