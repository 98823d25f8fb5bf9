// Package observability configures structured logging for the nxcube tools.
package observability

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger installs a console logger on stderr, so rendered cubes on
// stdout stay clean, and makes it the global zerolog logger.
func InitLogger(app, level string) zerolog.Logger {
	return NewLogger(os.Stderr, app, level)
}

// NewLogger builds a console logger writing to w. Unknown levels fall back
// to info.
func NewLogger(w io.Writer, app, level string) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}
	logger := zerolog.New(output).With().Timestamp().Str("app", app).Logger().Level(ParseLevel(level))
	log.Logger = logger
	return logger
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
