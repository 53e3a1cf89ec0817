// Package logging provides structured logging for marquee using zerolog.
// Console output is used when stderr is a terminal and JSON otherwise, so
// log lines stay readable next to the interactive menu and parseable when
// the CLI runs inside scripts.
//
// Example usage:
//
//	log := logging.Default()
//	log.Debug().Str("title", "Heat").Msg("Movie added")
//
//	ctx := logging.WithOperation(context.Background(), "add")
//	logging.FromContext(ctx).Warn().Err(err).Msg("Catalog unreadable, using empty catalog")
package logging

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// defaultLogger is the global logger instance.
var defaultLogger zerolog.Logger

func init() {
	defaultLogger = createDefaultLogger()
}

// createDefaultLogger builds the logger used before the CLI applies its config.
func createDefaultLogger() zerolog.Logger {
	var writer io.Writer = os.Stderr

	if isTerminal(os.Stderr) && os.Getenv("LOG_FORMAT") != "json" {
		writer = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.Kitchen,
			NoColor:    os.Getenv("NO_COLOR") != "",
		}
	}

	level := parseLevel(getEnvOrDefault("LOG_LEVEL", DefaultLevel))

	return zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// Default returns the default global logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetDefault sets the default global logger.
func SetDefault(logger zerolog.Logger) {
	defaultLogger = logger
	log.Logger = logger
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
