package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

// Setup configures the global zerolog logger from the environment.
//
// Supported env vars:
//   - LOG_LEVEL (debug, info, warn, error; default info)
//   - LOG_FORMAT (console, json; default console unless APP_ENV is production)
func Setup() zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL"))))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	zlog.Logger = zerolog.New(writer(os.Stdout)).With().Timestamp().Logger()
	return zlog.Logger
}

func writer(out io.Writer) io.Writer {
	format := strings.ToLower(strings.TrimSpace(os.Getenv("LOG_FORMAT")))
	if format == "" {
		env := strings.ToLower(os.Getenv("APP_ENV"))
		if env == "production" || env == "prod" {
			format = "json"
		}
	}
	if format == "json" {
		return out
	}
	return zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
}

// Component returns a child logger tagged with the given component name,
// e.g. "pricing.usecase" or "orders.handler".
func Component(base zerolog.Logger, name string) zerolog.Logger {
	return base.With().Str("component", name).Logger()
}
