package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config captures options for configuring the global logger.
type Config struct {
	Level  zerolog.Level
	Output io.Writer // optional writer (defaults to stderr)
}

var (
	once sync.Once
	base zerolog.Logger
)

// Configure initialises the global zerolog logger exactly once.
// Subsequent calls are no-ops, so components may safely call it lazily.
func Configure(cfg Config) {
	once.Do(func() {
		zerolog.SetGlobalLevel(cfg.Level)
		zerolog.TimeFieldFormat = time.RFC3339

		writer := cfg.Output
		if writer == nil {
			writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
		}

		base = zerolog.New(writer).With().Timestamp().Logger()
	})
}

// LevelFromVerbosity maps the -v count to a log level: errors only by
// default, warnings at -v, info at -vv, debug at -vvv and above.
func LevelFromVerbosity(verbose int) zerolog.Level {
	switch {
	case verbose >= 3:
		return zerolog.DebugLevel
	case verbose == 2:
		return zerolog.InfoLevel
	case verbose == 1:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

// Base returns the configured base logger instance.
func Base() zerolog.Logger {
	Configure(Config{Level: zerolog.ErrorLevel})
	return base
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(component string) zerolog.Logger {
	return Base().With().Str("component", component).Logger()
}
