package renamed

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is the optional debug logging capability. It is deliberately
// minimal so any logging backend can satisfy it.
type Logger interface {
	Logf(format string, args ...any)
}

// zerologLogger adapts a zerolog.Logger to the Logger capability.
type zerologLogger struct {
	log zerolog.Logger
}

func (z zerologLogger) Logf(format string, args ...any) {
	z.log.Debug().Msgf(format, args...)
}

// NewZerologLogger wraps a zerolog logger so it can be passed to WithLogger.
func NewZerologLogger(log zerolog.Logger) Logger {
	return zerologLogger{log: log}
}

func newDebugLogger() Logger {
	writer := zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}
	log := zerolog.New(writer).Level(zerolog.DebugLevel).With().Str("component", ServiceName).Logger()
	return zerologLogger{log: log}
}

// logf emits a debug line when a logger is configured. Logging is a side
// effect only; it never replaces error propagation.
func (c *client) logf(format string, args ...any) {
	if c.logger != nil {
		c.logger.Logf(format, args...)
	}
}

// maskAPIKey hides the key for logging: first 3 chars + "..." + last 4.
func maskAPIKey(key string) string {
	if len(key) <= 7 {
		return "***"
	}
	return key[:3] + "..." + key[len(key)-4:]
}
