package metrics

import (
	"os"

	"github.com/rs/zerolog"
)

// NewLogger builds a zerolog.Logger writing structured JSON to stderr at
// the given level ("debug", "info", "warn", "error" — unrecognized
// strings fall back to "info"). Engines default to zerolog.Nop() until a
// caller injects one of these, so logging is opt-in ambient
// infrastructure rather than a hard dependency of every call site.
func NewLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(os.Stderr).With().Timestamp().Logger().Level(lvl)
}
