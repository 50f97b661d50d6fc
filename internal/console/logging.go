package console

import (
	"io"
	"log/slog"

	"github.com/praxis-dev/template-cli/internal/model"
)

// SetupLogging creates a logger whose minimum level follows the requested
// verbosity: quiet logs warnings and above, normal logs info and above,
// verbose logs everything down to debug.
//
// The logger writes to w, which callers point at the diagnostic channel —
// log records must never reach the data stream. Each call constructs a
// fresh logger rather than mutating process-global state, so re-invocation
// replaces any prior configuration instead of stacking handlers.
func SetupLogging(v model.Verbosity, w io.Writer) *slog.Logger {
	var level slog.Level
	switch v {
	case model.VerbosityQuiet:
		level = slog.LevelWarn
	case model.VerbosityVerbose:
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}
