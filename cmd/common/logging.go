package common

import (
	"io"
	"log/slog"
)

// SetupLogging configures the default slog logger to write text records to w.
// Verbose runs log at debug level, otherwise only warnings and above are shown
// so that normal output stays untouched.
func SetupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}
