package config

import (
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

// SetupLogger creates the sweep's dual-output logger: human-readable text on
// stderr, and JSON appended to the log file. The JSON stream is the durable
// provenance trail — every record carries the sweep_id attribute the
// controller stamps, so rows from different sweeps against the same output
// root stay attributable. Returns the logger and a cleanup function that
// closes the file.
func SetupLogger(logFile string, level slog.Level) (*slog.Logger, func() error) {
	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		// Degrade to stderr-only rather than refusing to sweep.
		logger := slog.New(textHandler(os.Stderr, level))
		logger.Error("failed to open log file, using stderr only", "error", err, "file", logFile)
		return logger, func() error { return nil }
	}

	logger := slog.New(slogmulti.Fanout(
		textHandler(os.Stderr, level),
		jsonHandler(file, level),
	))
	return logger, file.Close
}

// SetupLoggerWithWriters builds the same fanout against arbitrary writers so
// tests can capture both streams.
func SetupLoggerWithWriters(stderr, file io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slogmulti.Fanout(textHandler(stderr, level), jsonHandler(file, level)))
}

func textHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
}

func jsonHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
}
