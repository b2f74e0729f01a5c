// Package iologger sets up the default slog logger of the application.
package iologger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gnames/airports/pkg/config"
)

// LogFile is the name of the log file inside the log directory.
const LogFile = "airports.log"

// Init configures the default slog logger. With "file" destination the log
// goes to LogFile in logDir, appended to or truncated depending on the
// append flag. It returns a closer for the log file, which is a no-op for
// other destinations.
func Init(logDir string, cfg config.LogConfig, append bool) (func() error, error) {
	var writer io.Writer
	closer := func() error { return nil }

	switch cfg.Destination {
	case "stdout":
		writer = os.Stdout
	case "file":
		logPath := filepath.Join(logDir, LogFile)
		flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
		if append {
			flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
		}
		file, err := os.OpenFile(logPath, flags, 0644)
		if err != nil {
			return closer, CreateLogFileError(logPath, err)
		}
		writer = file
		closer = file.Close
	default:
		writer = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	switch cfg.Format {
	case "text":
		handler = slog.NewTextHandler(writer, opts)
	default:
		handler = slog.NewJSONHandler(writer, opts)
	}

	slog.SetDefault(slog.New(handler))
	return closer, nil
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
