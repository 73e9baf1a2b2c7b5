// v0
// internal/logging/logging.go
package logging

import (
	"io"
	"log/slog"
	"os"
)

type DualLogger struct {
	Logger *slog.Logger
	file   *os.File
}

// New creates a slog logger writing to stdout and, when MONITOR_LOGFILE is set,
// to that file as well.
func New() (*DualLogger, error) {
	writers := []io.Writer{os.Stdout}

	var file *os.File
	if logPath := os.Getenv("MONITOR_LOGFILE"); logPath != "" {
		var err error
		file, err = os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		writers = append(writers, file)
	}

	handler := slog.NewTextHandler(io.MultiWriter(writers...), &slog.HandlerOptions{Level: slog.LevelInfo})
	return &DualLogger{Logger: slog.New(handler), file: file}, nil
}

// Close releases the logfile, if one was opened.
func (d *DualLogger) Close() error {
	if d.file != nil {
		return d.file.Close()
	}
	return nil
}
