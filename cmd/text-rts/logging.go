package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

const (
	logDir      = "logs"
	logFileName = "text-rts.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging returns the application logger and the file backing it
// Without debug every record is discarded and the file is nil
// stdout and stderr belong to the terminal and are never log targets
func setupLogging(debug bool) (*slog.Logger, *os.File) {
	if !debug {
		return slog.New(slog.DiscardHandler), nil
	}

	f, err := openLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logging disabled: %v\n", err)
		return slog.New(slog.DiscardHandler), nil
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	logger.Info("logging started", "pid", os.Getpid())
	return logger, f
}

// openLogFile creates the log directory and rotates an oversized log before opening it for append
func openLogFile() (*os.File, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, errors.Wrap(err, "create log directory")
	}

	path := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("text-rts-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(path, rotated); err != nil {
			return nil, errors.Wrap(err, "rotate log file")
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "open log file")
	}
	return f, nil
}
