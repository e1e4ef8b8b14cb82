package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"
)

const logFilePrefix = "cvpage-"

// now is replaced in tests to pin log file names.
var now = time.Now

// SetupLogFile opens the cvpage log file for the current second in dir and
// prunes the oldest files so at most maxFiles remain. A restart within the
// same second appends to the existing file rather than truncating it.
// Returns the file handle (caller must close) or error.
func SetupLogFile(dir string, maxFiles int) (*os.File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	name := logFilePrefix + now().UTC().Format("2006-01-02T15-04-05") + ".log"
	f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	// Logging still works when pruning fails
	if err := pruneLogs(dir, maxFiles); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to prune old logs: %v\n", err)
	}

	return f, nil
}

// pruneLogs keeps the newest maxFiles cvpage logs in dir. Names sort
// chronologically, and at least one file, the current one, always survives.
func pruneLogs(dir string, maxFiles int) error {
	files, err := filepath.Glob(filepath.Join(dir, logFilePrefix+"*.log"))
	if err != nil {
		return err
	}

	maxFiles = max(maxFiles, 1)
	if len(files) <= maxFiles {
		return nil
	}

	sort.Strings(files)
	for _, old := range files[:len(files)-maxFiles] {
		if err := os.Remove(old); err != nil {
			return fmt.Errorf("remove %s: %w", old, err)
		}
	}

	return nil
}

// NewLogger builds the JSON logger used across the service.
// Debug records are kept in dev; other environments log at info.
func NewLogger(cfg *Config, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if cfg.IsDev() {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}
