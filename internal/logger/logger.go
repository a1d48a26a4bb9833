package logger

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return &Logger{Logger: l}
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// NewFileLogger creates a logger that writes to a file at the named level.
// An unknown level name falls back to info.
func NewFileLogger(path, level string) (*Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}

	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}

	cleanup := func() {
		f.Close()
	}

	return NewWithLevel(f, lvl), cleanup, nil
}

// NewMultiLogger creates a logger that writes to multiple outputs
func NewMultiLogger(writers ...io.Writer) *Logger {
	w := io.MultiWriter(writers...)
	return New(w)
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// EntrySaved logs a stored journal entry
func (l *Logger) EntrySaved(date, backend string, blocks int) {
	l.Info("entry saved",
		"date", date,
		"backend", backend,
		"blocks", blocks)
}

// EntryLoaded logs a journal entry read back from storage
func (l *Logger) EntryLoaded(date, backend string, bytes int) {
	l.Debug("entry loaded",
		"date", date,
		"backend", backend,
		"bytes", bytes)
}

// EntrySkipped logs when a save is skipped
func (l *Logger) EntrySkipped(date, reason string) {
	l.Debug("entry skipped",
		"date", date,
		"reason", reason)
}

// UnsupportedBlocks logs remote blocks dropped while decoding
func (l *Logger) UnsupportedBlocks(date string, count int) {
	l.Warn("unsupported blocks dropped",
		"date", date,
		"count", count)
}

// ConversionError logs a conversion error
func (l *Logger) ConversionError(source string, err error) {
	l.Error("conversion failed",
		"source", source,
		"error", err)
}

// StorageError logs a storage error
func (l *Logger) StorageError(operation, date string, err error) {
	l.Error("storage error",
		"operation", operation,
		"date", date,
		"error", err)
}

// StateError logs an entry index error
func (l *Logger) StateError(operation string, err error) {
	l.Error("state error",
		"operation", operation,
		"error", err)
}

// ConfigLoaded logs successful config loading
func (l *Logger) ConfigLoaded(storageType, entriesDir string, frequency time.Duration) {
	l.Debug("config loaded",
		"storage_type", storageType,
		"entries_dir", entriesDir,
		"editor_frequency", frequency)
}
