// Package logging builds the slog logger shared by the CLI and the TUI.
// Records are rendered by charmbracelet/log, which implements slog.Handler.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/riordanpawley/todo/internal/config"
	"github.com/spf13/afero"
)

// Options holds configuration for a logger
type Options struct {
	Level           string
	Format          string
	Prefix          string
	ReportTimestamp bool
}

// ParseLevel maps a config level name to a charmbracelet/log level
func ParseLevel(s string) (log.Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "warning" {
		name = "warn"
	}
	if name == "" {
		return log.InfoLevel, nil
	}
	level, err := log.ParseLevel(name)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("unknown log level %q: %w", s, err)
	}
	return level, nil
}

// ParseFormatter maps a config format name to a charmbracelet/log formatter
func ParseFormatter(s string) (log.Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return log.TextFormatter, nil
	case "json":
		return log.JSONFormatter, nil
	case "logfmt":
		return log.LogfmtFormatter, nil
	default:
		return log.TextFormatter, fmt.Errorf("unknown log format %q", s)
	}
}

// New creates a slog logger writing to w
func New(w io.Writer, opts Options) (*slog.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	formatter, err := ParseFormatter(opts.Format)
	if err != nil {
		return nil, err
	}

	handler := log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: opts.ReportTimestamp,
		Prefix:          opts.Prefix,
	})
	return slog.New(handler), nil
}

// Discard returns a logger that drops every record
func Discard() *slog.Logger {
	return slog.New(log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel}))
}

// OpenFile opens path for appending, creating parent directories
func OpenFile(fs afero.Fs, path string) (afero.File, error) {
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := fs.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// SetupFile builds a logger that appends to the configured log file.
// The returned close function must be called on exit.
func SetupFile(fs afero.Fs, cfg config.LogConfig, prefix string) (*slog.Logger, func() error, error) {
	f, err := OpenFile(fs, cfg.File)
	if err != nil {
		return nil, nil, err
	}

	logger, err := New(f, Options{
		Level:           cfg.Level,
		Format:          cfg.Format,
		Prefix:          prefix,
		ReportTimestamp: true,
	})
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return logger, f.Close, nil
}
