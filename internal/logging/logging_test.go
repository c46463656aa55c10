package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/riordanpawley/todo/internal/config"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    log.Level
		wantErr bool
	}{
		{"", log.InfoLevel, false},
		{"debug", log.DebugLevel, false},
		{"INFO", log.InfoLevel, false},
		{"warn", log.WarnLevel, false},
		{"warning", log.WarnLevel, false},
		{" error ", log.ErrorLevel, false},
		{"chatty", log.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFormatter(t *testing.T) {
	tests := []struct {
		in      string
		want    log.Formatter
		wantErr bool
	}{
		{"", log.TextFormatter, false},
		{"text", log.TextFormatter, false},
		{"JSON", log.JSONFormatter, false},
		{"logfmt", log.LogfmtFormatter, false},
		{"xml", log.TextFormatter, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormatter(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, Options{Level: "warn", Format: "logfmt"})
	require.NoError(t, err)

	logger.Info("quiet")
	logger.Warn("skipping malformed line", "line", 7)

	out := buf.String()
	assert.NotContains(t, out, "quiet")
	assert.Contains(t, out, "skipping malformed line")
	assert.Contains(t, out, "line=7")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, Options{Level: "debug", Format: "json", Prefix: "td"})
	require.NoError(t, err)

	logger.Debug("task added", "id", 3)

	out := buf.String()
	assert.Contains(t, out, `"msg":"task added"`)
	assert.Contains(t, out, `"id"`)
}

func TestNew_RejectsBadOptions(t *testing.T) {
	_, err := New(&bytes.Buffer{}, Options{Level: "loud"})
	assert.Error(t, err)

	_, err = New(&bytes.Buffer{}, Options{Format: "yaml"})
	assert.Error(t, err)
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
}

func TestSetupFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	cfg := config.LogConfig{Level: "info", Format: "logfmt", File: "/state/todo/todo.log"}

	logger, closeFn, err := SetupFile(fs, cfg, "todo")
	require.NoError(t, err)
	logger.Info("started")
	require.NoError(t, closeFn())

	logger, closeFn, err = SetupFile(fs, cfg, "todo")
	require.NoError(t, err)
	logger.Info("restarted")
	require.NoError(t, closeFn())

	data, err := afero.ReadFile(fs, cfg.File)
	require.NoError(t, err)
	assert.Contains(t, string(data), "started")
	assert.Contains(t, string(data), "restarted", "log file is appended to")
}

func TestSetupFile_BadFormatClosesFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	cfg := config.LogConfig{Level: "info", Format: "xml", File: "/state/todo.log"}

	_, _, err := SetupFile(fs, cfg, "todo")

	assert.Error(t, err)
}
