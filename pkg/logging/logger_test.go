package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bufferLogger(buf *bytes.Buffer, level slog.Level, format Format) Logger {
	return NewLogger(Config{
		Level:  level,
		Format: format,
		Output: buf,
	})
}

func TestNewLogger_Formats(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		want   string
	}{
		{name: "text", format: FormatText, want: "level=INFO"},
		{name: "json", format: FormatJSON, want: `"level":"INFO"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			bufferLogger(&buf, slog.LevelInfo, tt.format).Info("pager opened")

			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "pager opened")
			assert.NotContains(t, buf.String(), "time=", "timestamps are off unless AddTime is set")
		})
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := bufferLogger(&buf, slog.LevelWarn, FormatText)

	logger.Debug("debug line")
	logger.Info("info line")
	logger.Warn("warn line")

	assert.NotContains(t, buf.String(), "debug line")
	assert.NotContains(t, buf.String(), "info line")
	assert.Contains(t, buf.String(), "warn line")

	logger.SetLevel(slog.LevelDebug)
	logger.Debug("debug after raise")
	assert.Contains(t, buf.String(), "debug after raise")
}

func TestLogger_WithAndGroup(t *testing.T) {
	var buf bytes.Buffer
	logger := bufferLogger(&buf, slog.LevelInfo, FormatText)

	logger.With("component", "shell").Info("executed")
	logger.WithGroup("pager").Info("moved", "position", 12)

	assert.Contains(t, buf.String(), "component=shell")
	assert.Contains(t, buf.String(), "pager.position=12")
}

func TestComponentLoggers(t *testing.T) {
	tests := []struct {
		name     string
		create   func() Logger
		expected string
	}{
		{
			name:     "component",
			create:   func() Logger { return NewComponentLogger("editor") },
			expected: "component=editor",
		},
		{
			name:     "session",
			create:   func() Logger { return NewSessionLogger("shell", "abc-123") },
			expected: "session=abc-123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			original := GetGlobalLogger()
			SetGlobalLogger(bufferLogger(&buf, slog.LevelInfo, FormatText))
			defer SetGlobalLogger(original)

			tt.create().Info("hello")

			assert.Contains(t, buf.String(), tt.expected)
		})
	}
}

func TestSetLevel_AppliesToDerivedLoggers(t *testing.T) {
	var buf bytes.Buffer
	parent := bufferLogger(&buf, slog.LevelError, FormatText)
	child := parent.With("component", "pager")

	child.Info("before")
	parent.SetLevel(slog.LevelInfo)
	child.Info("after")

	assert.NotContains(t, buf.String(), "before")
	assert.Contains(t, buf.String(), "after")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" INFO ":  slog.LevelInfo,
		"warning": slog.LevelWarn,
		"warn":    slog.LevelWarn,
		"":        slog.LevelError,
		"loud":    slog.LevelError,
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, ParseLevel(in))
		})
	}
}

func TestNewDisabledLogger(t *testing.T) {
	assert.NotPanics(t, func() { NewDisabledLogger().Error("dropped") })
}

func TestNewFileLoggerFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	t.Setenv(EnvDebugFile, path)
	t.Setenv(EnvDebugLevel, "debug")

	logger := NewFileLoggerFromEnv("termblog-debug.log")
	logger.Debug("written to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}

func TestGetDebugFilePath_Default(t *testing.T) {
	t.Setenv(EnvDebugFile, "")

	assert.Equal(t, filepath.Join(os.TempDir(), "x.log"), GetDebugFilePath("x.log"))
}
