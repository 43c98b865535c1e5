// Package logging wraps log/slog behind a small interface so components can
// take a logger by injection and tests can swap in a buffer.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	EnvDebugFile  = "TERMBLOG_DEBUG_FILE"
	EnvDebugLevel = "TERMBLOG_DEBUG_LEVEL"
)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
	WithGroup(name string) Logger
	// SetLevel also applies to loggers derived with With and WithGroup.
	SetLevel(level slog.Level)
}

type Format int

const (
	FormatText Format = iota
	FormatJSON
)

type Config struct {
	Level   slog.Level
	Format  Format
	Output  io.Writer
	AddTime bool
}

type slogLogger struct {
	logger *slog.Logger
	level  *slog.LevelVar
}

func NewLogger(config Config) Logger {
	if config.Output == nil {
		config.Output = os.Stderr
	}

	level := new(slog.LevelVar)
	level.Set(config.Level)

	return &slogLogger{
		logger: slog.New(newHandler(config, level)),
		level:  level,
	}
}

func newHandler(config Config, level slog.Leveler) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if !config.AddTime {
		opts.ReplaceAttr = dropTime
	}

	if config.Format == FormatJSON {
		return slog.NewJSONHandler(config.Output, opts)
	}
	return slog.NewTextHandler(config.Output, opts)
}

func dropTime(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		return slog.Attr{}
	}
	return a
}

// NewDefaultLogger logs info and above to stderr without timestamps.
func NewDefaultLogger() Logger {
	return NewLogger(Config{Level: slog.LevelInfo})
}

func NewQuietLogger() Logger {
	return NewLogger(Config{Level: slog.LevelError})
}

func NewVerboseLogger() Logger {
	return NewLogger(Config{Level: slog.LevelDebug})
}

func NewDisabledLogger() Logger {
	return NewLogger(Config{Level: slog.Level(1000), Output: io.Discard})
}

// GetDebugFilePath returns $TERMBLOG_DEBUG_FILE, or defaultFileName inside
// the temp dir.
func GetDebugFilePath(defaultFileName string) string {
	if path := os.Getenv(EnvDebugFile); path != "" {
		return path
	}
	return filepath.Join(os.TempDir(), defaultFileName)
}

// ParseLevel maps debug, info and warn(ing); anything else is error.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// NewFileLoggerFromEnv is used while the terminal owns stderr. Records go to
// the debug file at the level named by $TERMBLOG_DEBUG_LEVEL; if the file
// cannot be opened everything is discarded.
func NewFileLoggerFromEnv(defaultFileName string) Logger {
	level := ParseLevel(os.Getenv(EnvDebugLevel))

	file, err := os.OpenFile(GetDebugFilePath(defaultFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return NewLogger(Config{Level: level, Output: io.Discard})
	}
	return NewLogger(Config{Level: level, Output: file, AddTime: true})
}

func (l *slogLogger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }
func (l *slogLogger) Info(msg string, args ...any)  { l.logger.Info(msg, args...) }
func (l *slogLogger) Warn(msg string, args ...any)  { l.logger.Warn(msg, args...) }
func (l *slogLogger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }

func (l *slogLogger) With(args ...any) Logger {
	return &slogLogger{logger: l.logger.With(args...), level: l.level}
}

func (l *slogLogger) WithGroup(name string) Logger {
	return &slogLogger{logger: l.logger.WithGroup(name), level: l.level}
}

func (l *slogLogger) SetLevel(level slog.Level) {
	l.level.Set(level)
}

var (
	globalMu     sync.RWMutex
	globalLogger = NewDefaultLogger()
)

func SetGlobalLogger(logger Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLogger = logger
}

func GetGlobalLogger() Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger
}

// NewComponentLogger derives from the global logger at call time; loggers
// created before SetGlobalLogger keep the previous destination.
func NewComponentLogger(component string) Logger {
	return GetGlobalLogger().With("component", component)
}

func NewSessionLogger(component, sessionID string) Logger {
	return GetGlobalLogger().With("component", component, "session", sessionID)
}
