package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Logger provides an interface into the underlying logging system for the player's purposes.
type Logger struct {
	logger       *slog.Logger
	file         *os.File
	traceEnabled bool
}

// Config contains logging information used to set up the logging framework
type Config struct {
	// Log Level.  One of: trace, debug, info, warn, error
	Level string
	// Path to the file to log into.  Empty or "-" logs to stderr.
	FilePath string
	// Output format.  One of: json, text.  Defaults to json.
	Format string
}

func New(config Config) (*Logger, error) {
	var (
		out  io.Writer = os.Stderr
		file *os.File
	)

	if config.FilePath != "" && config.FilePath != "-" {
		dir := filepath.Dir(config.FilePath)
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, err
		}

		f, err := os.OpenFile(config.FilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
		if err != nil {
			return nil, err
		}
		file = f
		out = f
	}

	logger := newLogger(out, config)
	logger.file = file
	return logger, nil
}

// newLogger builds a Logger writing to w.  It does not take ownership of w.
func newLogger(w io.Writer, config Config) *Logger {
	opts := &slog.HandlerOptions{
		Level: parseLogLevel(config.Level),
	}

	var handler slog.Handler
	if strings.EqualFold(config.Format, "text") {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return &Logger{
		logger:       slog.New(handler),
		traceEnabled: strings.EqualFold(config.Level, "trace"),
	}
}

// Close the log file.  Loggers writing to stderr have nothing to close.
func (l *Logger) Close() {
	if l.file == nil {
		return
	}
	err := l.file.Close()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error closing logger: %v\n", err)
	}
}

// Debug logs a message a debug Level
func (l *Logger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

// Info logs a message at info Level
func (l *Logger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

// Warn logs a message at warn Level
func (l *Logger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

// Error logs a message at error Level.
func (l *Logger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

// Engine logs a line emitted by the media engine at the slog level matching the engine's level name
func (l *Logger) Engine(prefix, level, text string) {
	l.logger.Log(context.Background(), EngineLevel(level), text, "source", "engine", "module", prefix)
}

// parseLogLevel is a helper to convert a string log Level into the slog version.  Defaults to info if a matching log
// Level cannot be found.
func parseLogLevel(lvl string) slog.Level {
	switch strings.ToLower(lvl) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "trace":
		return slog.LevelDebug // Trace level is handled by this log package instead of slog
	default:
		return slog.LevelInfo
	}
}

// EngineLevel maps the engine's log level names (fatal error warn info status v debug trace) onto slog levels.
func EngineLevel(level string) slog.Level {
	switch level {
	case "fatal", "error":
		return slog.LevelError
	case "warn":
		return slog.LevelWarn
	case "info", "status":
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// EngineLogLevel picks the engine log level to request so that engine lines are only produced when
// this package would actually write them.
func EngineLogLevel(lvl string) string {
	switch strings.ToLower(lvl) {
	case "trace":
		return "debug"
	case "debug":
		return "v"
	case "warn":
		return "warn"
	case "error":
		return "error"
	default:
		return "info"
	}
}
