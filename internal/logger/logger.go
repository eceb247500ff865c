package logger

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/ekisa-team/salescript/internal/env"
	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options holds the logger configuration.
type Options struct {
	logToFile bool
	logFile   string
	level     slog.Level
}

// Option configures the logger.
type Option func(*Options)

// WithLogToFile enables writing logs to a rotating file in addition to stderr.
func WithLogToFile(enabled bool) Option {
	return func(o *Options) {
		o.logToFile = enabled
	}
}

// WithLogFile sets the log file path.
func WithLogFile(path string) Option {
	return func(o *Options) {
		o.logFile = path
	}
}

// WithLevel sets the minimum log level.
func WithLevel(level slog.Level) Option {
	return func(o *Options) {
		o.level = level
	}
}

// New creates a slog.Logger for the given environment. Development uses a
// colored human-readable handler, production uses JSON.
func New(environment env.Environment, opts ...Option) *slog.Logger {
	options := &Options{
		logFile: "logs/salescript.log",
		level:   slog.LevelInfo,
	}
	for _, opt := range opts {
		opt(options)
	}

	var w io.Writer = os.Stderr
	if options.logToFile {
		w = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   options.logFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     14, // days
			Compress:   true,
		})
	}

	var handler slog.Handler
	if environment == env.Production {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: options.level})
	} else {
		handler = tint.NewHandler(w, &tint.Options{
			Level:      options.level,
			TimeFormat: time.Kitchen,
		})
	}

	return slog.New(handler)
}

// ParseLevel maps a config level string to a slog.Level.
// Unrecognized values resolve to info.
func ParseLevel(s string) slog.Level {
	switch s {
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
