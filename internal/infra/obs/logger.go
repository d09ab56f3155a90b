package obs

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogOptions tunes the process logger. File enables a rotated JSON copy of every record.
type LogOptions struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// NewLogger configures slog logger with colorful dev output and JSON for production-like envs.
func NewLogger(env string, opts LogOptions) *slog.Logger {
	return newLogger(env, opts, os.Stdout)
}

func newLogger(env string, opts LogOptions, stdout io.Writer) *slog.Logger {
	level := ParseLevel(opts.Level)
	var console slog.Handler
	if env == "dev" || env == "local" {
		console = tint.NewHandler(stdout, &tint.Options{
			Level:      level,
			TimeFormat: time.RFC3339,
			AddSource:  true,
		})
	} else {
		console = slog.NewJSONHandler(stdout, &slog.HandlerOptions{Level: level, AddSource: true})
	}
	if opts.File == "" {
		return slog.New(console)
	}
	file := slog.NewJSONHandler(rotatingFile(opts), &slog.HandlerOptions{Level: level, AddSource: true})
	return slog.New(fanout{console, file})
}

func rotatingFile(opts LogOptions) io.Writer {
	maxSize := opts.MaxSizeMB
	if maxSize <= 0 {
		maxSize = 50
	}
	backups := opts.MaxBackups
	if backups <= 0 {
		backups = 3
	}
	age := opts.MaxAgeDays
	if age <= 0 {
		age = 14
	}
	return &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    maxSize,
		MaxBackups: backups,
		MaxAge:     age,
		Compress:   true,
	}
}

func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// fanout sends every record to all handlers that accept its level.
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	var first error
	for _, h := range f {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}
