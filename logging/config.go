package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the console and file handlers
type Options struct {
	Dir            string
	Level          string
	Env            string
	RetentionWeeks int
	MaxFileSize    int64 // bytes
}

// ParseLevel converts a LOG_LEVEL value into a slog level, defaulting to info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

// newFileWriter returns a size and age rotated log file under dir
func newFileWriter(opts Options) *lumberjack.Logger {
	maxSizeMB := int(opts.MaxFileSize / (1024 * 1024))
	if maxSizeMB <= 0 {
		maxSizeMB = 100
	}
	retention := opts.RetentionWeeks
	if retention <= 0 {
		retention = 4
	}

	return &lumberjack.Logger{
		Filename:  filepath.Join(opts.Dir, "bot.log"),
		MaxSize:   maxSizeMB,
		MaxAge:    retention * 7,
		LocalTime: true,
		Compress:  true,
	}
}

// newConsoleHandler uses colored output in development, plain text elsewhere
func newConsoleHandler(w io.Writer, opts Options, level slog.Level) slog.Handler {
	if opts.Env == "dev" {
		return tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.TimeOnly,
		})
	}
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
}

// SetupLogger configures slog to log to both console and a rotating file.
// The returned closer releases the file; it is nil when only the console is used.
func SetupLogger(opts Options) (*slog.Logger, io.Closer) {
	level := ParseLevel(opts.Level)
	consoleHandler := newConsoleHandler(os.Stdout, opts, level)

	if opts.Dir == "" {
		return slog.New(consoleHandler), nil
	}

	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		consoleLogger := slog.New(consoleHandler)
		consoleLogger.Error("Failed to create logs directory", "error", err)
		return consoleLogger, nil
	}

	fileWriter := newFileWriter(opts)

	// Console gets text format, file gets JSON format for better parsing
	fileHandler := slog.NewJSONHandler(fileWriter, &slog.HandlerOptions{Level: level})

	return slog.New(&multiHandler{
		handlers: []slog.Handler{consoleHandler, fileHandler},
	}), fileWriter
}

// multiHandler implements slog.Handler to write to multiple handlers
type multiHandler struct {
	handlers []slog.Handler
}

func (m *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range m.handlers {
		if h.Enabled(ctx, r.Level) {
			if err := h.Handle(ctx, r.Clone()); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		newHandlers[i] = h.WithAttrs(attrs)
	}
	return &multiHandler{handlers: newHandlers}
}

func (m *multiHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		newHandlers[i] = h.WithGroup(name)
	}
	return &multiHandler{handlers: newHandlers}
}
