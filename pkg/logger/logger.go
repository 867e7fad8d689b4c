// Package logger provides a small colored slog handler for terminal output.
//
// Warnings render yellow and errors red so they stand out in an interactive
// session; everything else uses the terminal's default color.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

const (
	colorReset  = "\033[0m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
)

// Options configures a Logger.
type Options struct {
	// Level is the minimum level to emit.
	Level slog.Level

	// Writer receives formatted log lines. Defaults to os.Stderr.
	Writer io.Writer

	// NoColor disables ANSI escape codes.
	NoColor bool
}

// NewDefaultLogger creates a colored logger writing to stderr at the given level.
func NewDefaultLogger(level slog.Level) *slog.Logger {
	return New(Options{Level: level})
}

// New creates a logger with the given options.
func New(opts Options) *slog.Logger {
	if opts.Writer == nil {
		opts.Writer = os.Stderr
	}
	return slog.New(&handler{opts: opts})
}

// ParseLevel maps a config string to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

type handler struct {
	opts  Options
	attrs []slog.Attr
	group string

	mu sync.Mutex
}

func (h *handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level
}

func (h *handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder

	color := ""
	switch {
	case r.Level >= slog.LevelError:
		color = colorRed
	case r.Level >= slog.LevelWarn:
		color = colorYellow
	}
	if h.opts.NoColor {
		color = ""
	}

	if color != "" {
		b.WriteString(color)
	}
	b.WriteString(r.Time.Format("15:04:05"))
	b.WriteByte(' ')
	b.WriteString(r.Level.String())
	b.WriteByte(' ')
	b.WriteString(r.Message)

	writeAttr := func(a slog.Attr) {
		if a.Key == "" {
			return
		}
		key := a.Key
		if h.group != "" {
			key = h.group + "." + key
		}
		fmt.Fprintf(&b, " %s=%v", key, a.Value)
	}
	for _, a := range h.attrs {
		writeAttr(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(a)
		return true
	})

	if color != "" {
		b.WriteString(colorReset)
	}
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.opts.Writer, b.String())
	return err
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := &handler{opts: h.opts, group: h.group}
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return clone
}

func (h *handler) WithGroup(name string) slog.Handler {
	clone := &handler{opts: h.opts, attrs: h.attrs, group: h.group}
	if clone.group != "" {
		clone.group += "." + name
	} else {
		clone.group = name
	}
	return clone
}
