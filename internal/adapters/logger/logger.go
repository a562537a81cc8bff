// Package logger implements a logging adapter using log/slog.
package logger

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/conanprep/internal/core/ports"
	"go.trai.ch/conanprep/internal/ui/style"
)

// messager describes an error that can report its own message without the chain.
// zerr.Error provides it; other errors fall back to Error().
type messager interface {
	Message() string
}

// metadataer describes an error carrying key/value context, as zerr.Error does.
type metadataer interface {
	Metadata() map[string]any
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger *slog.Logger
	mu     sync.RWMutex
}

// New creates a new Logger writing to stderr.
func New() ports.Logger {
	return NewWithWriter(os.Stderr)
}

// NewWithWriter creates a new Logger writing to w.
func NewWithWriter(w io.Writer) *Logger {
	l := &Logger{}
	l.SetOutput(w)
	return l
}

// SetOutput updates the logger's output destination.
// If w is nil, os.Stderr is used as the default.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.logger = slog.New(NewPrettyHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs err and its causes, one per line. Metadata attached anywhere in
// a zerr chain is passed to the handler as attributes.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	entries := collectErrorEntries(err)

	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.LogAttrs(context.Background(), slog.LevelError, formatErrorEntries(entries), errorAttrs(entries)...)
}

type errorEntry struct {
	message  string
	metadata map[string]any
}

// collectErrorEntries walks the zerr chain. A non-zerr error ends the walk
// because its Error() already includes everything it wraps. zerr.With on a
// plain error adds a wrapper with an empty message; it contributes only metadata.
func collectErrorEntries(err error) []errorEntry {
	var entries []errorEntry
	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, errorEntry{message: current.Error()})
			break
		}

		entry := errorEntry{message: m.Message()}
		if md, ok := current.(metadataer); ok {
			entry.metadata = md.Metadata()
		}
		entries = append(entries, entry)
		current = errors.Unwrap(current)
	}
	return entries
}

func formatErrorEntries(entries []errorEntry) string {
	var lines []string
	causes := false

	for _, entry := range entries {
		if entry.message == "" {
			continue
		}
		msgLines := strings.Split(entry.message, "\n")

		if len(lines) == 0 {
			lines = append(lines, "Error: "+msgLines[0])
			for _, line := range msgLines[1:] {
				lines = append(lines, "       "+line)
			}
			continue
		}

		if !causes {
			lines = append(lines, "", "  Caused by:")
			causes = true
		}
		lines = append(lines, "    "+style.Arrow+" "+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, "      "+line)
		}
	}

	return strings.Join(lines, "\n")
}

// errorAttrs turns chain metadata into attributes, outermost first with keys
// sorted per error. A key set by an outer error shadows the same key further in.
func errorAttrs(entries []errorEntry) []slog.Attr {
	var attrs []slog.Attr
	seen := make(map[string]bool)
	for _, entry := range entries {
		for _, k := range slices.Sorted(maps.Keys(entry.metadata)) {
			if seen[k] {
				continue
			}
			seen[k] = true
			attrs = append(attrs, slog.Any(k, entry.metadata[k]))
		}
	}
	return attrs
}
