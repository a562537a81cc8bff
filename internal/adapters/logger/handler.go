package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/conanprep/internal/ui/output"
	"go.trai.ch/conanprep/internal/ui/style"
)

// PrettyHandler is a slog.Handler for operator-facing diagnostics.
//
// A record renders as its message with the level icon in front and the
// attributes as key=value pairs appended to the first line. Continuation
// lines of a multi-line message (an error chain) follow unchanged.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	// attrs are already qualified with the groups open when they were added.
	attrs  []string
	prefix string
}

// NewPrettyHandler creates a new PrettyHandler writing to w, defaulting to stderr.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and outputs the log record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	icon, color := levelStyle(r.Level)

	pairs := make([]string, 0, len(h.attrs)+r.NumAttrs())
	pairs = append(pairs, h.attrs...)
	r.Attrs(func(attr slog.Attr) bool {
		pairs = appendAttr(pairs, h.prefix, attr)
		return true
	})

	head, rest, multiline := strings.Cut(r.Message, "\n")
	if icon != "" {
		head = icon + " " + head
	}
	if len(pairs) > 0 {
		head += " " + strings.Join(pairs, " ")
	}
	msg := head
	if multiline {
		msg += "\n" + rest
	}

	styled := h.out.String(msg).Foreground(color)
	_, err := h.out.WriteString(styled.String() + "\n")

	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := h.clone()
	for _, attr := range attrs {
		next.attrs = appendAttr(next.attrs, h.prefix, attr)
	}
	return next
}

// WithGroup returns a new Handler that qualifies later attributes with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := h.clone()
	next.prefix = h.prefix + name + "."
	return next
}

func (h *PrettyHandler) clone() *PrettyHandler {
	return &PrettyHandler{
		out:    h.out,
		level:  h.level,
		attrs:  append([]string(nil), h.attrs...),
		prefix: h.prefix,
	}
}

func levelStyle(level slog.Level) (string, termenv.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Cross, termenv.RGBColor(string(style.Red))
	case level >= slog.LevelWarn:
		return style.Warning, termenv.RGBColor(string(style.Yellow))
	default:
		return "", termenv.RGBColor(string(style.Slate))
	}
}

// appendAttr renders attr as prefix+key=value, flattening groups.
func appendAttr(pairs []string, prefix string, attr slog.Attr) []string {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return pairs
	}
	if attr.Value.Kind() == slog.KindGroup {
		groupPrefix := prefix
		if attr.Key != "" {
			groupPrefix += attr.Key + "."
		}
		for _, a := range attr.Value.Group() {
			pairs = appendAttr(pairs, groupPrefix, a)
		}
		return pairs
	}
	return append(pairs, prefix+attr.Key+"="+attr.Value.String())
}
