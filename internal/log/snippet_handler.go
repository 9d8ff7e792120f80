package log

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// MaxAttrLen is the longest string attribute value passed through
// unmodified. Longer values are cut at the nearest rune boundary and
// marked with TruncationMark.
const MaxAttrLen = 256

// TruncationMark is appended to truncated attribute values.
const TruncationMark = "...[truncated]"

// SnippetHandler wraps an slog.Handler to bound attribute sizes.
// It intercepts log records, flattens newlines in string values, and
// truncates values longer than MaxAttrLen before passing them to the
// underlying handler.
//
// Design decision: We use a handler wrapper rather than truncating at
// each call site because:
//  1. It integrates seamlessly with standard slog APIs
//  2. It works with any underlying handler (text, JSON, etc.)
//  3. No call site can forget it
type SnippetHandler struct {
	// handler is the underlying slog handler that receives bounded records.
	handler slog.Handler
}

// NewSnippetHandler creates a SnippetHandler wrapping the given handler.
// If handler is nil, slog.Default().Handler() is used.
func NewSnippetHandler(handler slog.Handler) *SnippetHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &SnippetHandler{handler: handler}
}

// Enabled reports whether the handler handles records at the given level.
func (h *SnippetHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle bounds the record's attributes and passes it on.
func (h *SnippetHandler) Handle(ctx context.Context, r slog.Record) error {
	bounded := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		bounded.AddAttrs(h.boundAttr(a))
		return true
	})
	return h.handler.Handle(ctx, bounded)
}

// WithAttrs returns a new handler with the given attributes added,
// bounded first.
func (h *SnippetHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	bounded := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		bounded[i] = h.boundAttr(a)
	}
	return &SnippetHandler{handler: h.handler.WithAttrs(bounded)}
}

// WithGroup returns a new handler with the given group name.
func (h *SnippetHandler) WithGroup(name string) slog.Handler {
	return &SnippetHandler{handler: h.handler.WithGroup(name)}
}

// boundAttr bounds a single attribute, recursively handling groups.
func (h *SnippetHandler) boundAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		bounded := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			bounded[i] = h.boundAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(bounded...)}
	}

	if a.Value.Kind() == slog.KindString {
		if v := Snippet(a.Value.String()); v != a.Value.String() {
			return slog.String(a.Key, v)
		}
	}
	return a
}

// Snippet flattens newlines in s and truncates it to MaxAttrLen runes.
func Snippet(s string) string {
	if strings.ContainsAny(s, "\n\r\t") {
		s = strings.Join(strings.Fields(s), " ")
	}
	runes := []rune(s)
	if len(runes) <= MaxAttrLen {
		return s
	}
	return string(runes[:MaxAttrLen]) + TruncationMark
}

// NewLogger creates an slog.Logger with text output and bounded
// attribute sizes.
//
// Parameters:
//   - w: the io.Writer to write log output to (typically os.Stderr)
//   - verbose: if true, sets log level to Debug; otherwise Warn
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewSnippetHandler(slog.NewTextHandler(w, handlerOptions(verbose))))
}

// NewJSONLogger creates an slog.Logger with JSON output and bounded
// attribute sizes. Useful for structured log aggregation.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewSnippetHandler(slog.NewJSONHandler(w, handlerOptions(verbose))))
}

// handlerOptions maps the verbose flag to slog handler options.
func handlerOptions(verbose bool) *slog.HandlerOptions {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return &slog.HandlerOptions{Level: level}
}
