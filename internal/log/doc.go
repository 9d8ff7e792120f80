// Package log provides structured logging helpers for pagescan.
//
// The package wraps log/slog with a SnippetHandler that truncates
// oversized string attributes before they reach the underlying handler.
// Analysis code routinely logs fragments of the document being
// processed — titles, hrefs, raw markup around a finding — and a single
// unbounded attribute can turn one log line into megabytes of HTML.
//
// Use NewLogger for human-readable text output or NewJSONLogger for
// structured log aggregation.
package log
