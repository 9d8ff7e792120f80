// Package engine wires the analysis pipeline for a single HTML document.
//
// # Architecture
//
// ParseHTML runs one strictly sequential pass with no backtracking:
//
//	load -> validate -> extract -> analyze -> aggregate
//
// The loader builds a frozen document tree, the validator gates on
// document-level structure, the extractors each take one read-only pass
// over the tree, and the analyzers consume only extractor outputs. The
// engine performs no network calls, no file I/O, and blocks on nothing.
//
// # Concurrency
//
// A single engine instance is safe for concurrent ParseHTML calls: the
// mutable statistics counters are the only shared state and are guarded
// by a mutex. The document tree built for one call must not be shared
// across calls.
//
// # Errors
//
// Two failure kinds exist: validation failures (caller-correctable
// structure problems) and parse failures (the tree construction itself
// failed). Both surface as *ValidationError so callers see one uniform
// error taxonomy. Per-element problems are never errors; they are
// counted in the report and the statistics.
package engine
