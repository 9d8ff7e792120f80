// Package analyze derives diagnostic scores from extracted document data.
//
// Analyzers are pure functions: they consume extractor outputs, never
// the document tree, and return freshly built reports. Each scored
// dimension follows the same shape: collect human-readable issues, then
// derive the score as max(0, 100 - issueCount*weight).
//
// The per-dimension weights (15 for SEO, 12 for accessibility, 10 for
// performance) and the readability formula are part of the report
// contract: external consumers compare scores across runs, so changing
// them is a breaking change.
package analyze
