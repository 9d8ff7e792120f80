// Package model defines the core data structures used throughout pagescan.
//
// This package contains the following main types:
//   - PageReport: the full analysis result for one HTML document
//   - Metadata: document metadata extracted from the head
//   - Heading, ImageRef, LinkRef, ScriptRef, StyleRef: per-element records
//   - SEOReport, AccessibilityReport, PerformanceReport: scored dimensions
//   - ParsingStats: process-wide counter snapshot
//
// Design decision: We separate models into their own package to avoid
// circular dependencies. Multiple packages (extract, analyze, report,
// database) need these types, so centralizing them prevents import cycles.
//
// Every value in this package is freshly constructed by the extractors:
// nothing aliases into the document tree's attribute storage, which keeps
// the tree safe to discard or reuse for further queries after analysis.
package model
