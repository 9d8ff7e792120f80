package model

import "time"

// Accessibility conformance level labels derived from the issue count.
const (
	// LevelAA is reported when no accessibility issues were found.
	LevelAA = "AA"

	// LevelA is reported when at most two accessibility issues were found.
	LevelA = "A"

	// LevelBelowStandards is reported for three or more issues.
	LevelBelowStandards = "Below standards"
)

// SEOReport holds the SEO analysis dimension.
type SEOReport struct {
	// Issues lists human-readable findings in detection order.
	Issues []string `json:"issues"`

	// Score is max(0, 100 - 15*len(Issues)).
	Score int `json:"score"`
}

// AccessibilityReport holds the accessibility analysis dimension.
type AccessibilityReport struct {
	// Issues lists human-readable findings in detection order.
	Issues []string `json:"issues"`

	// Score is max(0, 100 - 12*len(Issues)).
	Score int `json:"score"`

	// Level is the coarse conformance label: "AA" for zero issues,
	// "A" for one or two, "Below standards" otherwise.
	Level string `json:"level"`
}

// PerformanceReport holds the performance analysis dimension.
type PerformanceReport struct {
	// Issues lists human-readable findings in detection order.
	Issues []string `json:"issues"`

	// Score is max(0, 100 - 10*len(Issues)).
	Score int `json:"score"`

	// ResourceCount is images + scripts + external stylesheets.
	ResourceCount int `json:"resource_count"`
}

// PageReport is the full analysis result for one HTML document.
//
// Design decision: We use a single aggregate struct rather than returning
// each dimension separately because:
//  1. It serializes directly to the JSON report format
//  2. Report writers and the history database consume it whole
//  3. Callers can still address individual dimensions by field
type PageReport struct {
	// Source identifies the analyzed document (file path, URL, or
	// "stdin"). It is set by the caller, not the engine.
	Source string `json:"source,omitempty"`

	// AnalyzedAt is the timestamp when the analysis ran.
	AnalyzedAt time.Time `json:"analyzed_at"`

	// Metadata holds the extracted document metadata.
	Metadata Metadata `json:"metadata"`

	// Structure holds headings, navigation, sections, footer, and the
	// heading-hierarchy analysis.
	Structure Structure `json:"structure"`

	// Images lists every image in document order.
	Images []ImageRef `json:"images"`

	// Links lists every anchor in document order.
	Links []LinkRef `json:"links"`

	// Scripts lists every script in document order.
	Scripts []ScriptRef `json:"scripts"`

	// Styles lists every stylesheet in document order.
	Styles []StyleRef `json:"styles"`

	// Content summarizes the textual content.
	Content ContentStats `json:"content"`

	// Performance is the scored performance dimension.
	Performance PerformanceReport `json:"performance"`

	// SEO is the scored SEO dimension.
	SEO SEOReport `json:"seo"`

	// Accessibility is the scored accessibility dimension.
	Accessibility AccessibilityReport `json:"accessibility"`

	// Duration is the wall-clock analysis time in milliseconds.
	Duration int64 `json:"duration_ms"`
}

// IssueCount returns the total number of issues across all dimensions,
// including heading-hierarchy issues.
func (r *PageReport) IssueCount() int {
	return len(r.SEO.Issues) +
		len(r.Accessibility.Issues) +
		len(r.Performance.Issues) +
		len(r.Structure.Hierarchy.Issues)
}

// ParsingStats is a snapshot of the engine's process-wide counters.
//
// The counters live for the lifetime of an engine instance: zeroed at
// construction, incremented during each analysis, and reset only by an
// explicit reset call. They are never decremented.
type ParsingStats struct {
	// DocumentsProcessed counts completed ParseHTML calls.
	DocumentsProcessed int `json:"documents_processed"`

	// ElementsExtracted counts extracted elements. It is currently
	// driven by the image extraction call sites.
	ElementsExtracted int `json:"elements_extracted"`

	// ErrorsFound counts parse failures, validation failures, and
	// malformed structured-data entries.
	ErrorsFound int `json:"errors_found"`

	// OptimizationsApplied is reserved for future optimizer passes.
	// No analyzer in the core increments it.
	OptimizationsApplied int `json:"optimizations_applied"`
}
