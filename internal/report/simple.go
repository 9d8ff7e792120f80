package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/pagescan/internal/model"
)

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display with clear section
// formatting and per-dimension issue listings.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter

	// showEmpty controls whether dimensions with no issues are shown.
	showEmpty bool

	// verbose enables additional detail in the output.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithShowEmpty configures the writer to show issue sections even when
// a dimension found nothing.
func WithShowEmpty(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showEmpty = show
	}
}

// WithVerbose enables verbose output with additional details such as
// per-resource listings.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		showEmpty:  false,
		verbose:    false,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the report in human-readable format.
func (w *SimpleWriter) Write(report *model.PageReport) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)
	w.writeScores(&sb, report)
	w.writeMetadata(&sb, report)
	w.writeStructure(&sb, report)
	w.writeResources(&sb, report)
	w.writeIssues(&sb, report)
	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header with document information.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.PageReport) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                         PAGESCAN REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	if report.Source != "" {
		sb.WriteString(fmt.Sprintf("Document:      %s\n", report.Source))
	}
	sb.WriteString(fmt.Sprintf("Analyzed:      %s\n", report.AnalyzedAt.Format("2006-01-02 15:04:05 MST")))
	sb.WriteString(fmt.Sprintf("Duration:      %dms\n", report.Duration))
	sb.WriteString("\n")
}

// writeScores writes the score summary section.
func (w *SimpleWriter) writeScores(sb *strings.Builder, report *model.PageReport) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("SCORE SUMMARY\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("  SEO:           %3d/100\n", report.SEO.Score))
	sb.WriteString(fmt.Sprintf("  Accessibility: %3d/100 (WCAG %s)\n", report.Accessibility.Score, report.Accessibility.Level))
	sb.WriteString(fmt.Sprintf("  Performance:   %3d/100\n", report.Performance.Score))
	sb.WriteString(fmt.Sprintf("  Readability:   %3d/100\n", report.Content.ReadabilityScore))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  TOTAL:         %d issue(s) found\n", report.IssueCount()))
	sb.WriteString("\n")
}

// writeMetadata writes the document metadata section.
func (w *SimpleWriter) writeMetadata(sb *strings.Builder, report *model.PageReport) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("METADATA\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	meta := report.Metadata
	sb.WriteString(fmt.Sprintf("  Title:       %s\n", orDash(meta.Title)))
	sb.WriteString(fmt.Sprintf("  Description: %s\n", orDash(meta.Description)))
	sb.WriteString(fmt.Sprintf("  Language:    %s\n", orDash(meta.Lang)))
	sb.WriteString(fmt.Sprintf("  Charset:     %s\n", orDash(meta.Charset)))

	if w.verbose {
		sb.WriteString(fmt.Sprintf("  Keywords:    %s\n", orDash(meta.Keywords)))
		sb.WriteString(fmt.Sprintf("  Author:      %s\n", orDash(meta.Author)))
		sb.WriteString(fmt.Sprintf("  Canonical:   %s\n", orDash(meta.Canonical)))
		sb.WriteString(fmt.Sprintf("  Viewport:    %s\n", orDash(meta.Viewport)))
		sb.WriteString(fmt.Sprintf("  OpenGraph:   %d properties\n", len(meta.OpenGraph)))
		sb.WriteString(fmt.Sprintf("  Twitter:     %d properties\n", len(meta.TwitterCard)))
		sb.WriteString(fmt.Sprintf("  JSON-LD:     %d block(s)\n", len(meta.StructuredData)))
	}
	sb.WriteString("\n")
}

// writeStructure writes the document structure section.
func (w *SimpleWriter) writeStructure(sb *strings.Builder, report *model.PageReport) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("STRUCTURE\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	st := report.Structure
	sb.WriteString(fmt.Sprintf("  Headings:   %d (H1: %d)\n", st.Hierarchy.TotalHeadings, st.Hierarchy.H1Count))
	if st.Hierarchy.IsValid {
		sb.WriteString("  Hierarchy:  valid\n")
	} else {
		sb.WriteString(fmt.Sprintf("  Hierarchy:  %d issue(s)\n", len(st.Hierarchy.Issues)))
	}
	sb.WriteString(fmt.Sprintf("  Navigation: %s\n", presentText(st.Navigation.Present, fmt.Sprintf("%d element(s), %d link(s)", st.Navigation.Count, st.Navigation.LinkCount))))
	sb.WriteString(fmt.Sprintf("  Sections:   %d\n", len(st.Sections)))
	sb.WriteString(fmt.Sprintf("  Footer:     %s\n", presentText(st.Footer.Present, fmt.Sprintf("%d link(s)", st.Footer.LinkCount))))
	sb.WriteString(fmt.Sprintf("  Words:      %d in %d paragraph(s)\n", report.Content.WordCount, report.Content.ParagraphCount))
	sb.WriteString("\n")

	if w.verbose {
		for _, h := range st.Headings {
			sb.WriteString(fmt.Sprintf("    H%d %s\n", h.Level, h.Text))
		}
		if len(st.Headings) > 0 {
			sb.WriteString("\n")
		}
	}
}

// writeResources writes the resource summary section.
func (w *SimpleWriter) writeResources(sb *strings.Builder, report *model.PageReport) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("RESOURCES\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	external := 0
	for _, l := range report.Links {
		if l.IsExternal {
			external++
		}
	}

	sb.WriteString(fmt.Sprintf("  Images:  %d\n", len(report.Images)))
	sb.WriteString(fmt.Sprintf("  Links:   %d (%d external)\n", len(report.Links), external))
	sb.WriteString(fmt.Sprintf("  Scripts: %d\n", len(report.Scripts)))
	sb.WriteString(fmt.Sprintf("  Styles:  %d\n", len(report.Styles)))
	sb.WriteString("\n")
}

// writeIssues writes all issues grouped by analysis dimension.
func (w *SimpleWriter) writeIssues(sb *strings.Builder, report *model.PageReport) {
	if report.IssueCount() == 0 && !w.showEmpty {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("ISSUES\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	dimensions := []struct {
		name   string
		issues []string
	}{
		{"SEO", report.SEO.Issues},
		{"ACCESSIBILITY", report.Accessibility.Issues},
		{"PERFORMANCE", report.Performance.Issues},
		{"HEADING HIERARCHY", report.Structure.Hierarchy.Issues},
	}

	for _, dim := range dimensions {
		if len(dim.issues) == 0 && !w.showEmpty {
			continue
		}

		sb.WriteString(fmt.Sprintf("[%s]\n", dim.name))
		if len(dim.issues) == 0 {
			sb.WriteString("  No issues\n\n")
			continue
		}
		for _, issue := range dim.issues {
			sb.WriteString(fmt.Sprintf("  * %s\n", issue))
		}
		sb.WriteString("\n")
	}
}

// writeFooter writes the report footer.
func (w *SimpleWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("Report generated by pagescan\n")
	sb.WriteString("https://github.com/nao1215/pagescan\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
}

// orDash substitutes "-" for an empty value.
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// presentText formats a presence flag with its detail text.
func presentText(present bool, detail string) string {
	if !present {
		return "absent"
	}
	return "present (" + detail + ")"
}
