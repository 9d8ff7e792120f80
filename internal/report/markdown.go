package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"github.com/nao1215/pagescan/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.PageReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeScores(md, report)
	w.writeMetadata(md, report)
	w.writeStructure(md, report)
	w.writeIssues(md, report)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with document information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.PageReport) {
	md.H1("Pagescan Report")
	md.PlainText("")

	source := report.Source
	if source == "" {
		source = "-"
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Document", "`" + source + "`"},
			{"Analyzed", report.AnalyzedAt.Format("2006-01-02 15:04:05 MST")},
			{"Duration", strconv.FormatInt(report.Duration, 10) + "ms"},
			{"Issues", strconv.Itoa(report.IssueCount())},
		},
	})
	md.PlainText("")
}

// writeScores writes the score summary section.
func (w *MarkdownWriter) writeScores(md *markdown.Markdown, report *model.PageReport) {
	md.H2("Score Summary")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Dimension", "Score", "Detail"},
		Rows: [][]string{
			{"SEO", scoreText(report.SEO.Score), strconv.Itoa(len(report.SEO.Issues)) + " issue(s)"},
			{"Accessibility", scoreText(report.Accessibility.Score), "WCAG " + report.Accessibility.Level},
			{"Performance", scoreText(report.Performance.Score), strconv.Itoa(report.Performance.ResourceCount) + " resource(s)"},
			{"Readability", scoreText(report.Content.ReadabilityScore), strconv.Itoa(report.Content.WordCount) + " word(s)"},
		},
	})
	md.PlainText("")

	if report.IssueCount() > 0 {
		w.writePieChart(md, report)
	}

	w.writeAlert(md, report)
}

// scoreText formats a score with its emoji indicator.
func scoreText(score int) string {
	switch {
	case score >= 90:
		return "🟢 " + strconv.Itoa(score)
	case score >= 70:
		return "🟡 " + strconv.Itoa(score)
	default:
		return "🔴 " + strconv.Itoa(score)
	}
}

// writePieChart writes a mermaid pie chart for issue distribution.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, report *model.PageReport) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Issue Distribution"),
		piechart.WithShowData(true),
	)

	if n := len(report.SEO.Issues); n > 0 {
		chart.LabelAndIntValue("SEO", uint64(n))
	}
	if n := len(report.Accessibility.Issues); n > 0 {
		chart.LabelAndIntValue("Accessibility", uint64(n))
	}
	if n := len(report.Performance.Issues); n > 0 {
		chart.LabelAndIntValue("Performance", uint64(n))
	}
	if n := len(report.Structure.Hierarchy.Issues); n > 0 {
		chart.LabelAndIntValue("Hierarchy", uint64(n))
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAlert writes an appropriate alert based on the scores.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, report *model.PageReport) {
	lowest := report.SEO.Score
	if report.Accessibility.Score < lowest {
		lowest = report.Accessibility.Score
	}
	if report.Performance.Score < lowest {
		lowest = report.Performance.Score
	}

	switch {
	case lowest < 50:
		md.Cautionf(
			"Serious quality issues detected. The lowest dimension scored %d/100 and needs immediate attention.",
			lowest,
		)
	case lowest < 70:
		md.Warningf(
			"Quality issues detected. The lowest dimension scored %d/100.",
			lowest,
		)
	case report.IssueCount() > 0:
		md.Notef("Minor issues found (%d total). Overall document quality is good.", report.IssueCount())
	default:
		md.Tip("No quality issues detected.")
	}
	md.PlainText("")
}

// writeMetadata writes the document metadata section.
func (w *MarkdownWriter) writeMetadata(md *markdown.Markdown, report *model.PageReport) {
	md.H2("Metadata")
	md.PlainText("")

	meta := report.Metadata
	md.Table(markdown.TableSet{
		Header: []string{"Field", "Value"},
		Rows: [][]string{
			{"Title", truncateString(orDash(meta.Title), 60)},
			{"Description", truncateString(orDash(meta.Description), 80)},
			{"Language", orDash(meta.Lang)},
			{"Charset", orDash(meta.Charset)},
			{"Canonical", truncateString(orDash(meta.Canonical), 60)},
			{"OpenGraph", strconv.Itoa(len(meta.OpenGraph)) + " properties"},
			{"Twitter Card", strconv.Itoa(len(meta.TwitterCard)) + " properties"},
			{"JSON-LD", strconv.Itoa(len(meta.StructuredData)) + " block(s)"},
		},
	})
	md.PlainText("")
}

// writeStructure writes the document structure section.
func (w *MarkdownWriter) writeStructure(md *markdown.Markdown, report *model.PageReport) {
	md.H2("Structure")
	md.PlainText("")

	st := report.Structure
	hierarchy := "valid"
	if !st.Hierarchy.IsValid {
		hierarchy = strconv.Itoa(len(st.Hierarchy.Issues)) + " issue(s)"
	}

	external := 0
	for _, l := range report.Links {
		if l.IsExternal {
			external++
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Element", "Count"},
		Rows: [][]string{
			{"Headings", strconv.Itoa(st.Hierarchy.TotalHeadings) + " (H1: " + strconv.Itoa(st.Hierarchy.H1Count) + ", hierarchy " + hierarchy + ")"},
			{"Sections", strconv.Itoa(len(st.Sections))},
			{"Navigation links", strconv.Itoa(st.Navigation.LinkCount)},
			{"Images", strconv.Itoa(len(report.Images))},
			{"Links", strconv.Itoa(len(report.Links)) + " (" + strconv.Itoa(external) + " external)"},
			{"Scripts", strconv.Itoa(len(report.Scripts))},
			{"Styles", strconv.Itoa(len(report.Styles))},
			{"Words", strconv.Itoa(report.Content.WordCount)},
		},
	})
	md.PlainText("")
}

// writeIssues writes all issues grouped by analysis dimension.
func (w *MarkdownWriter) writeIssues(md *markdown.Markdown, report *model.PageReport) {
	md.H2("Issues")
	md.PlainText("")

	if report.IssueCount() == 0 {
		md.PlainText("No issues detected.")
		md.PlainText("")
		return
	}

	dimensions := []struct {
		header string
		issues []string
	}{
		{"### SEO", report.SEO.Issues},
		{"### Accessibility", report.Accessibility.Issues},
		{"### Performance", report.Performance.Issues},
		{"### Heading Hierarchy", report.Structure.Hierarchy.Issues},
	}

	for _, dim := range dimensions {
		if len(dim.issues) == 0 {
			continue
		}

		md.PlainText(dim.header)
		md.PlainText("")
		md.BulletList(dim.issues...)
		md.PlainText("")
	}
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [pagescan](https://github.com/nao1215/pagescan)*")
}

// truncateString truncates a string to maxLen characters with ellipsis.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
