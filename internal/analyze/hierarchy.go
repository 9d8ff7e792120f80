package analyze

import (
	"fmt"

	"github.com/nao1215/pagescan/internal/model"
)

// Hierarchy validates the document's heading structure.
//
// Rules, applied in document order:
//   - zero H1 elements is an issue, as is more than one
//   - a heading more than one level deeper than its predecessor is a
//     skip (H2 followed by H4); going back up or staying level is fine
//
// Decreasing or equal levels never trigger a skip: only forward jumps
// of more than one level break the outline.
func Hierarchy(headings []model.Heading) model.HierarchyReport {
	report := model.HierarchyReport{
		TotalHeadings: len(headings),
		Issues:        []string{},
	}

	for _, h := range headings {
		if h.Level == 1 {
			report.H1Count++
		}
	}

	if report.H1Count == 0 {
		report.Issues = append(report.Issues, "Missing H1 tag")
	}
	if report.H1Count > 1 {
		report.Issues = append(report.Issues, "Multiple H1 tags found")
	}

	for i := 1; i < len(headings); i++ {
		prev, cur := headings[i-1].Level, headings[i].Level
		if cur > prev+1 {
			report.Issues = append(report.Issues,
				fmt.Sprintf("Heading hierarchy skip: H%d to H%d", prev, cur))
		}
	}

	report.IsValid = len(report.Issues) == 0
	return report
}
