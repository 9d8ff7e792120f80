package analyze

import (
	"fmt"
	"strings"

	"github.com/nao1215/pagescan/internal/model"
)

// Per-dimension score weights. One issue costs this many points.
const (
	seoWeight           = 15
	accessibilityWeight = 12
	performanceWeight   = 10
)

// SEO collects SEO issues and derives the dimension score.
//
// Images without alt text contribute a single aggregated issue with the
// count embedded in the message rather than one issue per image, so a
// gallery page is not drowned out by repetition.
func SEO(meta model.Metadata, hierarchy model.HierarchyReport, images []model.ImageRef) model.SEOReport {
	issues := []string{}

	if strings.TrimSpace(meta.Title) == "" {
		issues = append(issues, "Missing page title")
	}
	if meta.Description == "" {
		issues = append(issues, "Missing meta description")
	}
	if !hierarchy.IsValid {
		issues = append(issues, "Invalid heading hierarchy")
	}

	missingAlt := 0
	for _, img := range images {
		if !img.HasAlt {
			missingAlt++
		}
	}
	if missingAlt > 0 {
		issues = append(issues, fmt.Sprintf("%d images missing alt text", missingAlt))
	}

	return model.SEOReport{
		Issues: issues,
		Score:  weightedScore(len(issues), seoWeight),
	}
}

// weightedScore maps an issue count to max(0, 100 - count*weight).
func weightedScore(issueCount, weight int) int {
	score := 100 - issueCount*weight
	if score < 0 {
		return 0
	}
	return score
}
