package analyze

import (
	"fmt"

	"github.com/nao1215/pagescan/internal/model"
)

// Performance collects performance issues and derives the dimension
// score.
//
// Like SEO, per-element problems are aggregated into one counted issue
// per category. ResourceCount is the total of images, scripts, and
// external stylesheets; inline styles cost no extra request so they are
// not counted as resources.
func Performance(images []model.ImageRef, scripts []model.ScriptRef, styles []model.StyleRef) model.PerformanceReport {
	issues := []string{}

	missingDims := 0
	for _, img := range images {
		if img.Width == "" || img.Height == "" {
			missingDims++
		}
	}
	if missingDims > 0 {
		issues = append(issues, fmt.Sprintf("%d images missing explicit dimensions", missingDims))
	}

	// External scripts with neither async nor defer block parsing while
	// they download.
	blocking := 0
	for _, s := range scripts {
		if !s.Inline && !s.Async && !s.Defer {
			blocking++
		}
	}
	if blocking > 0 {
		issues = append(issues, fmt.Sprintf("%d blocking scripts", blocking))
	}

	externalStyles := 0
	for _, s := range styles {
		if !s.Inline {
			externalStyles++
		}
	}

	return model.PerformanceReport{
		Issues:        issues,
		Score:         weightedScore(len(issues), performanceWeight),
		ResourceCount: len(images) + len(scripts) + externalStyles,
	}
}
