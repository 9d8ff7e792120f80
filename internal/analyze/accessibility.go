package analyze

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/nao1215/pagescan/internal/model"
)

// Accessibility collects accessibility issues and derives the dimension
// score and conformance level label.
//
// Decorative images (alt present and exactly empty) are excluded from
// the missing-alt count: an explicit alt="" is the documented way to
// hide an image from assistive technology.
func Accessibility(meta model.Metadata, images []model.ImageRef, links []model.LinkRef) model.AccessibilityReport {
	issues := []string{}

	missingAlt := 0
	for _, img := range images {
		if !img.HasAlt && !img.IsDecorative {
			missingAlt++
		}
	}
	if missingAlt > 0 {
		issues = append(issues, fmt.Sprintf("%d images missing alt text", missingAlt))
	}

	emptyLinks := 0
	for _, l := range links {
		if l.IsEmpty {
			emptyLinks++
		}
	}
	if emptyLinks > 0 {
		issues = append(issues, fmt.Sprintf("%d empty links", emptyLinks))
	}

	switch {
	case meta.Lang == "":
		issues = append(issues, "Missing lang attribute on <html> element")
	case !validLangTag(meta.Lang):
		issues = append(issues, fmt.Sprintf("Invalid lang attribute: %q", meta.Lang))
	}

	return model.AccessibilityReport{
		Issues: issues,
		Score:  weightedScore(len(issues), accessibilityWeight),
		Level:  conformanceLevel(len(issues)),
	}
}

// validLangTag reports whether tag parses as a BCP 47 language tag.
func validLangTag(tag string) bool {
	_, err := language.Parse(tag)
	return err == nil
}

// conformanceLevel maps an issue count to the coarse level label.
func conformanceLevel(issueCount int) string {
	switch {
	case issueCount == 0:
		return model.LevelAA
	case issueCount <= 2:
		return model.LevelA
	default:
		return model.LevelBelowStandards
	}
}
