package analyze

import (
	"reflect"
	"testing"

	"github.com/nao1215/pagescan/internal/model"
)

// TestAccessibility tests accessibility issue collection, scoring, and
// conformance level labeling.
func TestAccessibility(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		meta       model.Metadata
		images     []model.ImageRef
		links      []model.LinkRef
		wantIssues []string
		wantScore  int
		wantLevel  string
	}{
		{
			name:       "clean page conforms at AA",
			meta:       model.Metadata{Lang: "en"},
			wantIssues: []string{},
			wantScore:  100,
			wantLevel:  model.LevelAA,
		},
		{
			name: "decorative images are excluded from missing alt",
			meta: model.Metadata{Lang: "en"},
			images: []model.ImageRef{
				{HasAlt: true},
				{HasAlt: false, IsDecorative: true},
				{HasAlt: false},
			},
			wantIssues: []string{"1 images missing alt text"},
			wantScore:  88,
			wantLevel:  model.LevelA,
		},
		{
			name: "empty links are aggregated",
			meta: model.Metadata{Lang: "en"},
			links: []model.LinkRef{
				{IsEmpty: true},
				{IsEmpty: false},
				{IsEmpty: true},
			},
			wantIssues: []string{"2 empty links"},
			wantScore:  88,
			wantLevel:  model.LevelA,
		},
		{
			name:       "missing lang attribute",
			meta:       model.Metadata{},
			wantIssues: []string{"Missing lang attribute on <html> element"},
			wantScore:  88,
			wantLevel:  model.LevelA,
		},
		{
			name:       "invalid lang attribute",
			meta:       model.Metadata{Lang: "not a tag!!"},
			wantIssues: []string{`Invalid lang attribute: "not a tag!!"`},
			wantScore:  88,
			wantLevel:  model.LevelA,
		},
		{
			name:       "region subtag is a valid lang",
			meta:       model.Metadata{Lang: "pt-BR"},
			wantIssues: []string{},
			wantScore:  100,
			wantLevel:  model.LevelAA,
		},
		{
			name:   "two issues still conform at A",
			meta:   model.Metadata{},
			images: []model.ImageRef{{HasAlt: false}},
			wantIssues: []string{
				"1 images missing alt text",
				"Missing lang attribute on <html> element",
			},
			wantScore: 76,
			wantLevel: model.LevelA,
		},
		{
			name:   "three issues fall below standards",
			meta:   model.Metadata{},
			images: []model.ImageRef{{HasAlt: false}},
			links:  []model.LinkRef{{IsEmpty: true}},
			wantIssues: []string{
				"1 images missing alt text",
				"1 empty links",
				"Missing lang attribute on <html> element",
			},
			wantScore: 64,
			wantLevel: model.LevelBelowStandards,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Accessibility(tt.meta, tt.images, tt.links)

			if !reflect.DeepEqual(got.Issues, tt.wantIssues) {
				t.Errorf("Issues = %v, want %v", got.Issues, tt.wantIssues)
			}
			if got.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", got.Score, tt.wantScore)
			}
			if got.Level != tt.wantLevel {
				t.Errorf("Level = %q, want %q", got.Level, tt.wantLevel)
			}
		})
	}
}
