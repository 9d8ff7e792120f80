package engine

import (
	"errors"
	"testing"
)

// validDoc is a complete document that passes validation with no issues
// in any analysis dimension.
const validDoc = `<html lang="en">
<head>
	<meta charset="utf-8">
	<title>Example</title>
	<meta name="description" content="An example page">
</head>
<body>
	<h1>Welcome</h1>
	<p>Short words make this page easy to read. Yes they do.</p>
</body>
</html>`

// TestEngineParseHTML tests the full analysis pass.
func TestEngineParseHTML(t *testing.T) {
	t.Parallel()

	t.Run("clean document", func(t *testing.T) {
		t.Parallel()

		e := New()

		result, err := e.ParseHTML(validDoc)
		if err != nil {
			t.Fatalf("ParseHTML() error = %v", err)
		}
		if result.Report == nil || result.Tree == nil {
			t.Fatal("result is missing report or tree")
		}

		r := result.Report
		if r.Metadata.Title != "Example" {
			t.Errorf("Title = %q, want %q", r.Metadata.Title, "Example")
		}
		if r.SEO.Score != 100 {
			t.Errorf("SEO.Score = %d, want 100: issues %v", r.SEO.Score, r.SEO.Issues)
		}
		if r.Accessibility.Score != 100 {
			t.Errorf("Accessibility.Score = %d, want 100: issues %v", r.Accessibility.Score, r.Accessibility.Issues)
		}
		if r.Performance.Score != 100 {
			t.Errorf("Performance.Score = %d, want 100: issues %v", r.Performance.Score, r.Performance.Issues)
		}
		if !r.Structure.Hierarchy.IsValid {
			t.Errorf("Hierarchy.IsValid = false: issues %v", r.Structure.Hierarchy.Issues)
		}
		if r.Content.ReadabilityScore == 0 {
			t.Error("Content.ReadabilityScore = 0, want non-zero for prose body")
		}
		if r.AnalyzedAt.IsZero() {
			t.Error("AnalyzedAt is zero, want analysis start time")
		}
	})

	t.Run("validation failure returns ValidationError", func(t *testing.T) {
		t.Parallel()

		e := New()

		_, err := e.ParseHTML(`<html><head></head><body><p id="a">1</p><p id="a">2</p></body></html>`)
		if err == nil {
			t.Fatal("ParseHTML() error = nil, want validation error")
		}

		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("error type = %T, want *ValidationError", err)
		}
		if len(verr.Violations) != 2 {
			t.Errorf("Violations = %v, want missing title and duplicate id", verr.Violations)
		}
	})

	t.Run("extracted metadata feeds the analyzers", func(t *testing.T) {
		t.Parallel()

		e := New()

		// The title element is present, so only the description issue
		// should fire in the SEO dimension.
		result, err := e.ParseHTML(`<html lang="en"><head><title>Only title</title></head><body><h1>h</h1></body></html>`)
		if err != nil {
			t.Fatalf("ParseHTML() error = %v", err)
		}

		issues := result.Report.SEO.Issues
		if len(issues) != 1 || issues[0] != "Missing meta description" {
			t.Errorf("SEO.Issues = %v, want only the description issue", issues)
		}
	})
}

// TestEngineOptions tests engine-level and per-call option handling.
func TestEngineOptions(t *testing.T) {
	t.Parallel()

	t.Run("validation disabled at construction", func(t *testing.T) {
		t.Parallel()

		e := New(WithValidation(false))

		if _, err := e.ParseHTML("<p>bare fragment</p>"); err != nil {
			t.Errorf("ParseHTML() error = %v, want nil with validation off", err)
		}
	})

	t.Run("per-call options override engine defaults", func(t *testing.T) {
		t.Parallel()

		e := New()

		// Missing title, so default options reject it.
		doc := `<html><head></head><body></body></html>`
		if _, err := e.ParseHTML(doc); err == nil {
			t.Fatal("ParseHTML() error = nil, want validation error under defaults")
		}

		result, err := e.ParseHTMLWithOptions(doc, Options{ValidateHTML: false})
		if err != nil {
			t.Fatalf("ParseHTMLWithOptions() error = %v", err)
		}
		if result.Report == nil {
			t.Error("report = nil, want report with validation off")
		}

		// The per-call options must not stick to the engine.
		if _, err := e.ParseHTML(doc); err == nil {
			t.Error("ParseHTML() error = nil, want engine defaults restored")
		}
	})

	t.Run("current host classifies links", func(t *testing.T) {
		t.Parallel()

		e := New(WithCurrentHost("example.com"), WithValidation(false))

		result, err := e.ParseHTML(`<body>
			<a href="https://example.com/in">in</a>
			<a href="https://other.com/out">out</a>
		</body>`)
		if err != nil {
			t.Fatalf("ParseHTML() error = %v", err)
		}

		links := result.Report.Links
		if len(links) != 2 {
			t.Fatalf("Links = %d entries, want 2", len(links))
		}
		if links[0].IsExternal {
			t.Error("same-host link classified external")
		}
		if !links[1].IsExternal {
			t.Error("other-host link not classified external")
		}
	})

	t.Run("preserve whitespace", func(t *testing.T) {
		t.Parallel()

		e := New(WithPreserveWhitespace(true), WithValidation(false))

		result, err := e.ParseHTML("<body><pre>a \n b</pre></body>")
		if err != nil {
			t.Fatalf("ParseHTML() error = %v", err)
		}

		pre := result.Tree.First("pre")
		if pre == nil {
			t.Fatal("First(pre) = nil")
		}
		if len(pre.Children) != 1 || pre.Children[0].Data != "a \n b" {
			t.Errorf("pre text = %q, want raw whitespace", pre.Children[0].Data)
		}
	})
}

// TestEngineStats tests the lifetime counters across analyses.
func TestEngineStats(t *testing.T) {
	t.Parallel()

	e := New()

	doc := `<html lang="en"><head><title>t</title></head><body>
		<img src="/a.png" alt="a"><img src="/b.png" alt="b">
	</body></html>`
	if _, err := e.ParseHTML(doc); err != nil {
		t.Fatalf("ParseHTML() error = %v", err)
	}
	if _, err := e.ParseHTML(doc); err != nil {
		t.Fatalf("ParseHTML() error = %v", err)
	}

	stats := e.Stats()
	if stats.DocumentsProcessed != 2 {
		t.Errorf("DocumentsProcessed = %d, want 2", stats.DocumentsProcessed)
	}
	if stats.ElementsExtracted != 4 {
		t.Errorf("ElementsExtracted = %d, want 4", stats.ElementsExtracted)
	}
	if stats.ErrorsFound != 0 {
		t.Errorf("ErrorsFound = %d, want 0", stats.ErrorsFound)
	}

	// A failed validation counts as an error but not as a processed
	// document.
	if _, err := e.ParseHTML(`<html><head></head><body></body></html>`); err == nil {
		t.Fatal("ParseHTML() error = nil, want validation error")
	}
	stats = e.Stats()
	if stats.DocumentsProcessed != 2 {
		t.Errorf("DocumentsProcessed = %d, want 2 after failed analysis", stats.DocumentsProcessed)
	}
	if stats.ErrorsFound != 1 {
		t.Errorf("ErrorsFound = %d, want 1", stats.ErrorsFound)
	}

	// Malformed JSON-LD counts as an error without failing the call.
	if _, err := e.ParseHTML(`<html lang="en"><head><title>t</title>
		<script type="application/ld+json">{bad</script>
	</head><body></body></html>`); err != nil {
		t.Fatalf("ParseHTML() error = %v", err)
	}
	stats = e.Stats()
	if stats.ErrorsFound != 2 {
		t.Errorf("ErrorsFound = %d, want 2 after structured data error", stats.ErrorsFound)
	}

	e.ResetStats()
	if got := e.Stats(); got.DocumentsProcessed != 0 || got.ErrorsFound != 0 || got.ElementsExtracted != 0 {
		t.Errorf("post-reset stats = %+v, want all zero", got)
	}
}
