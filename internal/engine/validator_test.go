package engine

import (
	"reflect"
	"testing"

	"github.com/nao1215/pagescan/internal/dom"
)

// mustLoad parses markup or fails the test.
func mustLoad(t *testing.T, input string) *dom.Tree {
	t.Helper()

	tree, err := dom.Load(input, dom.Options{})
	if err != nil {
		t.Fatalf("dom.Load() error = %v", err)
	}
	return tree
}

// TestValidateTree tests structural validation.
func TestValidateTree(t *testing.T) {
	t.Parallel()

	t.Run("valid document", func(t *testing.T) {
		t.Parallel()

		tree := mustLoad(t, `<html><head><title>t</title></head><body><p id="a">x</p></body></html>`)

		if verr := validateTree(tree); verr != nil {
			t.Errorf("validateTree() = %v, want nil", verr)
		}
	})

	t.Run("missing title", func(t *testing.T) {
		t.Parallel()

		// The HTML parser synthesizes html, head, and body, so title is
		// the element that can actually go missing from parsed markup.
		tree := mustLoad(t, `<html><head></head><body></body></html>`)

		verr := validateTree(tree)
		if verr == nil {
			t.Fatal("validateTree() = nil, want error")
		}
		want := []string{"Missing <title> element"}
		if !reflect.DeepEqual(verr.Violations, want) {
			t.Errorf("Violations = %v, want %v", verr.Violations, want)
		}
	})

	t.Run("every mandatory element reported on a bare tree", func(t *testing.T) {
		t.Parallel()

		tree := dom.NewTree(&dom.Node{Type: dom.DocumentNode, Tag: "#document"})

		verr := validateTree(tree)
		if verr == nil {
			t.Fatal("validateTree() = nil, want error")
		}
		want := []string{
			"Missing <html> element",
			"Missing <head> element",
			"Missing <body> element",
			"Missing <title> element",
		}
		if !reflect.DeepEqual(verr.Violations, want) {
			t.Errorf("Violations = %v, want %v", verr.Violations, want)
		}
	})

	t.Run("duplicate ids reported per extra occurrence", func(t *testing.T) {
		t.Parallel()

		tree := mustLoad(t, `<html><head><title>t</title></head><body>
			<p id="x">1</p><p id="x">2</p><p id="x">3</p><p id="y">4</p>
		</body></html>`)

		verr := validateTree(tree)
		if verr == nil {
			t.Fatal("validateTree() = nil, want error")
		}
		want := []string{"Duplicate ID: x", "Duplicate ID: x"}
		if !reflect.DeepEqual(verr.Violations, want) {
			t.Errorf("Violations = %v, want %v", verr.Violations, want)
		}
	})

	t.Run("empty id values are not duplicates", func(t *testing.T) {
		t.Parallel()

		tree := mustLoad(t, `<html><head><title>t</title></head><body>
			<p id="">1</p><p id="">2</p>
		</body></html>`)

		if verr := validateTree(tree); verr != nil {
			t.Errorf("validateTree() = %v, want nil", verr)
		}
	})

	t.Run("missing element and duplicate id accumulate", func(t *testing.T) {
		t.Parallel()

		tree := mustLoad(t, `<html><head></head><body><p id="a">1</p><span id="a">2</span></body></html>`)

		verr := validateTree(tree)
		if verr == nil {
			t.Fatal("validateTree() = nil, want error")
		}
		want := []string{"Missing <title> element", "Duplicate ID: a"}
		if !reflect.DeepEqual(verr.Violations, want) {
			t.Errorf("Violations = %v, want %v", verr.Violations, want)
		}
	})
}

// TestValidationErrorMessage tests the joined error message.
func TestValidationErrorMessage(t *testing.T) {
	t.Parallel()

	verr := &ValidationError{Violations: []string{"Missing <title> element", "Duplicate ID: a"}}

	want := "HTML validation failed: Missing <title> element, Duplicate ID: a"
	if got := verr.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
