package engine

import (
	"fmt"

	"github.com/nao1215/pagescan/internal/dom"
)

// mandatoryElements are the elements every analyzable document needs.
// Each absence is reported individually.
var mandatoryElements = []string{"html", "head", "body", "title"}

// validateTree checks the document for mandatory structure.
//
// Checks are accumulated, not short-circuited: missing elements are
// reported first, then every duplicate id value. For duplicate ids the
// first occurrence wins and each subsequent occurrence is reported by
// value, so an id appearing three times yields two violations.
func validateTree(tree *dom.Tree) *ValidationError {
	var violations []string

	for _, tag := range mandatoryElements {
		if tree.First(tag) == nil {
			violations = append(violations, fmt.Sprintf("Missing <%s> element", tag))
		}
	}

	seen := make(map[string]bool)
	tree.Root().Walk(func(n *dom.Node) {
		if n.Type != dom.ElementNode {
			return
		}
		id, ok := n.Attr("id")
		if !ok || id == "" {
			return
		}
		if seen[id] {
			violations = append(violations, fmt.Sprintf("Duplicate ID: %s", id))
			return
		}
		seen[id] = true
	})

	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{Violations: violations}
}
