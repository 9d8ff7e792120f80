package dom

import (
	"strings"
	"testing"
)

// testTree hand-builds a small document for traversal tests.
func testTree() *Tree {
	root := &Node{Type: DocumentNode, Tag: "#document"}
	root.Append(
		NewElement("html").Append(
			NewElement("body").Append(
				NewElement("p", Attribute{Key: "id", Val: "first"}),
				NewElement("div").Append(
					NewElement("p", Attribute{Key: "id", Val: "second"}),
				),
				NewElement("img", Attribute{Key: "src", Val: "/a.png"}),
			),
		),
	)
	return NewTree(root)
}

// TestTreeFindAll tests tag lookup in document order.
func TestTreeFindAll(t *testing.T) {
	t.Parallel()

	tree := testTree()

	ps := tree.FindAll("p")
	if len(ps) != 2 {
		t.Fatalf("FindAll(p) = %d nodes, want 2", len(ps))
	}
	if got := ps[0].AttrValue("id"); got != "first" {
		t.Errorf("first match id = %q, want %q", got, "first")
	}
	if got := ps[1].AttrValue("id"); got != "second" {
		t.Errorf("second match id = %q, want %q", got, "second")
	}

	if got := tree.FindAll("table"); len(got) != 0 {
		t.Errorf("FindAll(table) = %d nodes, want 0", len(got))
	}
}

// TestTreeFirst tests first-match lookup.
func TestTreeFirst(t *testing.T) {
	t.Parallel()

	tree := testTree()

	p := tree.First("p")
	if p == nil {
		t.Fatal("First(p) = nil, want node")
	}
	if got := p.AttrValue("id"); got != "first" {
		t.Errorf("First(p) id = %q, want %q", got, "first")
	}

	if tree.First("table") != nil {
		t.Error("First(table) != nil, want nil for absent tag")
	}
}

// TestTreeFindFunc tests predicate lookup.
func TestTreeFindFunc(t *testing.T) {
	t.Parallel()

	tree := testTree()

	withID := tree.FindFunc(func(n *Node) bool { return n.HasAttr("id") })
	if len(withID) != 2 {
		t.Errorf("FindFunc(has id) = %d nodes, want 2", len(withID))
	}

	// Text nodes never match, even with an always-true predicate.
	all := tree.FindFunc(func(*Node) bool { return true })
	for _, n := range all {
		if n.Type != ElementNode {
			t.Errorf("FindFunc returned non-element node %v", n.Type)
		}
	}
}

// TestTreeDocumentQueries tests the goquery escape hatch against real
// parsed markup.
func TestTreeDocumentQueries(t *testing.T) {
	t.Parallel()

	tree, err := Load(`<html><body><ul><li class="x">a</li><li>b</li></ul></body></html>`, Options{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	doc := tree.Document()
	if doc == nil {
		t.Fatal("Document() = nil, want goquery handle")
	}

	sel := doc.Find("li.x")
	if sel.Length() != 1 {
		t.Fatalf("Find(li.x) = %d matches, want 1", sel.Length())
	}
	if got := strings.TrimSpace(sel.Text()); got != "a" {
		t.Errorf("selection text = %q, want %q", got, "a")
	}
}
