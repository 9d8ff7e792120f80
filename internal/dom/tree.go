package dom

import "github.com/PuerkitoBio/goquery"

// Tree is the rooted document tree produced by Load.
//
// The tree is built once per Load call and is immutable afterwards.
// It must not be shared across analysis calls.
type Tree struct {
	// root is the synthetic document node.
	root *Node

	// doc is the goquery handle over the parsed markup.
	// It is nil for hand-built or XML-mode trees.
	doc *goquery.Document
}

// NewTree wraps a hand-built root node in a Tree.
// This is primarily useful in tests; Load is the normal constructor.
func NewTree(root *Node) *Tree {
	return &Tree{root: root}
}

// Root returns the synthetic document node.
func (t *Tree) Root() *Node {
	return t.root
}

// Document returns the goquery handle for CSS selector queries,
// or nil when the tree was not built from HTML markup.
//
// Design decision: We expose goquery as an escape hatch rather than
// wrapping every selector feature because:
//  1. Callers wanting free-form queries get the full library
//  2. The analysis engine itself only needs the tag/attribute
//     primitives below, keeping it testable against hand-built trees
func (t *Tree) Document() *goquery.Document {
	return t.doc
}

// FindAll returns every element with the given tag in document order.
func (t *Tree) FindAll(tag string) []*Node {
	return t.FindFunc(func(n *Node) bool { return n.Tag == tag })
}

// First returns the first element with the given tag in document order,
// or nil when the document has none.
func (t *Tree) First(tag string) *Node {
	var found *Node
	var walk func(*Node) bool
	walk = func(n *Node) bool {
		if n.Type == ElementNode && n.Tag == tag {
			found = n
			return true
		}
		for _, c := range n.Children {
			if walk(c) {
				return true
			}
		}
		return false
	}
	walk(t.root)
	return found
}

// FindFunc returns every element satisfying pred in document order.
func (t *Tree) FindFunc(pred func(*Node) bool) []*Node {
	var out []*Node
	t.root.Walk(func(n *Node) {
		if n.Type == ElementNode && pred(n) {
			out = append(out, n)
		}
	})
	return out
}
