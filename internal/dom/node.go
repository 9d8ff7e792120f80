package dom

import "strings"

// NodeType identifies the kind of a Node.
type NodeType int

const (
	// DocumentNode is the synthetic root of a parsed document.
	DocumentNode NodeType = iota

	// ElementNode is an HTML element such as <p> or <img>.
	ElementNode

	// TextNode is a run of character data.
	TextNode
)

// Attribute is a single name/value pair on an element.
// Attributes keep their document order, which a map would lose.
type Attribute struct {
	// Key is the attribute name, lowercased.
	Key string

	// Val is the attribute value with entities decoded.
	Val string
}

// Node is a single node in the document tree.
//
// The tree exclusively owns its children; Parent is a lookup-only
// back-reference. After Load returns, the tree must be treated as
// read-only: extractors copy values out of it, never alias into it.
type Node struct {
	// Type is the node kind.
	Type NodeType

	// Tag is the lowercased tag name for element nodes.
	// It is empty for text nodes and "#document" for the root.
	Tag string

	// Data is the text content for text nodes.
	Data string

	// Attributes holds the element's attributes in document order.
	Attributes []Attribute

	// Parent points at the owning node, or nil for the root.
	Parent *Node

	// Children holds child nodes in document order.
	Children []*Node
}

// NewElement creates an element node with the given tag and attributes.
// It exists so tests can hand-build trees without parsing HTML.
func NewElement(tag string, attrs ...Attribute) *Node {
	return &Node{
		Type:       ElementNode,
		Tag:        strings.ToLower(tag),
		Attributes: attrs,
	}
}

// NewText creates a text node with the given content.
func NewText(data string) *Node {
	return &Node{Type: TextNode, Data: data}
}

// Append adds children to the node and sets their parent pointer.
// It returns the node for chaining during tree construction.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		c.Parent = n
		n.Children = append(n.Children, c)
	}
	return n
}

// Attr returns the value of the named attribute and whether it exists.
// Lookup is case-insensitive; attribute keys are stored lowercased.
func (n *Node) Attr(key string) (string, bool) {
	key = strings.ToLower(key)
	for _, a := range n.Attributes {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// AttrValue returns the value of the named attribute, or "" when absent.
func (n *Node) AttrValue(key string) string {
	v, _ := n.Attr(key)
	return v
}

// HasAttr reports whether the named attribute is present, even if empty.
func (n *Node) HasAttr(key string) bool {
	_, ok := n.Attr(key)
	return ok
}

// Text returns the concatenated text of the node and its descendants,
// with surrounding whitespace trimmed and internal runs collapsed.
func (n *Node) Text() string {
	var b strings.Builder
	n.collectText(&b)
	return strings.TrimSpace(collapseSpaces(b.String()))
}

// collectText appends descendant text data in document order.
func (n *Node) collectText(b *strings.Builder) {
	if n.Type == TextNode {
		b.WriteString(n.Data)
		return
	}
	for _, c := range n.Children {
		c.collectText(b)
	}
}

// Walk visits the node and every descendant in document order.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// collapseSpaces collapses runs of whitespace to single spaces.
func collapseSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastSpace := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f' {
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}
	return b.String()
}
