package dom

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Options configures document loading.
type Options struct {
	// PreserveWhitespace keeps text node whitespace exactly as written.
	// When false (the default), runs of whitespace are collapsed to a
	// single space during loading.
	PreserveWhitespace bool

	// XMLMode parses the input as XML instead of HTML. Tag matching
	// becomes strict and no browser-style structural repair happens.
	XMLMode bool
}

// Load parses markup into a document tree.
//
// HTML parsing is permissive: malformed markup is structurally repaired
// the way browsers repair it, so Load only fails when the underlying
// parser itself fails. Entity decoding is always on.
func Load(input string, opts Options) (*Tree, error) {
	if opts.XMLMode {
		root, err := parseXML(input, opts)
		if err != nil {
			return nil, fmt.Errorf("parse xml: %w", err)
		}
		return &Tree{root: root}, nil
	}

	node, err := html.Parse(strings.NewReader(input))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	root := convertHTML(node, nil, opts)
	return &Tree{
		root: root,
		doc:  goquery.NewDocumentFromNode(node),
	}, nil
}

// convertHTML converts an x/net/html node into our tree representation.
// Comments, doctypes, and raw document structure markers are dropped;
// only elements and text survive.
func convertHTML(src *html.Node, parent *Node, opts Options) *Node {
	var n *Node
	switch src.Type {
	case html.DocumentNode:
		n = &Node{Type: DocumentNode, Tag: "#document"}
	case html.ElementNode:
		n = &Node{Type: ElementNode, Tag: strings.ToLower(src.Data)}
		if len(src.Attr) > 0 {
			n.Attributes = make([]Attribute, 0, len(src.Attr))
			for _, a := range src.Attr {
				n.Attributes = append(n.Attributes, Attribute{
					Key: strings.ToLower(a.Key),
					Val: a.Val,
				})
			}
		}
	case html.TextNode:
		data := src.Data
		if !opts.PreserveWhitespace {
			data = collapseSpaces(data)
			if data == "" {
				return nil
			}
		}
		n = &Node{Type: TextNode, Data: data}
	default:
		// Comment, doctype, and error nodes carry no analysis signal.
		return nil
	}

	n.Parent = parent
	for c := src.FirstChild; c != nil; c = c.NextSibling {
		if child := convertHTML(c, n, opts); child != nil {
			n.Children = append(n.Children, child)
		}
	}
	return n
}

// parseXML builds the same node shape from an XML token stream.
//
// Design decision: We keep the HTML entity table and auto-close rules
// enabled so that XHTML-flavored documents parse without boilerplate,
// but leave strict mode off to mirror the loader's permissive contract.
func parseXML(input string, opts Options) (*Node, error) {
	dec := xml.NewDecoder(strings.NewReader(input))
	dec.Strict = false
	dec.AutoClose = xml.HTMLAutoClose
	dec.Entity = xml.HTMLEntity

	root := &Node{Type: DocumentNode, Tag: "#document"}
	cur := root

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{
				Type:   ElementNode,
				Tag:    strings.ToLower(t.Name.Local),
				Parent: cur,
			}
			if len(t.Attr) > 0 {
				n.Attributes = make([]Attribute, 0, len(t.Attr))
				for _, a := range t.Attr {
					n.Attributes = append(n.Attributes, Attribute{
						Key: strings.ToLower(a.Name.Local),
						Val: a.Value,
					})
				}
			}
			cur.Children = append(cur.Children, n)
			cur = n
		case xml.EndElement:
			if cur.Parent != nil {
				cur = cur.Parent
			}
		case xml.CharData:
			data := string(t)
			if !opts.PreserveWhitespace {
				data = collapseSpaces(data)
				if data == "" {
					continue
				}
			}
			cur.Children = append(cur.Children, &Node{
				Type:   TextNode,
				Data:   data,
				Parent: cur,
			})
		}
	}
	return root, nil
}
