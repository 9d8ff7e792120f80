// Package dom provides the document tree used by all analysis passes.
//
// # Architecture
//
// The package is designed around two types:
//
//   - Node: a single element or text node with ordered attributes,
//     ordered children, and a parent back-reference
//   - Tree: the rooted document tree produced by Load, plus a goquery
//     handle for callers that want CSS selector queries
//
// Design decision: We build our own Node tree on top of golang.org/x/net/html
// rather than exposing *html.Node directly because:
//  1. Extractors and analyzers stay independent of the parser library
//  2. Whitespace normalization happens once, at load time
//  3. Tests can hand-build small trees without parsing HTML
//  4. The tree can be frozen: nothing downstream mutates it
//
// # Whitespace
//
// Unless Options.PreserveWhitespace is set, runs of whitespace inside
// text nodes are collapsed to a single space during loading. Entity
// decoding is always on; it is performed by the underlying parser.
//
// # Usage
//
//	tree, err := dom.Load(htmlText, dom.Options{})
//	for _, img := range tree.FindAll("img") {
//		src, _ := img.Attr("src")
//		...
//	}
package dom
