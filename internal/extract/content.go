package extract

import (
	"strings"
	"unicode/utf8"

	"github.com/nao1215/pagescan/internal/dom"
	"github.com/nao1215/pagescan/internal/model"
)

// Content extracts the document's readable text and summarizes it.
//
// Text is collected from the body (the whole document when the parser
// produced no body), skipping script, style, and noscript subtrees.
// The returned text is whitespace-normalized and is also handed back so
// the engine can feed it to the readability scorer without a second
// pass over the tree.
//
// ContentStats.ReadabilityScore is left zero here; the engine fills it
// in from the analyzer so that extractors stay independent of analyzers.
func Content(tree *dom.Tree) (model.ContentStats, string) {
	root := tree.First("body")
	if root == nil {
		root = tree.Root()
	}

	var b strings.Builder
	collectReadableText(root, &b)
	text := strings.Join(strings.Fields(b.String()), " ")

	return model.ContentStats{
		Length:         utf8.RuneCountInString(text),
		WordCount:      len(strings.Fields(text)),
		ParagraphCount: len(tree.FindAll("p")),
	}, text
}

// collectReadableText appends text node data in document order,
// separating nodes with spaces so adjacent blocks do not fuse words.
func collectReadableText(n *dom.Node, b *strings.Builder) {
	if n.Type == dom.ElementNode {
		switch n.Tag {
		case "script", "style", "noscript":
			return
		}
	}
	if n.Type == dom.TextNode {
		b.WriteString(n.Data)
		b.WriteString(" ")
		return
	}
	for _, c := range n.Children {
		collectReadableText(c, b)
	}
}
