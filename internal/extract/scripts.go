package extract

import (
	"strings"

	"github.com/nao1215/pagescan/internal/dom"
	"github.com/nao1215/pagescan/internal/model"
)

// Scripts extracts every <script> element in document order.
func Scripts(tree *dom.Tree) []model.ScriptRef {
	nodes := tree.FindAll("script")

	scripts := make([]model.ScriptRef, 0, len(nodes))
	for _, n := range nodes {
		src, hasSrc := n.Attr("src")
		ref := model.ScriptRef{
			Src:    src,
			Type:   n.AttrValue("type"),
			Inline: !hasSrc,
			Async:  n.HasAttr("async"),
			Defer:  n.HasAttr("defer"),
		}
		if ref.Inline {
			ref.ContentLength = len(rawContent(n))
		}
		scripts = append(scripts, ref)
	}
	return scripts
}

// Styles extracts every stylesheet in document order: external
// <link rel="stylesheet"> references and inline <style> elements.
func Styles(tree *dom.Tree) []model.StyleRef {
	nodes := tree.FindFunc(func(n *dom.Node) bool {
		if n.Tag == "style" {
			return true
		}
		return n.Tag == "link" &&
			strings.Contains(strings.ToLower(n.AttrValue("rel")), "stylesheet")
	})

	styles := make([]model.StyleRef, 0, len(nodes))
	for _, n := range nodes {
		ref := model.StyleRef{
			Media:  n.AttrValue("media"),
			Inline: n.Tag == "style",
		}
		if ref.Inline {
			ref.ContentLength = len(rawContent(n))
		} else {
			ref.Href = n.AttrValue("href")
		}
		styles = append(styles, ref)
	}
	return styles
}
