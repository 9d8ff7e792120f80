package extract

import (
	"strings"

	"github.com/nao1215/pagescan/internal/dom"
	"github.com/nao1215/pagescan/internal/model"
)

// Images extracts every <img> element in document order.
//
// Width and Height stay raw strings: the analyzers only check presence,
// and values like "100%" would not survive numeric parsing anyway.
//
// The alt attribute carries a three-way distinction:
//   - absent: the image is missing alternative text (HasAlt false)
//   - exactly "": the image is explicitly decorative (IsDecorative true)
//   - non-blank: the image has alternative text (HasAlt true)
func Images(tree *dom.Tree) []model.ImageRef {
	nodes := tree.FindAll("img")

	images := make([]model.ImageRef, 0, len(nodes))
	for _, n := range nodes {
		alt, hasAltAttr := n.Attr("alt")
		images = append(images, model.ImageRef{
			Src:          n.AttrValue("src"),
			Alt:          alt,
			Title:        n.AttrValue("title"),
			Width:        n.AttrValue("width"),
			Height:       n.AttrValue("height"),
			Loading:      n.AttrValue("loading"),
			Srcset:       n.AttrValue("srcset"),
			Sizes:        n.AttrValue("sizes"),
			HasAlt:       hasAltAttr && strings.TrimSpace(alt) != "",
			IsDecorative: hasAltAttr && alt == "",
		})
	}
	return images
}
