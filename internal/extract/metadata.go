package extract

import (
	"encoding/json"
	"strings"

	"github.com/nao1215/pagescan/internal/dom"
	"github.com/nao1215/pagescan/internal/model"
)

// Metadata extracts document metadata from the head section.
//
// Open Graph and Twitter card entries have their namespace prefix
// stripped from the output key; entries with empty content are dropped.
// Each JSON-LD block is parsed independently: a malformed payload
// increments Metadata.StructuredDataErrors and is skipped, never
// aborting extraction of subsequent blocks.
func Metadata(tree *dom.Tree) model.Metadata {
	meta := model.Metadata{
		OpenGraph:   make(map[string]string),
		TwitterCard: make(map[string]string),
	}

	if title := tree.First("title"); title != nil {
		meta.Title = title.Text()
	}
	if root := tree.First("html"); root != nil {
		meta.Lang = root.AttrValue("lang")
	}
	if canonical := findCanonical(tree); canonical != nil {
		meta.Canonical = canonical.AttrValue("href")
	}

	for _, m := range tree.FindAll("meta") {
		applyMetaTag(m, &meta)
	}

	for _, s := range tree.FindAll("script") {
		if !strings.EqualFold(s.AttrValue("type"), "application/ld+json") {
			continue
		}
		var payload any
		if err := json.Unmarshal([]byte(rawContent(s)), &payload); err != nil {
			meta.StructuredDataErrors++
			continue
		}
		meta.StructuredData = append(meta.StructuredData, payload)
	}

	return meta
}

// applyMetaTag folds one <meta> element into the metadata record.
func applyMetaTag(m *dom.Node, meta *model.Metadata) {
	if charset := m.AttrValue("charset"); charset != "" {
		meta.Charset = charset
		return
	}
	if strings.EqualFold(m.AttrValue("http-equiv"), "content-type") {
		if cs := charsetFromContentType(m.AttrValue("content")); cs != "" {
			meta.Charset = cs
		}
		return
	}

	content := m.AttrValue("content")
	name := strings.ToLower(m.AttrValue("name"))
	property := strings.ToLower(m.AttrValue("property"))

	// Open Graph uses the property attribute; Twitter cards appear
	// under either name or property in the wild.
	if key, ok := strings.CutPrefix(property, "og:"); ok {
		if key != "" && content != "" {
			meta.OpenGraph[key] = content
		}
		return
	}
	for _, attr := range []string{name, property} {
		if key, ok := strings.CutPrefix(attr, "twitter:"); ok {
			if key != "" && content != "" {
				meta.TwitterCard[key] = content
			}
			return
		}
	}

	switch name {
	case "description":
		meta.Description = content
	case "keywords":
		meta.Keywords = content
	case "author":
		meta.Author = content
	case "viewport":
		meta.Viewport = content
	case "robots":
		meta.Robots = content
	}
}

// findCanonical returns the first <link rel="canonical"> element.
func findCanonical(tree *dom.Tree) *dom.Node {
	links := tree.FindFunc(func(n *dom.Node) bool {
		return n.Tag == "link" && strings.EqualFold(n.AttrValue("rel"), "canonical")
	})
	if len(links) == 0 {
		return nil
	}
	return links[0]
}

// charsetFromContentType pulls the charset parameter out of a
// Content-Type value such as "text/html; charset=utf-8".
func charsetFromContentType(contentType string) string {
	for part := range strings.SplitSeq(contentType, ";") {
		part = strings.TrimSpace(part)
		if cs, ok := strings.CutPrefix(strings.ToLower(part), "charset="); ok {
			return strings.Trim(cs, `"'`)
		}
	}
	return ""
}

// rawContent concatenates the element's direct text children without
// re-normalizing. Used for script and style bodies where the content is
// data, not prose.
func rawContent(n *dom.Node) string {
	var b strings.Builder
	for _, c := range n.Children {
		if c.Type == dom.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}
