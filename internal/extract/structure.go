package extract

import (
	"regexp"
	"strings"

	"github.com/nao1215/pagescan/internal/dom"
	"github.com/nao1215/pagescan/internal/model"
)

// headingLevel returns the heading level for h1..h6 tags, or 0.
func headingLevel(tag string) int {
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0')
	}
	return 0
}

// Headings extracts every h1..h6 element in document order.
func Headings(tree *dom.Tree) []model.Heading {
	nodes := tree.FindFunc(func(n *dom.Node) bool {
		return headingLevel(n.Tag) > 0
	})

	headings := make([]model.Heading, 0, len(nodes))
	for _, n := range nodes {
		h := model.Heading{
			Level: headingLevel(n.Tag),
			Text:  n.Text(),
			ID:    n.AttrValue("id"),
		}
		if class := n.AttrValue("class"); class != "" {
			h.Classes = strings.Fields(class)
		}
		headings = append(headings, h)
	}
	return headings
}

// Navigation summarizes the document's <nav> elements.
func Navigation(tree *dom.Tree) model.Navigation {
	navs := tree.FindAll("nav")
	nav := model.Navigation{
		Present: len(navs) > 0,
		Count:   len(navs),
	}
	for _, n := range navs {
		nav.LinkCount += countDescendants(n, "a")
	}
	return nav
}

// Sections extracts sectioning elements (section, article, main) in
// document order, flagging whether each contains a heading descendant.
func Sections(tree *dom.Tree) []model.Section {
	nodes := tree.FindFunc(func(n *dom.Node) bool {
		return n.Tag == "section" || n.Tag == "article" || n.Tag == "main"
	})

	sections := make([]model.Section, 0, len(nodes))
	for _, n := range nodes {
		sections = append(sections, model.Section{
			Tag:        n.Tag,
			ID:         n.AttrValue("id"),
			HasHeading: hasHeadingDescendant(n),
		})
	}
	return sections
}

// Footer content heuristics. Both patterns are case-insensitive matches
// against the footer's full text. They are approximate: locale-sensitive
// phrasing or unusual markup will slip past them, and that is accepted.
var (
	contactPattern   = regexp.MustCompile(`(?i)contact|e-?mail|phone`)
	copyrightPattern = regexp.MustCompile(`(?i)©|&copy;|copyright|\(c\)\s*\d{4}`)
)

// FooterInfo summarizes the document's first <footer> element.
func FooterInfo(tree *dom.Tree) model.Footer {
	node := tree.First("footer")
	if node == nil {
		return model.Footer{}
	}

	text := node.Text()
	return model.Footer{
		Present:        true,
		LinkCount:      countDescendants(node, "a"),
		HasContactInfo: contactPattern.MatchString(text),
		HasCopyright:   copyrightPattern.MatchString(text),
	}
}

// hasHeadingDescendant reports whether any descendant is a heading.
func hasHeadingDescendant(n *dom.Node) bool {
	found := false
	n.Walk(func(d *dom.Node) {
		if d != n && headingLevel(d.Tag) > 0 {
			found = true
		}
	})
	return found
}

// countDescendants counts descendant elements with the given tag.
func countDescendants(n *dom.Node, tag string) int {
	count := 0
	n.Walk(func(d *dom.Node) {
		if d != n && d.Type == dom.ElementNode && d.Tag == tag {
			count++
		}
	})
	return count
}
