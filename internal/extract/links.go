package extract

import (
	"net/url"
	"strings"

	"github.com/nao1215/pagescan/internal/dom"
	"github.com/nao1215/pagescan/internal/model"
)

// Links extracts every anchor element in document order.
//
// currentHost is the host the document is considered to live on. A link
// counts as external when its href carries a scheme and resolves to a
// different host. With currentHost empty, every absolute link with a
// host is classified external; headless analysis has no browser
// location to compare against, so callers that care should configure
// the host explicitly.
func Links(tree *dom.Tree, currentHost string) []model.LinkRef {
	nodes := tree.FindAll("a")

	links := make([]model.LinkRef, 0, len(nodes))
	for _, n := range nodes {
		href := n.AttrValue("href")
		text := n.Text()
		title := n.AttrValue("title")

		links = append(links, model.LinkRef{
			Href:       href,
			Text:       text,
			Title:      title,
			Target:     n.AttrValue("target"),
			Rel:        n.AttrValue("rel"),
			IsExternal: isExternal(href, currentHost),
			IsEmpty:    text == "",
			HasTitle:   title != "",
		})
	}
	return links
}

// isExternal reports whether href points at a different host.
// Scheme-only targets without a host (mailto:, tel:, javascript:)
// are never external.
func isExternal(href, currentHost string) bool {
	u, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return false
	}
	if u.Scheme == "" || u.Host == "" {
		return false
	}
	if currentHost == "" {
		return true
	}
	return !strings.EqualFold(u.Hostname(), currentHost)
}
