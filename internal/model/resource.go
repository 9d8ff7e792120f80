package model

// ImageRef is a single <img> element in document order.
//
// Width and Height are the raw attribute strings, not parsed numbers:
// markup may carry units or percentages, and the analyzers only care
// whether the attributes are present at all.
type ImageRef struct {
	// Src is the image source URL as written.
	Src string `json:"src"`

	// Alt is the alt attribute value, or "" when absent or empty.
	Alt string `json:"alt"`

	// Title is the title attribute value.
	Title string `json:"title,omitempty"`

	// Width is the raw width attribute string.
	Width string `json:"width,omitempty"`

	// Height is the raw height attribute string.
	Height string `json:"height,omitempty"`

	// Loading is the loading hint (lazy, eager), if any.
	Loading string `json:"loading,omitempty"`

	// Srcset is the srcset attribute value.
	Srcset string `json:"srcset,omitempty"`

	// Sizes is the sizes attribute value.
	Sizes string `json:"sizes,omitempty"`

	// HasAlt is true when the alt attribute is present and non-empty
	// after trimming.
	HasAlt bool `json:"has_alt"`

	// IsDecorative is true when the alt attribute is present and is
	// exactly the empty string. This is distinct from an absent alt:
	// alt="" deliberately marks an image as decorative for assistive
	// technology, so it is excluded from missing-alt accessibility
	// issues.
	IsDecorative bool `json:"is_decorative"`
}

// LinkRef is a single anchor element in document order.
type LinkRef struct {
	// Href is the link target as written.
	Href string `json:"href"`

	// Text is the anchor's visible text.
	Text string `json:"text"`

	// Title is the title attribute value.
	Title string `json:"title,omitempty"`

	// Target is the target attribute value.
	Target string `json:"target,omitempty"`

	// Rel is the rel attribute value.
	Rel string `json:"rel,omitempty"`

	// IsExternal is true when the href carries a scheme and its host
	// differs from the configured current host. With no current host
	// configured, every absolute link with a host counts as external.
	IsExternal bool `json:"is_external"`

	// IsEmpty is true when the trimmed anchor text is empty.
	IsEmpty bool `json:"is_empty"`

	// HasTitle is true when a non-empty title attribute is present.
	HasTitle bool `json:"has_title"`
}

// ScriptRef is a single <script> element in document order.
type ScriptRef struct {
	// Src is the external source URL, or "" for inline scripts.
	Src string `json:"src,omitempty"`

	// Type is the type attribute value.
	Type string `json:"type,omitempty"`

	// Inline is true when the script has no src attribute.
	Inline bool `json:"inline"`

	// Async is true when the async attribute is present.
	Async bool `json:"async"`

	// Defer is true when the defer attribute is present.
	Defer bool `json:"defer"`

	// ContentLength is the inline script body length in bytes.
	// Zero for external scripts.
	ContentLength int `json:"content_length,omitempty"`
}

// StyleRef is a stylesheet: either a <link rel="stylesheet"> or an
// inline <style> element, in document order.
type StyleRef struct {
	// Href is the external stylesheet URL, or "" for inline styles.
	Href string `json:"href,omitempty"`

	// Inline is true for <style> elements.
	Inline bool `json:"inline"`

	// Media is the media attribute value.
	Media string `json:"media,omitempty"`

	// ContentLength is the inline style body length in bytes.
	// Zero for external stylesheets.
	ContentLength int `json:"content_length,omitempty"`
}
