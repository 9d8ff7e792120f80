package model

// Metadata holds document metadata extracted from the head section.
//
// All fields are copies of attribute or text values; empty strings mean
// the corresponding element or attribute was absent.
type Metadata struct {
	// Title is the trimmed text of the first <title> element.
	Title string `json:"title"`

	// Description is the content of <meta name="description">.
	Description string `json:"description"`

	// Keywords is the content of <meta name="keywords">.
	Keywords string `json:"keywords"`

	// Author is the content of <meta name="author">.
	Author string `json:"author"`

	// Viewport is the content of <meta name="viewport">.
	Viewport string `json:"viewport"`

	// Charset is the document character set, from <meta charset> or the
	// charset parameter of an http-equiv Content-Type declaration.
	Charset string `json:"charset"`

	// Robots is the content of <meta name="robots">.
	Robots string `json:"robots"`

	// Canonical is the href of <link rel="canonical">.
	Canonical string `json:"canonical"`

	// Lang is the lang attribute of the root <html> element.
	Lang string `json:"lang"`

	// OpenGraph maps Open Graph keys to their content values.
	// The "og:" prefix is stripped from the key; entries with empty
	// content are dropped.
	OpenGraph map[string]string `json:"open_graph"`

	// TwitterCard maps Twitter card keys to their content values.
	// The "twitter:" prefix is stripped from the key; entries with
	// empty content are dropped.
	TwitterCard map[string]string `json:"twitter_card"`

	// StructuredData holds each successfully parsed JSON-LD payload in
	// document order. Malformed payloads are skipped, not fatal.
	StructuredData []any `json:"structured_data,omitempty"`

	// StructuredDataErrors counts JSON-LD payloads that failed to parse.
	// The engine folds this into the process-wide error counter.
	StructuredDataErrors int `json:"-"`
}

// ContentStats summarizes the document's textual content.
type ContentStats struct {
	// Length is the total character count of the extracted text.
	Length int `json:"length"`

	// WordCount is the number of whitespace-delimited words.
	WordCount int `json:"word_count"`

	// ParagraphCount is the number of <p> elements.
	ParagraphCount int `json:"paragraph_count"`

	// ReadabilityScore is the computed readability score in [0, 100].
	ReadabilityScore int `json:"readability_score"`
}
