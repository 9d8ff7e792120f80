package model

// Heading is a single h1..h6 element in document order.
type Heading struct {
	// Level is the heading level, 1 through 6.
	Level int `json:"level"`

	// Text is the trimmed heading text.
	Text string `json:"text"`

	// ID is the id attribute, or "" when absent.
	ID string `json:"id,omitempty"`

	// Classes holds the class attribute split on whitespace.
	Classes []string `json:"classes,omitempty"`
}

// Navigation summarizes the document's <nav> elements.
type Navigation struct {
	// Present is true when at least one <nav> element exists.
	Present bool `json:"present"`

	// Count is the number of <nav> elements.
	Count int `json:"count"`

	// LinkCount is the number of anchors inside nav elements.
	LinkCount int `json:"link_count"`
}

// Section is a sectioning element (section, article, or main).
type Section struct {
	// Tag is the element's tag name.
	Tag string `json:"tag"`

	// ID is the id attribute, or "" when absent.
	ID string `json:"id,omitempty"`

	// HasHeading is true when the element contains at least one
	// heading descendant.
	HasHeading bool `json:"has_heading"`
}

// Footer summarizes the document's first <footer> element.
//
// The contact and copyright signals come from case-insensitive regular
// expression matches against the footer's full text. They are heuristic
// and locale-sensitive: approximate hints, not authoritative findings.
type Footer struct {
	// Present is true when a <footer> element exists.
	Present bool `json:"present"`

	// LinkCount is the number of anchors inside the footer.
	LinkCount int `json:"link_count"`

	// HasContactInfo is true when the footer text mentions
	// contact-related terms.
	HasContactInfo bool `json:"has_contact_info"`

	// HasCopyright is true when the footer text contains a
	// copyright marker.
	HasCopyright bool `json:"has_copyright"`
}

// HierarchyReport is the result of heading-hierarchy analysis.
type HierarchyReport struct {
	// TotalHeadings is the number of headings in the document.
	TotalHeadings int `json:"total_headings"`

	// H1Count is the number of H1 elements.
	H1Count int `json:"h1_count"`

	// Issues lists hierarchy problems in document order.
	Issues []string `json:"issues"`

	// IsValid is true iff Issues is empty.
	IsValid bool `json:"is_valid"`
}

// Structure groups the document's structural findings.
type Structure struct {
	// Headings lists every heading in document order.
	Headings []Heading `json:"headings"`

	// Navigation summarizes nav elements.
	Navigation Navigation `json:"navigation"`

	// Sections lists sectioning elements in document order.
	Sections []Section `json:"sections"`

	// Footer summarizes the footer element.
	Footer Footer `json:"footer"`

	// Hierarchy is the heading-hierarchy analysis result.
	Hierarchy HierarchyReport `json:"hierarchy"`
}
