// Package intro turns raw intro page markup into render-ready
// artifacts: a compiled body template, a table of contents and a page
// title, resolved and cached by logical key.
package intro

// Heading is one third-level entry in a table of contents.
type Heading struct {
	Anchor string `json:"anchor"` // id attribute of the heading, "" if absent
	Title  string `json:"title"`
}

// Section is one second-level entry together with its subheadings.
type Section struct {
	Anchor      string    `json:"anchor"`
	Title       string    `json:"title"`
	Subheadings []Heading `json:"subheadings"`
}

// TOC is the table of contents of one intro page, in document order.
type TOC []Section

// Outline is the result of scanning a page for headings.
type Outline struct {
	Title *string // nil when the page never produced title text
	TOC   TOC
}
