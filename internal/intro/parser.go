package intro

import (
	"strings"

	"golang.org/x/net/html"
)

// captureTarget records where heading text currently flows.
type captureTarget int

const (
	captureNone captureTarget = iota
	captureTitle
	captureSection
	captureSubheading
)

// ParseOutline scans markup in a single streaming pass and collects the
// page title plus the h2/h3 table of contents. Heading text is whatever
// text the tokenizer yields until the heading closes, so markup nested
// inside a heading contributes its text but is otherwise invisible.
//
// The title is built from h1 text, and only until the first h2 or h3
// opens; h1 blocks after that point are ignored. Several h1 blocks
// before the first section concatenate into one title.
//
// Malformed HTML never fails the scan; the tokenizer recovers and the
// pass continues. The only rejected input is an h3 that appears before
// any h2, which returns an OrphanSubheadingError.
func ParseOutline(markup string) (*Outline, error) {
	var (
		title     strings.Builder
		titleSet  bool
		titleDone bool
		toc       = TOC{}
		capture   = captureNone
	)

	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			// End of input; the tokenizer has no other failure mode
			// for an in-memory reader.
			out := &Outline{TOC: toc}
			if titleSet {
				s := title.String()
				out.Title = &s
			}
			return out, nil

		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			switch tok.Data {
			case "h1":
				if !titleDone {
					capture = captureTitle
				}
			case "h2":
				titleDone = true
				toc = append(toc, Section{
					Anchor:      attrVal(tok, "id"),
					Subheadings: []Heading{},
				})
				capture = captureSection
			case "h3":
				titleDone = true
				if len(toc) == 0 {
					return nil, &OrphanSubheadingError{Anchor: attrVal(tok, "id")}
				}
				last := &toc[len(toc)-1]
				last.Subheadings = append(last.Subheadings, Heading{Anchor: attrVal(tok, "id")})
				capture = captureSubheading
			}
			// A self-closing heading opens and closes in one token.
			if tt == html.SelfClosingTagToken && isHeadingTag(tok.Data) {
				capture = captureNone
			}

		case html.EndTagToken:
			if tok := z.Token(); isHeadingTag(tok.Data) {
				capture = captureNone
			}

		case html.TextToken:
			text := z.Token().Data
			switch capture {
			case captureTitle:
				title.WriteString(text)
				titleSet = true
			case captureSection:
				toc[len(toc)-1].Title += text
			case captureSubheading:
				subs := toc[len(toc)-1].Subheadings
				subs[len(subs)-1].Title += text
			}
		}
	}
}

func attrVal(tok html.Token, name string) string {
	for _, a := range tok.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func isHeadingTag(name string) bool {
	return name == "h1" || name == "h2" || name == "h3"
}
