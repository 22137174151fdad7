package intro

import (
	"strings"

	"golang.org/x/net/html"
)

// StripTitleBlock removes the first h1 block from markup: everything
// from the first h1 open (or self-closing) tag through the end of the
// first h1 close tag after it. Later h1 blocks stay in place. Markup
// without a complete block comes back unchanged.
//
// The scan tokenizes rather than pattern-matches, so quoted '>'
// characters inside attributes cannot cut the block short.
func StripTitleBlock(markup string) string {
	z := html.NewTokenizer(strings.NewReader(markup))
	off := 0
	start := -1
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			return markup
		}
		n := len(z.Raw())
		switch tt {
		case html.StartTagToken, html.SelfClosingTagToken:
			if name, _ := z.TagName(); start < 0 && string(name) == "h1" {
				start = off
			}
		case html.EndTagToken:
			if name, _ := z.TagName(); start >= 0 && string(name) == "h1" {
				return markup[:start] + markup[off+n:]
			}
		}
		off += n
	}
}
