package convert

import (
	"bytes"
	"fmt"
	"html"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmparser "github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// MarkdownConverter renders Markdown sources with goldmark. Headings
// get generated id attributes so they are addressable from the table
// of contents. A title in the front matter becomes a leading h1 block,
// which makes it the page title.
type MarkdownConverter struct{}

type markdownMeta struct {
	Title string `yaml:"title" toml:"title"`
}

func (c *MarkdownConverter) Convert(data []byte) (string, error) {
	var meta markdownMeta
	body, err := frontmatter.Parse(bytes.NewReader(data), &meta)
	if err != nil {
		return "", fmt.Errorf("parse front matter: %w", err)
	}

	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(gmparser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
	)

	var buf bytes.Buffer
	if meta.Title != "" {
		fmt.Fprintf(&buf, "<h1>%s</h1>\n", html.EscapeString(meta.Title))
	}
	if err := md.Convert(body, &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}
