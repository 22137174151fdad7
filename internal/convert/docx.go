package convert

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/fumiama/go-docx"
)

// DOCXConverter renders .docx sources as heading and paragraph markup.
// Paragraphs styled Heading1 through Heading6 become the matching
// heading tags; everything else becomes a paragraph.
type DOCXConverter struct{}

func (c *DOCXConverter) Convert(data []byte) (string, error) {
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parse docx: %w", err)
	}

	var out strings.Builder
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		text := paragraphText(para)
		if text == "" {
			continue
		}
		if level := headingLevel(para); level > 0 {
			fmt.Fprintf(&out, "<h%d>%s</h%d>\n", level, html.EscapeString(text), level)
		} else {
			fmt.Fprintf(&out, "<p>%s</p>\n", html.EscapeString(text))
		}
	}
	return out.String(), nil
}

func headingLevel(para *docx.Paragraph) int {
	if para.Properties == nil || para.Properties.Style == nil {
		return 0
	}
	style := para.Properties.Style.Val
	for level := 1; level <= 6; level++ {
		if strings.EqualFold(style, fmt.Sprintf("Heading%d", level)) ||
			strings.EqualFold(style, fmt.Sprintf("heading %d", level)) {
			return level
		}
	}
	return 0
}

func paragraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
