package convert

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// PDFConverter renders PDF sources as one paragraph block per page.
// PDFs carry no heading structure this service can trust, so the
// resulting intro has a body but no table of contents.
type PDFConverter struct{}

func (c *PDFConverter) Convert(data []byte) (string, error) {
	reader, err := pdflib.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var out strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		fmt.Fprintf(&out, "<p>%s</p>\n", html.EscapeString(text))
	}
	return out.String(), nil
}
