// Package convert turns supported source files into intro HTML markup.
package convert

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Converter renders one source format as HTML markup.
type Converter interface {
	Convert(data []byte) (string, error)
}

// SupportedExtensions lists file extensions this service can serve as
// intro sources.
var SupportedExtensions = map[string]bool{
	".html":     true,
	".htm":      true,
	".md":       true,
	".markdown": true,
	".txt":      true,
	".docx":     true,
	".pdf":      true,
}

// ForPath returns the appropriate converter for a file path.
func ForPath(path string) (Converter, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".html", ".htm":
		return &HTMLConverter{}, nil
	case ".md", ".markdown":
		return &MarkdownConverter{}, nil
	case ".txt":
		return &TextConverter{}, nil
	case ".docx":
		return &DOCXConverter{}, nil
	case ".pdf":
		return &PDFConverter{}, nil
	default:
		return nil, fmt.Errorf("unsupported source extension: %s", ext)
	}
}

// IsSupported checks if a file extension is supported.
func IsSupported(path string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(path))]
}
