package convert

import (
	"bufio"
	"bytes"
	"fmt"
	"html"
	"strings"
)

// TextConverter turns plain text into paragraph markup. Blank lines
// separate paragraphs.
type TextConverter struct{}

func (c *TextConverter) Convert(data []byte) (string, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var out strings.Builder
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			fmt.Fprintf(&out, "<p>%s</p>\n", html.EscapeString(current.String()))
			current.Reset()
		}
	}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			flush()
		} else {
			if current.Len() > 0 {
				current.WriteString("\n")
			}
			current.WriteString(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	flush()

	return out.String(), nil
}
