package provider

import (
	"bufio"
	"io"
	"strings"

	"github.com/MatLN8/pdf-restruct/internal/span"
)

// TextProvider handles plain text files. Form feeds separate pages;
// every line is a body-sized span, so heading detection rests entirely
// on the numeric pattern.
type TextProvider struct{}

func (p *TextProvider) Parse(r io.Reader, filename string) (*span.Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	pages := [][]synthLine{nil}
	for scanner.Scan() {
		line := scanner.Text()
		for i, part := range strings.Split(line, "\f") {
			if i > 0 {
				pages = append(pages, nil)
			}
			if strings.TrimSpace(part) == "" {
				continue
			}
			last := len(pages) - 1
			pages[last] = append(pages[last], synthLine{text: part, fontSize: bodyFontSize})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return synthDocument(pages), nil
}
