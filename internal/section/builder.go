package section

import (
	"strings"

	"github.com/MatLN8/pdf-restruct/internal/heading"
)

// Builder accumulates validated headings and interleaved content into
// the ordered flat section list. Content arriving before the first
// heading is discarded; the rest attaches, newline-joined, to the most
// recently opened section.
type Builder struct {
	sections []*Section
	content  []string
}

// NewBuilder returns an empty builder for one extraction run.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddHeading closes the open section and opens a new one.
func (b *Builder) AddHeading(c heading.Candidate) {
	b.flush()
	b.sections = append(b.sections, &Section{
		Title:  c.Title,
		Number: c.NumberString(),
		Level:  c.Level(),
		Page:   c.Page,
	})
}

// AddContent appends one line of body text to the open section.
func (b *Builder) AddContent(text string) {
	if len(b.sections) == 0 {
		return
	}
	b.content = append(b.content, text)
}

// Sections finalizes the open section and returns the flat list.
func (b *Builder) Sections() []*Section {
	b.flush()
	return b.sections
}

func (b *Builder) flush() {
	if len(b.sections) > 0 && len(b.content) > 0 {
		b.sections[len(b.sections)-1].Content = strings.TrimSpace(strings.Join(b.content, "\n"))
	}
	b.content = b.content[:0]
}
