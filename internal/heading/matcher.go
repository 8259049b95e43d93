// Package heading classifies text spans as section headings or body
// content using a configurable numeric heading pattern.
package heading

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/MatLN8/pdf-restruct/internal/span"
)

// DefaultPattern recognizes dot-separated positive integers, an
// optional trailing period, and the heading title: "4.2.1 Title Text".
const DefaultPattern = `^\s*(\d+(?:\.\d+)*)\.?(?:\s+(.*))?$`

// Candidate is a provisional section heading awaiting validation.
type Candidate struct {
	Number []int
	Title  string
	Page   int
}

// Level is the hierarchy depth implied by the designator.
func (c Candidate) Level() int { return len(c.Number) }

// NumberString returns the dotted form of the designator.
func (c Candidate) NumberString() string { return FormatNumber(c.Number) }

// Matcher applies the heading pattern to span text. Capture group 1
// must hold the dotted number; group 2, when present, holds the title.
type Matcher struct {
	re          *regexp.Regexp
	minFontSize float64
}

// NewMatcher compiles the heading pattern. A minFontSize of 0 disables
// the font-size gate.
func NewMatcher(pattern string, minFontSize float64) (*Matcher, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	if re.NumSubexp() < 1 {
		return nil, fmt.Errorf("heading pattern must capture the section number in group 1")
	}
	return &Matcher{re: re, minFontSize: minFontSize}, nil
}

// matchSpan applies the pattern to a single span. The returned title
// is whatever group 2 captured, trimmed; it may be empty, in which
// case the caller must complete it via fragment merging or demote the
// span to content.
func (m *Matcher) matchSpan(sp span.Span) (Candidate, bool) {
	if m.minFontSize > 0 && sp.FontSize < m.minFontSize {
		return Candidate{}, false
	}
	groups := m.re.FindStringSubmatch(sp.Text)
	if groups == nil {
		return Candidate{}, false
	}
	nums, ok := ParseNumber(groups[1])
	if !ok {
		return Candidate{}, false
	}
	title := ""
	if len(groups) > 2 {
		title = strings.TrimSpace(groups[2])
	}
	return Candidate{Number: nums, Title: title, Page: sp.Page}, true
}
