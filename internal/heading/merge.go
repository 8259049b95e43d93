package heading

import (
	"strings"
	"unicode/utf8"

	"github.com/MatLN8/pdf-restruct/internal/span"
)

// Event is the classification of one visual line: either a heading
// candidate or body content. Produced once per line and consumed by
// the validation and hierarchy stages.
type Event struct {
	Candidate *Candidate // nil for content
	Text      string     // content text, or the raw heading line for demotion
	Page      int
}

// minTitleRunes is the threshold below which a matched heading is
// considered fragmented and the next line is pulled in.
const minTitleRunes = 2

// Classify walks the sequence of visual lines and emits one Event per
// logical line, merging fragmented headings on the way.
//
// When a line opens with a span matching the heading pattern, the
// remaining spans of that line always join the title (PDF layout
// engines routinely split number and title into separate spans). When
// the title is still shorter than two runes, the following line on the
// same page is consumed as well. The look-ahead is a single hop;
// headings split across three or more lines are not reassembled.
func (m *Matcher) Classify(lines [][]span.Span) []Event {
	var events []Event
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if len(line) == 0 {
			continue
		}
		first := line[0]
		lineText := span.LineText(line)

		cand, ok := m.matchSpan(first)
		if !ok {
			events = append(events, Event{Text: lineText, Page: first.Page})
			continue
		}

		title := cand.Title
		for _, sp := range line[1:] {
			title = joinFragment(title, sp.Text)
		}
		raw := lineText

		if utf8.RuneCountInString(strings.TrimSpace(title)) < minTitleRunes &&
			i+1 < len(lines) && len(lines[i+1]) > 0 && lines[i+1][0].Page == first.Page {
			next := span.LineText(lines[i+1])
			merged := joinFragment(title, next)
			if collapseSpace(merged) != "" {
				title = merged
				raw = joinFragment(raw, next)
				i++ // consumed; not re-classified
			}
		}

		title = collapseSpace(title)
		if title == "" {
			// A bare number with no title is page-number or body
			// noise, not a heading.
			events = append(events, Event{Text: lineText, Page: first.Page})
			continue
		}
		cand.Title = title
		events = append(events, Event{Candidate: &cand, Text: raw, Page: first.Page})
	}
	return events
}

func joinFragment(a, b string) string {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	switch {
	case a == "":
		return b
	case b == "":
		return a
	}
	return a + " " + b
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
