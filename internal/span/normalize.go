package span

import (
	"sort"
	"strings"
)

// Filter controls which spans survive normalization. Page bounds are
// 1-based inclusive and must be validated against the document before
// calling Normalize. Zero heights disable the header/footer bands.
type Filter struct {
	StartPage        int
	EndPage          int
	HeaderHeight     float64
	FooterHeight     float64
	RemoveIfContains []string
}

// Normalize flattens the document's pages into a single span sequence
// in reading order (page, then top to bottom, then left to right),
// dropping hyperlink spans, spans inside the header/footer bands,
// spans matching any of the removal substrings, and blank spans.
func Normalize(doc *Document, f Filter) []Span {
	var out []Span
	for _, page := range doc.Pages {
		if f.StartPage > 0 && page.Number < f.StartPage {
			continue
		}
		if f.EndPage > 0 && page.Number > f.EndPage {
			continue
		}
		for _, sp := range page.Spans {
			if sp.IsLink {
				// Link text is frequently numeric and would
				// masquerade as a heading number.
				continue
			}
			if strings.TrimSpace(sp.Text) == "" {
				continue
			}
			if f.HeaderHeight > 0 && sp.BBox.Y1 > page.Height-f.HeaderHeight {
				continue
			}
			if f.FooterHeight > 0 && sp.BBox.Y0 < f.FooterHeight {
				continue
			}
			if containsAny(sp.Text, f.RemoveIfContains) {
				continue
			}
			out = append(out, sp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Page != out[j].Page {
			return out[i].Page < out[j].Page
		}
		if out[i].BBox.Y1 != out[j].BBox.Y1 {
			return out[i].BBox.Y1 > out[j].BBox.Y1
		}
		return out[i].BBox.X0 < out[j].BBox.X0
	})
	return out
}

// GroupLines splits an ordered span sequence into visual lines: runs of
// spans on the same page whose vertical bands overlap.
func GroupLines(spans []Span) [][]Span {
	var lines [][]Span
	var current []Span
	for _, sp := range spans {
		if len(current) > 0 {
			anchor := current[0]
			sameLine := sp.Page == anchor.Page &&
				sp.BBox.Y0 < anchor.BBox.Y1 && anchor.BBox.Y0 < sp.BBox.Y1
			if !sameLine {
				lines = append(lines, current)
				current = nil
			}
		}
		current = append(current, sp)
	}
	if len(current) > 0 {
		lines = append(lines, current)
	}
	return lines
}

// LineText joins the span texts of one line with single spaces.
func LineText(line []Span) string {
	parts := make([]string, 0, len(line))
	for _, sp := range line {
		if t := strings.TrimSpace(sp.Text); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if n != "" && strings.Contains(text, n) {
			return true
		}
	}
	return false
}
