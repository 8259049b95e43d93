// Package toc cross-checks heading candidates against the document's
// native outline.
package toc

import (
	"strings"

	"github.com/MatLN8/pdf-restruct/internal/heading"
	"github.com/MatLN8/pdf-restruct/internal/span"
)

// Validator filters heading candidates by plausibility against the
// bookmark list. It is advisory only: with no bookmarks every
// candidate passes, and a rejected candidate is demoted to content by
// the caller rather than dropped. Bookmarks never generate sections,
// since outline entries carry no body text.
type Validator struct {
	bookmarks []span.Bookmark
	tolerance int
}

// NewValidator builds a validator with the given page tolerance.
// Outline page numbers are typically exact, so 0 is the usual value.
func NewValidator(bookmarks []span.Bookmark, tolerance int) *Validator {
	if tolerance < 0 {
		tolerance = 0
	}
	return &Validator{bookmarks: bookmarks, tolerance: tolerance}
}

// Enabled reports whether an outline is present at all.
func (v *Validator) Enabled() bool { return len(v.bookmarks) > 0 }

// Validate accepts a candidate when some bookmark title contains its
// dotted number and, if that bookmark resolves to a page, the pages
// agree within the tolerance. Fail open when no outline exists.
func (v *Validator) Validate(c heading.Candidate) bool {
	if len(v.bookmarks) == 0 {
		return true
	}
	num := c.NumberString()
	for _, bm := range v.bookmarks {
		if !strings.Contains(bm.Title, num) {
			continue
		}
		if bm.Page > 0 && abs(bm.Page-c.Page) > v.tolerance {
			continue
		}
		return true
	}
	return false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
