// Package restruct wires the extraction pipeline: provider spans in,
// ordered validated sections out. One call is one independent run; all
// state is local, so concurrent runs over different documents are safe.
package restruct

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/MatLN8/pdf-restruct/internal/heading"
	"github.com/MatLN8/pdf-restruct/internal/provider"
	"github.com/MatLN8/pdf-restruct/internal/section"
	"github.com/MatLN8/pdf-restruct/internal/span"
	"github.com/MatLN8/pdf-restruct/internal/toc"
)

// Options configures one extraction run. The zero value of each field
// means "disabled", matching the documented CLI defaults.
type Options struct {
	HeadingRegex      string   // empty = heading.DefaultPattern
	MinFontSize       float64  // 0 = no font gate
	RemoveIfContains  []string // case-sensitive substrings, OR semantics
	HeaderHeight      float64  // points from the page top, 0 = disabled
	FooterHeight      float64  // points from the page bottom, 0 = disabled
	StartPage         int      // 1-based inclusive, 0 = first page
	EndPage           int      // 1-based inclusive, 0 = last page
	StartHeaderNumber string   // discard everything before this designator
	PageTolerance     int      // outline page slack for TOC validation
	StrictSequence    bool     // demote headings that break numeric continuity
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{HeadingRegex: heading.DefaultPattern}
}

// ExtractFile loads a document from disk and extracts its flat section
// list. The file handle is released on every exit path.
func ExtractFile(path string, opts Options) ([]*section.Section, error) {
	p, err := provider.ForFile(path)
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	defer f.Close()

	doc, err := p.Parse(f, filepath.Base(path))
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	return ExtractDocument(doc, opts)
}

// ExtractDocument runs the pipeline over an already-loaded document:
// normalize spans, classify lines, validate candidates against the
// outline, and assemble the flat section list in reading order.
func ExtractDocument(doc *span.Document, opts Options) ([]*section.Section, error) {
	matcher, err := heading.NewMatcher(opts.HeadingRegex, opts.MinFontSize)
	if err != nil {
		return nil, &PatternError{Pattern: opts.HeadingRegex, Err: err}
	}

	var startNum []int
	if opts.StartHeaderNumber != "" {
		n, ok := heading.ParseNumber(opts.StartHeaderNumber)
		if !ok {
			return nil, &RangeError{Msg: fmt.Sprintf("start header number %q is not a dotted numeric designator", opts.StartHeaderNumber)}
		}
		startNum = n
	}

	startPage, endPage, err := resolvePageRange(doc, opts)
	if err != nil {
		return nil, err
	}

	spans := span.Normalize(doc, span.Filter{
		StartPage:        startPage,
		EndPage:          endPage,
		HeaderHeight:     opts.HeaderHeight,
		FooterHeight:     opts.FooterHeight,
		RemoveIfContains: opts.RemoveIfContains,
	})

	events := matcher.Classify(span.GroupLines(spans))
	validator := toc.NewValidator(doc.Bookmarks, opts.PageTolerance)
	builder := section.NewBuilder()

	started := startNum == nil
	var lastNum []int
	for _, ev := range events {
		if ev.Candidate == nil {
			if started {
				builder.AddContent(ev.Text)
			}
			continue
		}
		cand := *ev.Candidate
		if !started {
			if heading.CompareNumbers(cand.Number, startNum) < 0 {
				continue
			}
			started = true
		}
		if !validator.Validate(cand) {
			// Implausible candidate, probably a cross reference.
			builder.AddContent(ev.Text)
			continue
		}
		if opts.StrictSequence && !heading.Continues(lastNum, cand.Number) {
			builder.AddContent(ev.Text)
			continue
		}
		builder.AddHeading(cand)
		lastNum = cand.Number
	}

	return builder.Sections(), nil
}

// resolvePageRange applies defaults and validates the requested bounds
// against the document.
func resolvePageRange(doc *span.Document, opts Options) (int, int, error) {
	total := doc.MaxPage()
	start, end := opts.StartPage, opts.EndPage
	if start == 0 {
		start = 1
	}
	if end == 0 {
		end = total
	}
	if total == 0 {
		if opts.StartPage != 0 || opts.EndPage != 0 {
			return 0, 0, &RangeError{Msg: "document has no pages"}
		}
		return 0, 0, nil
	}
	if start < 1 || end > total {
		return 0, 0, &RangeError{Msg: fmt.Sprintf("pages %d-%d outside document bounds 1-%d", start, end, total)}
	}
	if start > end {
		return 0, 0, &RangeError{Msg: fmt.Sprintf("start page %d after end page %d", start, end)}
	}
	return start, end, nil
}
