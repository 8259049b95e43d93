package provider

import (
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/MatLN8/pdf-restruct/internal/span"
	pdflib "github.com/ledongthuc/pdf"
)

// PDFProvider extracts spans, link flags, and outline bookmarks from a
// PDF document.
type PDFProvider struct{}

func (p *PDFProvider) Parse(r io.Reader, filename string) (*span.Document, error) {
	// ledongthuc/pdf requires a ReadSeeker+size, so we write to a temp file.
	tmp, err := os.CreateTemp("", "restruct-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	f, reader, err := pdflib.Open(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	doc := &span.Document{}
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			doc.Pages = append(doc.Pages, span.Page{Number: i, Height: letterHeight})
			continue
		}
		spans := assembleSpans(page.Content().Text, i)
		markLinkSpans(spans, linkRects(page.V))
		doc.Pages = append(doc.Pages, span.Page{
			Number: i,
			Height: pageHeight(page.V),
			Spans:  spans,
		})
	}

	doc.Bookmarks = flattenOutline(reader.Outline(), 1, nil)
	return doc, nil
}

// assembleSpans groups the reader's per-glyph text elements into spans:
// one span per run of uniform font size on a visual line. A horizontal
// gap wider than a third of the font size becomes a word space; a new
// baseline or font size starts a new span.
func assembleSpans(texts []pdflib.Text, pageNum int) []span.Span {
	sort.SliceStable(texts, func(i, j int) bool {
		if texts[i].Y != texts[j].Y {
			return texts[i].Y > texts[j].Y
		}
		return texts[i].X < texts[j].X
	})

	var spans []span.Span
	var buf strings.Builder
	var cur span.Span
	var endX float64

	flush := func() {
		if buf.Len() == 0 {
			return
		}
		cur.Text = buf.String()
		cur.BBox.X1 = endX
		spans = append(spans, cur)
		buf.Reset()
	}

	for _, t := range texts {
		if t.S == "" {
			continue
		}
		sameRun := buf.Len() > 0 &&
			math.Abs(t.Y-cur.BBox.Y0) < 0.2 &&
			t.FontSize == cur.FontSize &&
			t.X >= endX-1.0
		if !sameRun {
			flush()
			cur = span.Span{
				FontSize: t.FontSize,
				Page:     pageNum,
				BBox: span.BBox{
					X0: t.X,
					Y0: t.Y,
					Y1: t.Y + t.FontSize,
				},
			}
			endX = t.X
		}
		if gap := t.X - endX; gap > 0.3*t.FontSize && buf.Len() > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(t.S)
		endX = t.X + t.W
	}
	flush()
	return spans
}

// markLinkSpans flags spans intersecting any link annotation rect.
func markLinkSpans(spans []span.Span, links []span.BBox) {
	if len(links) == 0 {
		return
	}
	for i := range spans {
		for _, rect := range links {
			if spans[i].BBox.Intersects(rect) {
				spans[i].IsLink = true
				break
			}
		}
	}
}

// linkRects collects the rectangles of /Link annotations on a page.
func linkRects(page pdflib.Value) []span.BBox {
	annots := page.Key("Annots")
	if annots.IsNull() {
		return nil
	}
	var rects []span.BBox
	for i := 0; i < annots.Len(); i++ {
		annot := annots.Index(i)
		if annot.Key("Subtype").Name() != "Link" {
			continue
		}
		rect := annot.Key("Rect")
		if rect.Len() != 4 {
			continue
		}
		x0, y0 := rect.Index(0).Float64(), rect.Index(1).Float64()
		x1, y1 := rect.Index(2).Float64(), rect.Index(3).Float64()
		rects = append(rects, span.BBox{
			X0: math.Min(x0, x1),
			Y0: math.Min(y0, y1),
			X1: math.Max(x0, x1),
			Y1: math.Max(y0, y1),
		})
	}
	return rects
}

// pageHeight resolves the MediaBox height, walking the inheritance
// chain when the page dictionary does not carry one.
func pageHeight(page pdflib.Value) float64 {
	for v := page; !v.IsNull(); v = v.Key("Parent") {
		if mb := v.Key("MediaBox"); !mb.IsNull() && mb.Len() == 4 {
			return mb.Index(3).Float64() - mb.Index(1).Float64()
		}
	}
	return letterHeight
}

// flattenOutline walks the outline tree depth first. The reader's
// outline entries do not resolve destinations, so Page stays 0 and the
// TOC validator skips its page check.
func flattenOutline(o pdflib.Outline, level int, out []span.Bookmark) []span.Bookmark {
	for _, child := range o.Child {
		if title := strings.TrimSpace(child.Title); title != "" {
			out = append(out, span.Bookmark{Title: title, Level: level})
		}
		out = flattenOutline(child, level+1, out)
	}
	return out
}
