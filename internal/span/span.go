// Package span holds the span-level document model produced by the
// format providers and consumed by the extraction pipeline.
package span

// BBox is a bounding box in PDF user space: origin at the bottom-left
// of the page, y growing upward, units in points.
type BBox struct {
	X0, Y0, X1, Y1 float64
}

// Intersects reports whether two boxes overlap.
func (b BBox) Intersects(o BBox) bool {
	return b.X0 < o.X1 && o.X0 < b.X1 && b.Y0 < o.Y1 && o.Y0 < b.Y1
}

// Span is a contiguous run of text with uniform font and position
// metadata, as extracted from one page.
type Span struct {
	Text     string
	FontSize float64
	BBox     BBox
	Page     int // 1-based
	IsLink   bool
}

// Page holds the spans of a single document page.
type Page struct {
	Number int // 1-based
	Height float64
	Spans  []Span
}

// Bookmark is one entry of the document's native outline. Page is 0
// when the outline does not resolve to a page number.
type Bookmark struct {
	Title string
	Page  int
	Level int
}

// Document is the provider output: pages of spans plus the optional
// outline used for heading validation.
type Document struct {
	Pages     []Page
	Bookmarks []Bookmark
}

// MaxPage returns the highest page number in the document, 0 when empty.
func (d *Document) MaxPage() int {
	max := 0
	for _, p := range d.Pages {
		if p.Number > max {
			max = p.Number
		}
	}
	return max
}
