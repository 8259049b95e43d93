package provider

import (
	"strings"

	"github.com/MatLN8/pdf-restruct/internal/span"
)

// Font sizes assigned to synthetic spans so the min-font-size gate
// behaves the same for every input format.
const (
	bodyFontSize = 11.0
	synthMargin  = 72.0
	synthGap     = 4.0
	letterHeight = 792.0
)

// headingFontSize maps a structural heading level (h1..h6 and beyond)
// to a synthetic font size.
func headingFontSize(level int) float64 {
	sizes := []float64{24, 20, 18, 16, 14, 13}
	if level >= 1 && level <= len(sizes) {
		return sizes[level-1]
	}
	return 12
}

// synthLine is one laid-out line of a non-PDF document.
type synthLine struct {
	text     string
	fontSize float64
}

// synthDocument lays out lines top to bottom on synthetic pages with
// non-overlapping vertical bands, so line grouping and ordering work
// exactly as for real PDF geometry.
func synthDocument(pages [][]synthLine) *span.Document {
	doc := &span.Document{}
	for i, lines := range pages {
		height := letterHeight
		if need := 2*synthMargin + totalHeight(lines); need > height {
			height = need
		}
		page := span.Page{Number: i + 1, Height: height}
		y := height - synthMargin
		for _, line := range lines {
			if line.text == "" {
				y -= bodyFontSize + synthGap
				continue
			}
			size := line.fontSize
			if size <= 0 {
				size = bodyFontSize
			}
			page.Spans = append(page.Spans, span.Span{
				Text:     line.text,
				FontSize: size,
				Page:     i + 1,
				BBox: span.BBox{
					X0: synthMargin,
					Y0: y - size,
					X1: synthMargin + 0.5*size*float64(len(line.text)),
					Y1: y,
				},
			})
			y -= size + synthGap
		}
		doc.Pages = append(doc.Pages, page)
	}
	return doc
}

func totalHeight(lines []synthLine) float64 {
	total := 0.0
	for _, line := range lines {
		size := line.fontSize
		if size <= 0 {
			size = bodyFontSize
		}
		total += size + synthGap
	}
	return total
}

// splitLines appends one synthLine per non-blank line of a text block.
func splitLines(text string, fontSize float64, out []synthLine) []synthLine {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, synthLine{text: line, fontSize: fontSize})
	}
	return out
}
