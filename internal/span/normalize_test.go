package span

import (
	"testing"
)

func testDoc() *Document {
	return &Document{
		Pages: []Page{
			{
				Number: 1,
				Height: 792,
				Spans: []Span{
					{Text: "Running Header", Page: 1, FontSize: 9, BBox: BBox{X0: 72, Y0: 770, X1: 200, Y1: 780}},
					{Text: "4 Scope", Page: 1, FontSize: 12, BBox: BBox{X0: 72, Y0: 700, X1: 140, Y1: 712}},
					{Text: "Body text.", Page: 1, FontSize: 10, BBox: BBox{X0: 72, Y0: 680, X1: 160, Y1: 690}},
					{Text: "4.2.1", Page: 1, FontSize: 10, IsLink: true, BBox: BBox{X0: 200, Y0: 680, X1: 230, Y1: 690}},
					{Text: "Page 1 of 9", Page: 1, FontSize: 8, BBox: BBox{X0: 72, Y0: 20, X1: 140, Y1: 28}},
				},
			},
			{
				Number: 2,
				Height: 792,
				Spans: []Span{
					{Text: "More body.", Page: 2, FontSize: 10, BBox: BBox{X0: 72, Y0: 700, X1: 160, Y1: 710}},
				},
			},
		},
	}
}

func TestNormalize_DropsLinkSpans(t *testing.T) {
	spans := Normalize(testDoc(), Filter{})
	for _, sp := range spans {
		if sp.IsLink {
			t.Errorf("link span %q survived normalization", sp.Text)
		}
		if sp.Text == "4.2.1" {
			t.Errorf("link text %q survived normalization", sp.Text)
		}
	}
}

func TestNormalize_HeaderFooterBands(t *testing.T) {
	// Both bands disabled: header and footer spans survive.
	spans := Normalize(testDoc(), Filter{})
	if !containsText(spans, "Running Header") || !containsText(spans, "Page 1 of 9") {
		t.Fatal("with bands disabled, header/footer spans must survive")
	}

	spans = Normalize(testDoc(), Filter{HeaderHeight: 30, FooterHeight: 30})
	if containsText(spans, "Running Header") {
		t.Error("span within the header band survived")
	}
	if containsText(spans, "Page 1 of 9") {
		t.Error("span within the footer band survived")
	}
	if !containsText(spans, "Body text.") {
		t.Error("body span was dropped by the bands")
	}
}

func TestNormalize_RemoveIfContains(t *testing.T) {
	spans := Normalize(testDoc(), Filter{RemoveIfContains: []string{"Running", "Copyright"}})
	if containsText(spans, "Running Header") {
		t.Error("span containing a removal substring survived")
	}
	if !containsText(spans, "Body text.") {
		t.Error("unrelated span was dropped")
	}
}

func TestNormalize_PageRange(t *testing.T) {
	spans := Normalize(testDoc(), Filter{StartPage: 1, EndPage: 1})
	for _, sp := range spans {
		if sp.Page != 1 {
			t.Errorf("span on page %d outside range [1,1]", sp.Page)
		}
	}

	spans = Normalize(testDoc(), Filter{StartPage: 2, EndPage: 2})
	if len(spans) != 1 || spans[0].Text != "More body." {
		t.Errorf("expected only the page-2 span, got %d spans", len(spans))
	}
}

func TestNormalize_ReadingOrder(t *testing.T) {
	doc := &Document{Pages: []Page{{
		Number: 1,
		Height: 792,
		Spans: []Span{
			{Text: "second", Page: 1, BBox: BBox{X0: 72, Y0: 680, X1: 100, Y1: 690}},
			{Text: "first-right", Page: 1, BBox: BBox{X0: 200, Y0: 700, X1: 240, Y1: 712}},
			{Text: "first-left", Page: 1, BBox: BBox{X0: 72, Y0: 700, X1: 120, Y1: 712}},
		},
	}}}
	spans := Normalize(doc, Filter{})
	want := []string{"first-left", "first-right", "second"}
	if len(spans) != len(want) {
		t.Fatalf("got %d spans", len(spans))
	}
	for i, w := range want {
		if spans[i].Text != w {
			t.Errorf("span[%d] = %q, want %q", i, spans[i].Text, w)
		}
	}
}

func TestGroupLines(t *testing.T) {
	doc := &Document{Pages: []Page{
		{
			Number: 1,
			Height: 792,
			Spans: []Span{
				{Text: "4.2", Page: 1, BBox: BBox{X0: 72, Y0: 700, X1: 95, Y1: 712}},
				{Text: "Terms", Page: 1, BBox: BBox{X0: 100, Y0: 700, X1: 140, Y1: 712}},
				{Text: "Body.", Page: 1, BBox: BBox{X0: 72, Y0: 680, X1: 120, Y1: 690}},
			},
		},
		{
			Number: 2,
			Height: 792,
			Spans: []Span{
				{Text: "Next page.", Page: 2, BBox: BBox{X0: 72, Y0: 700, X1: 140, Y1: 712}},
			},
		},
	}}
	lines := GroupLines(Normalize(doc, Filter{}))
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if LineText(lines[0]) != "4.2 Terms" {
		t.Errorf("line 0 = %q", LineText(lines[0]))
	}
	if LineText(lines[1]) != "Body." {
		t.Errorf("line 1 = %q", LineText(lines[1]))
	}
	if lines[2][0].Page != 2 {
		t.Errorf("line 2 page = %d, want 2", lines[2][0].Page)
	}
}

func containsText(spans []Span, text string) bool {
	for _, sp := range spans {
		if sp.Text == text {
			return true
		}
	}
	return false
}
