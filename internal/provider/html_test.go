package provider

import (
	"strings"
	"testing"
)

func TestHTMLProvider_HeadingsAndBody(t *testing.T) {
	input := `<html>
<head><title>ignored</title></head>
<body>
<nav>skip this</nav>
<h1>4 Scope</h1>
<p>This section defines scope.</p>
<h2>4.1 Terms</h2>
<p>Definitions follow.</p>
<script>var x = 1;</script>
</body>
</html>`
	p := &HTMLProvider{}
	doc, err := p.Parse(strings.NewReader(input), "doc.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	spans := doc.Pages[0].Spans
	if len(spans) != 4 {
		t.Fatalf("expected 4 spans, got %d: %+v", len(spans), spans)
	}
	if spans[0].Text != "4 Scope" || spans[0].FontSize != headingFontSize(1) {
		t.Errorf("h1 span = %+v", spans[0])
	}
	if spans[2].Text != "4.1 Terms" || spans[2].FontSize != headingFontSize(2) {
		t.Errorf("h2 span = %+v", spans[2])
	}
	if containsSpanText(spans, "skip this") || containsSpanText(spans, "var x") {
		t.Error("nav or script content leaked into spans")
	}
}

func TestHTMLProvider_AnchorTextKept(t *testing.T) {
	input := `<body><p>see <a href="#s42">section 4.2</a> below</p></body>`
	p := &HTMLProvider{}
	doc, err := p.Parse(strings.NewReader(input), "doc.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	spans := doc.Pages[0].Spans
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Text != "see section 4.2 below" {
		t.Errorf("span text = %q", spans[0].Text)
	}
	if spans[0].IsLink {
		t.Error("inline anchor must not mark the whole line as a link")
	}
}
