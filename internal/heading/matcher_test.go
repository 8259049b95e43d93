package heading

import (
	"testing"

	"github.com/MatLN8/pdf-restruct/internal/span"
)

func sp(text string, fontSize float64) span.Span {
	return span.Span{Text: text, FontSize: fontSize, Page: 1}
}

func TestMatchSpan_DefaultPattern(t *testing.T) {
	m, err := NewMatcher("", 0)
	if err != nil {
		t.Fatalf("NewMatcher: %v", err)
	}

	tests := []struct {
		text   string
		number string
		title  string
		ok     bool
	}{
		{"4 Scope", "4", "Scope", true},
		{"4. Scope", "4", "Scope", true},
		{"4.2.1 Title Text", "4.2.1", "Title Text", true},
		{"  10.3  Indented", "10.3", "Indented", true},
		{"4.2.1", "4.2.1", "", true}, // bare number matches, title empty
		{"Scope", "", "", false},
		{"see section four", "", "", false},
		{"4a Scope", "", "", false},
	}
	for _, tt := range tests {
		c, ok := m.matchSpan(sp(tt.text, 12))
		if ok != tt.ok {
			t.Errorf("matchSpan(%q): ok = %v, want %v", tt.text, ok, tt.ok)
			continue
		}
		if !ok {
			continue
		}
		if got := c.NumberString(); got != tt.number {
			t.Errorf("matchSpan(%q): number = %q, want %q", tt.text, got, tt.number)
		}
		if c.Title != tt.title {
			t.Errorf("matchSpan(%q): title = %q, want %q", tt.text, c.Title, tt.title)
		}
	}
}

func TestMatchSpan_FontSizeGate(t *testing.T) {
	m, err := NewMatcher("", 12)
	if err != nil {
		t.Fatalf("NewMatcher: %v", err)
	}
	if _, ok := m.matchSpan(sp("4.2.1 Cross Reference", 10)); ok {
		t.Error("span below min font size must not match")
	}
	if _, ok := m.matchSpan(sp("4.2.1 Real Heading", 12)); !ok {
		t.Error("span at min font size must match")
	}
}

func TestNewMatcher_InvalidPattern(t *testing.T) {
	if _, err := NewMatcher(`([unclosed`, 0); err == nil {
		t.Error("expected error for invalid regex")
	}
	if _, err := NewMatcher(`no capture groups`, 0); err == nil {
		t.Error("expected error for pattern without capture group")
	}
}

func TestMatchSpan_CustomPattern(t *testing.T) {
	// Headings prefixed with "Section", e.g. "Section 4.2: Title".
	m, err := NewMatcher(`^Section (\d+(?:\.\d+)*): (.*)$`, 0)
	if err != nil {
		t.Fatalf("NewMatcher: %v", err)
	}
	c, ok := m.matchSpan(sp("Section 4.2: Terms", 12))
	if !ok {
		t.Fatal("expected match")
	}
	if c.NumberString() != "4.2" || c.Title != "Terms" {
		t.Errorf("got number %q title %q", c.NumberString(), c.Title)
	}
	if _, ok := m.matchSpan(sp("4.2 Terms", 12)); ok {
		t.Error("default-style heading must not match the custom pattern")
	}
}

func TestCandidate_Level(t *testing.T) {
	for _, tt := range []struct {
		number string
		level  int
	}{
		{"4", 1},
		{"4.2", 2},
		{"4.2.1", 3},
	} {
		nums, _ := ParseNumber(tt.number)
		c := Candidate{Number: nums}
		if c.Level() != tt.level {
			t.Errorf("level of %s = %d, want %d", tt.number, c.Level(), tt.level)
		}
	}
}
