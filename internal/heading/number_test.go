package heading

import (
	"reflect"
	"testing"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want []int
		ok   bool
	}{
		{"4", []int{4}, true},
		{"4.2.1", []int{4, 2, 1}, true},
		{" 10.3 ", []int{10, 3}, true},
		{"", nil, false},
		{"4.", nil, false},
		{"4.x", nil, false},
		{"0.1", nil, false},
		{"-1", nil, false},
		{"4..2", nil, false},
	}
	for _, tt := range tests {
		got, ok := ParseNumber(tt.in)
		if ok != tt.ok {
			t.Errorf("ParseNumber(%q): ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseNumber(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatNumber_RoundTrip(t *testing.T) {
	for _, s := range []string{"4", "4.2", "4.2.1", "10.20.30"} {
		nums, ok := ParseNumber(s)
		if !ok {
			t.Fatalf("ParseNumber(%q) failed", s)
		}
		if got := FormatNumber(nums); got != s {
			t.Errorf("FormatNumber(ParseNumber(%q)) = %q", s, got)
		}
	}
}

func TestCompareNumbers(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"4", "4", 0},
		{"4", "4.1", -1},
		{"4.1", "4", 1},
		{"4.1", "4.2", -1},
		{"4.9", "5", -1},
		{"4.2.1", "4.2.1", 0},
		{"5", "4.9.9", 1},
	}
	for _, tt := range tests {
		a, _ := ParseNumber(tt.a)
		b, _ := ParseNumber(tt.b)
		if got := CompareNumbers(a, b); got != tt.want {
			t.Errorf("CompareNumbers(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestContinues(t *testing.T) {
	tests := []struct {
		prev, cur string
		want      bool
	}{
		{"", "1", true},        // first heading always continues
		{"1.1", "1.2", true},   // same-level increment
		{"1.1", "2", true},     // restart at the top level
		{"1.2", "1.2.1", true}, // descend one level
		{"4.1.6", "4.2", true}, // climb back up
		{"1.3", "2", true},
		{"1.1", "1.1", false}, // duplicate
		{"1.1", "1.3", false}, // skipped sibling
		{"1.1", "3", false},   // skipped top level
		{"1.2", "1.1.1", false},
	}
	for _, tt := range tests {
		var prev []int
		if tt.prev != "" {
			prev, _ = ParseNumber(tt.prev)
		}
		cur, _ := ParseNumber(tt.cur)
		if got := Continues(prev, cur); got != tt.want {
			t.Errorf("Continues(%q, %q) = %v, want %v", tt.prev, tt.cur, got, tt.want)
		}
	}
}
