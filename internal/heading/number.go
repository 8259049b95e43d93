package heading

import (
	"strconv"
	"strings"
)

// ParseNumber converts a dotted designator like "4.2.1" into its
// integer components. Returns false for anything that is not a
// dot-separated sequence of positive integers.
func ParseNumber(s string) ([]int, bool) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	nums := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n <= 0 {
			return nil, false
		}
		nums = append(nums, n)
	}
	return nums, true
}

// FormatNumber is the inverse of ParseNumber.
func FormatNumber(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ".")
}

// CompareNumbers orders designators component-wise: 4 < 4.1 < 4.2 < 5.
func CompareNumbers(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// Continues reports whether cur logically follows prev in a numbered
// document: 1.1 → 1.2, 1.2 → 1.2.1, 1.3 → 2, 4.1.6 → 4.2. Used by the
// optional strict-sequence mode to reject cross-reference noise.
func Continues(prev, cur []int) bool {
	if len(prev) == 0 {
		return true
	}
	if len(cur) == 0 {
		return false
	}
	if len(cur) == len(prev) {
		return equalPrefix(cur, prev, len(cur)-1) && cur[len(cur)-1] == prev[len(prev)-1]+1
	}
	// Restart at the top level: 1.3 → 2.
	if len(cur) == 1 {
		return cur[0] == prev[0]+1
	}
	// Descend one level: 1.2 → 1.2.1.
	if len(cur) == len(prev)+1 {
		return equalPrefix(cur, prev, len(prev))
	}
	// Climb back up: 4.1.6 → 4.2.
	if len(cur) < len(prev) {
		return equalPrefix(cur, prev, len(cur)-1) && cur[len(cur)-1] == prev[len(cur)-1]+1
	}
	return false
}

func equalPrefix(a, b []int, n int) bool {
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
