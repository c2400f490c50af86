package base

import (
	"strings"
	"unicode/utf8"
)

// TruncateString shortens s to maxWidth code points, ending with an ellipsis
// when there is room for one.
func TruncateString(s string, maxWidth int) string {
	if utf8.RuneCountInString(s) <= maxWidth {
		return s
	}
	r := []rune(s)
	if maxWidth < 3 {
		return string(r[:maxWidth])
	}
	return string(r[:maxWidth-3]) + "..."
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// Rule returns a horizontal line of the given width.
func Rule(width int) string {
	return strings.Repeat("─", max(width, 0))
}
