package util

import "strings"

// TruncateRunes caps s at max runes, appending marker when cut.
func TruncateRunes(s string, max int, marker string) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + marker
}

// CollapseSpace trims and squeezes internal whitespace runs to one space.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
