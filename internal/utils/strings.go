package utils

import "strings"

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// FoldSearch lowers and trims a free-text query for substring matching.
func FoldSearch(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
