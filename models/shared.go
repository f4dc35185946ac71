package models

import "strings"

// FoldKey normalizes a name for case- and space-insensitive comparison.
func FoldKey(s string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
}
