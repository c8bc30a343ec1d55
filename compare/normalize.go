package compare

import "strings"

// CleanText trims leading/trailing whitespace and collapses every internal run
// of whitespace (spaces, tabs, newlines) to a single space. Idempotent.
func CleanText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
