// Package roster converts between editable multi-line text and entries.
package roster

import (
	"strings"

	"github.com/samber/lo"
)

// Parse splits text on line breaks, trims each line and drops blank ones.
// Duplicates are kept in order.
func Parse(text string) []string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	return lo.FilterMap(lines, func(line string, _ int) (string, bool) {
		name := strings.TrimSpace(line)
		return name, name != ""
	})
}

// Text renders entries one per line, the inverse of Parse for clean input.
func Text(entries []string) string {
	return strings.Join(entries, "\n")
}
