package store

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Closest returns the stored name nearest to query by case-insensitive edit
// distance, or "" if nothing is close enough to be a likely typo.
func Closest(names []string, query string) string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return ""
	}
	limit := max(2, len(q)/2)
	best, bestDist := "", limit+1
	for _, name := range names {
		d := levenshtein.ComputeDistance(q, strings.ToLower(name))
		if d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

// Lookup returns the entries stored under name. Unknown names fail with
// ErrUnknownList, naming the closest match when there is one.
func (l *Lists) Lookup(name string) ([]string, error) {
	if entries, ok := l.Get(name); ok {
		return entries, nil
	}
	if hint := Closest(l.names, name); hint != "" {
		return nil, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownList, name, hint)
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownList, name)
}
