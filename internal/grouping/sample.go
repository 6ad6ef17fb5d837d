package grouping

import "fmt"

// Sample draws min(drawCount, len(entries)) entries without replacement.
// Every subset of that size is equally likely. entries is not modified.
func Sample(src Source, entries []string, drawCount int) ([]string, error) {
	if drawCount < 1 {
		return nil, fmt.Errorf("draw %d entries: %w", drawCount, ErrInvalidArgument)
	}

	pool := make([]string, len(entries))
	copy(pool, entries)
	n := min(drawCount, len(pool))
	// partial Fisher-Yates: pool[:i] holds the draw so far
	for i := 0; i < n; i++ {
		j := i + src.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n:n], nil
}
