package grouping

import "fmt"

// Group is one bucket of a partition.
type Group []string

// Partition shuffles a copy of entries and deals them round-robin into
// groupCount groups. Sizes differ by at most one, and which groups get the
// extra member follows the shuffle. Exactly groupCount groups are returned,
// some of them empty when there are fewer entries than groups.
func Partition(src Source, entries []string, groupCount int) ([]Group, error) {
	if groupCount < 1 {
		return nil, fmt.Errorf("partition into %d groups: %w", groupCount, ErrInvalidArgument)
	}

	shuffled := make([]string, len(entries))
	copy(shuffled, entries)
	src.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	groups := make([]Group, groupCount)
	per := len(entries)/groupCount + 1
	for i := range groups {
		groups[i] = make(Group, 0, per)
	}
	for i, name := range shuffled {
		groups[i%groupCount] = append(groups[i%groupCount], name)
	}
	// dealing always overfills the low indexes; shuffle so the larger
	// groups land anywhere
	src.Shuffle(len(groups), func(i, j int) {
		groups[i], groups[j] = groups[j], groups[i]
	})
	return groups, nil
}
