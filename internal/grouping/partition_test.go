package grouping

import (
	"slices"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

var sixNames = []string{"Alice", "Bob", "Charlie", "David", "Eve", "Frank"}

func flatten(groups []Group) []string {
	var out []string
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func TestPartitionSixIntoThree(t *testing.T) {
	groups, err := Partition(NewSource(1), sixNames, 3)
	require.NoError(t, err)
	require.Len(t, groups, 3)
	for _, g := range groups {
		require.Len(t, g, 2)
	}
	require.ElementsMatch(t, sixNames, flatten(groups))
}

func TestPartitionEmptyRoster(t *testing.T) {
	groups, err := Partition(NewSource(1), nil, 3)
	require.NoError(t, err)
	require.Len(t, groups, 3)
	for _, g := range groups {
		require.NotNil(t, g)
		require.Empty(t, g)
	}
}

func TestPartitionMoreGroupsThanEntries(t *testing.T) {
	groups, err := Partition(NewSource(7), []string{"Alice", "Bob"}, 3)
	require.NoError(t, err)
	require.Len(t, groups, 3)
	require.ElementsMatch(t, []string{"Alice", "Bob"}, flatten(groups))
	require.True(t, lo.SomeBy(groups, func(g Group) bool { return len(g) == 0 }))
}

func TestPartitionRejectsNonPositiveCount(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := Partition(NewSource(1), sixNames, n)
		require.ErrorIs(t, err, ErrInvalidArgument)
	}
}

func TestPartitionCompleteAndBalanced(t *testing.T) {
	roster := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "a", "b"}
	for seed := int64(1); seed <= 50; seed++ {
		src := NewSource(seed)
		for g := 1; g <= len(roster)+2; g++ {
			groups, err := Partition(src, roster, g)
			require.NoError(t, err)
			require.Len(t, groups, g)
			require.ElementsMatch(t, roster, flatten(groups), "seed %d groups %d", seed, g)
			lower, upper := len(roster)/g, (len(roster)+g-1)/g
			for _, grp := range groups {
				require.GreaterOrEqual(t, len(grp), lower)
				require.LessOrEqual(t, len(grp), upper)
			}
		}
	}
}

func TestPartitionDoesNotMutateInput(t *testing.T) {
	in := slices.Clone(sixNames)
	_, err := Partition(NewSource(3), in, 2)
	require.NoError(t, err)
	require.Equal(t, sixNames, in)
}

func TestPartitionSeedIsReproducible(t *testing.T) {
	a, err := Partition(NewSource(42), sixNames, 4)
	require.NoError(t, err)
	b, err := Partition(NewSource(42), sixNames, 4)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestPartitionLargerGroupPositionVaries(t *testing.T) {
	// 7 into 3 leaves exactly one group of 3
	roster := []string{"a", "b", "c", "d", "e", "f", "g"}
	seen := map[int]bool{}
	src := NewSource(99)
	for i := 0; i < 200; i++ {
		groups, err := Partition(src, roster, 3)
		require.NoError(t, err)
		for idx, g := range groups {
			if len(g) == 3 {
				seen[idx] = true
			}
		}
	}
	require.Len(t, seen, 3)
}
