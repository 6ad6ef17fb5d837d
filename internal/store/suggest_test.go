package store

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClosest(t *testing.T) {
	names := []string{"Period 3", "Chess club", "Robotics"}
	require.Equal(t, "Period 3", Closest(names, "period3"))
	require.Equal(t, "Robotics", Closest(names, "Robotcs"))
	require.Equal(t, "", Closest(names, "Basketball team"))
	require.Equal(t, "", Closest(names, ""))
	require.Equal(t, "", Closest(nil, "anything"))
}

func TestLookup(t *testing.T) {
	l := sampleLists()
	got, err := l.Lookup("Chess club")
	require.NoError(t, err)
	require.Equal(t, []string{"Bob"}, got)

	_, err = l.Lookup("Chess clab")
	require.ErrorIs(t, err, ErrUnknownList)
	require.Contains(t, err.Error(), `did you mean "Chess club"`)

	_, err = l.Lookup("Orchestra")
	require.ErrorIs(t, err, ErrUnknownList)
	require.NotContains(t, err.Error(), "did you mean")
}
