package tui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCount(t *testing.T) {
	tests := []struct {
		raw     string
		kind    countKind
		want    int
		wantErr string
	}{
		{"3", countGroups, 3, ""},
		{" 12 ", countDraw, 12, ""},
		{"", countGroups, 0, "Please enter a valid number of groups."},
		{"2.5", countDraw, 0, "Please enter a valid number to draw."},
		{"0", countGroups, 0, "Number of groups must be greater than 0."},
		{"-1", countDraw, 0, "Number to draw must be greater than 0."},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parseCount(tt.raw, tt.kind)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
