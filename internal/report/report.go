// Package report renders results as plain-text tables for non-interactive use.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"github.com/jask/randogroup/internal/grouping"
	"github.com/jask/randogroup/internal/store"
)

const previewLen = 3

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}

// GroupName is the 1-based label shown for the group at index i.
func GroupName(i int) string {
	return fmt.Sprintf("Group %d", i+1)
}

func Groups(w io.Writer, groups []grouping.Group) {
	table := newTable(w, "Group", "Size", "Members")
	for i, g := range groups {
		table.Append([]string{GroupName(i), strconv.Itoa(len(g)), strings.Join(g, ", ")})
	}
	table.Render()
}

func Draw(w io.Writer, drawn []string) {
	table := newTable(w, "#", "Name")
	for i, name := range drawn {
		table.Append([]string{strconv.Itoa(i + 1), name})
	}
	table.Render()
}

// Lists shows each saved list with its size and first few entries.
func Lists(w io.Writer, lists *store.Lists) {
	table := newTable(w, "List", "Entries", "Preview")
	for _, name := range lists.Names() {
		entries, _ := lists.Get(name)
		preview := strings.Join(lo.Slice(entries, 0, previewLen), ", ")
		if len(entries) > previewLen {
			preview += ", …"
		}
		table.Append([]string{name, strconv.Itoa(len(entries)), preview})
	}
	table.Render()
}
