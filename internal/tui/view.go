package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/randogroup/internal/report"
)

const (
	minRosterWidth  = 24
	minRosterHeight = 6
	listsWidth      = 30
)

func (a *App) View() string {
	left := a.panel(focusRoster, "Names", a.roster.View())
	controls := lipgloss.JoinVertical(lipgloss.Left,
		a.panel(focusGroups, "Groups", a.groupsIn.View()),
		a.panel(focusDraw, "Draw", a.drawIn.View()),
		a.panel(focusName, "Save as", a.nameIn.View()),
	)
	lists := a.panel(focusLists, "Saved lists", a.renderLists())
	top := lipgloss.JoinHorizontal(lipgloss.Top, left, controls, lists)

	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Randogroup"),
		top,
		a.renderResults(),
		a.renderStatus(),
		footerStyle.Render(renderHelp(a.keys.help(a.focus))),
	)
	return body
}

func (a *App) panel(f focusArea, title, content string) string {
	style := panelStyle
	if a.focus == f {
		style = focusedPanel
	}
	return style.Render(titleStyle.Render(title) + "\n" + content)
}

func (a *App) renderLists() string {
	names := a.lists.Names()
	if len(names) == 0 {
		return dimStyle.Render("(none)")
	}
	var b strings.Builder
	for i, name := range names {
		entries, _ := a.lists.Get(name)
		line := ansi.Truncate(fmt.Sprintf("%s (%d)", name, len(entries)), listsWidth, "…")
		switch {
		case i == a.listCursor && a.focus == focusLists:
			b.WriteString(cursorStyle.Render("> " + line))
		case name == a.loaded:
			b.WriteString(textStyle.Render("* " + line))
		default:
			b.WriteString(textStyle.Render("  " + line))
		}
		if i < len(names)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (a *App) renderResults() string {
	var b strings.Builder
	switch a.result {
	case resultGroups:
		for i, g := range a.groups {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(groupLabelStyle(i).Render(report.GroupName(i) + ":"))
			if len(g) > 0 {
				b.WriteString(" " + textStyle.Render(strings.Join(g, ", ")))
			}
		}
	case resultDraw:
		for i, name := range a.drawn {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(fmt.Sprintf("%s %s", groupLabelStyle(0).Render(fmt.Sprintf("%d.", i+1)), textStyle.Render(name)))
		}
	default:
		b.WriteString(dimStyle.Render("Results appear here."))
	}
	return panelStyle.Render(titleStyle.Render("Results") + "\n" + b.String())
}

func (a *App) renderStatus() string {
	if a.status == "" {
		return ""
	}
	if a.statusErr {
		return errStyle.Render(a.status)
	}
	return okStyle.Render(a.status)
}

// resize gives the roster editor whatever room the fixed panels leave.
func (a *App) resize() {
	w := a.width - listsWidth - 32 - 12
	h := a.height - 16
	a.roster.SetWidth(max(minRosterWidth, w))
	a.roster.SetHeight(max(minRosterHeight, h))
}
