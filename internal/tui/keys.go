package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Groups key.Binding
	Draw   key.Binding
	Save   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Up     key.Binding
	Down   key.Binding
	Load   key.Binding
	Delete key.Binding
	Submit key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Groups: key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "groups")),
		Draw:   key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "draw")),
		Save:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save list")),
		Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Load:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "load")),
		Delete: key.NewBinding(key.WithKeys("ctrl+x", "delete"), key.WithHelp("ctrl+x", "delete")),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// help returns the bindings worth showing for the focused panel.
func (k keyMap) help(f focusArea) []key.Binding {
	common := []key.Binding{k.Groups, k.Draw, k.Save, k.Next, k.Quit}
	switch f {
	case focusLists:
		return append([]key.Binding{k.Up, k.Down, k.Load, k.Delete}, common...)
	case focusGroups, focusDraw:
		return append([]key.Binding{k.Submit}, common...)
	case focusName:
		return append([]key.Binding{key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save"))}, common...)
	}
	return common
}

func renderHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, boldKey(help.Key)+" "+help.Desc)
	}
	return strings.Join(parts, "  ")
}

func boldKey(text string) string {
	if text == "" {
		return ""
	}
	return "\x1b[1m" + text + "\x1b[22m"
}
