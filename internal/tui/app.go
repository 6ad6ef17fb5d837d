package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/randogroup/internal/grouping"
	"github.com/jask/randogroup/internal/roster"
	"github.com/jask/randogroup/internal/store"
)

// App is the interactive view. It owns the loaded lists and writes them back
// through the store as a whole.
type App struct {
	ctx   context.Context
	store store.Store
	lists *store.Lists
	src   grouping.Source
	log   *slog.Logger
	keys  keyMap

	roster   textarea.Model
	groupsIn textinput.Model
	drawIn   textinput.Model
	nameIn   textinput.Model

	focus      focusArea
	listCursor int
	loaded     string // list currently in the editor, "" for unsaved text
	saving     bool   // a store write is in flight
	queued     string // status of a change made while saving, written next

	result    resultKind
	groups    []grouping.Group
	drawn     []string
	status    string
	statusErr bool

	width  int
	height int
}

// Deps are the collaborators New needs. Lists is the collection already
// loaded from Store.
type Deps struct {
	Store  store.Store
	Lists  *store.Lists
	Source grouping.Source
	Logger *slog.Logger
	Groups int
	Draw   int
}

type focusArea int

const (
	focusRoster focusArea = iota
	focusGroups
	focusDraw
	focusLists
	focusName
	focusAreas
)

type resultKind int

const (
	resultNone resultKind = iota
	resultGroups
	resultDraw
)

func New(ctx context.Context, deps Deps) *App {
	lists := deps.Lists
	if lists == nil {
		lists = store.NewLists()
	}
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	src := deps.Source
	if src == nil {
		src = grouping.NewSource(0)
	}

	ta := textarea.New()
	ta.Placeholder = "Enter names, one per line"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(40)
	ta.SetHeight(12)

	a := &App{
		ctx:      ctx,
		store:    deps.Store,
		lists:    lists,
		src:      src,
		log:      log,
		keys:     newKeyMap(),
		roster:   ta,
		groupsIn: newCountInput("Number of groups", deps.Groups),
		drawIn:   newCountInput("Number to draw", deps.Draw),
		nameIn:   newNameInput(),
	}
	a.setFocus(focusRoster)
	if lists.Len() == 0 {
		a.status = "No saved lists yet. Type names, then ctrl+s to save them."
	} else {
		a.status = fmt.Sprintf("%d saved lists. Tab to the list panel to load one.", lists.Len())
	}
	return a
}

func newCountInput(placeholder string, initial int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 6
	ti.Width = 18
	if initial > 0 {
		ti.SetValue(strconv.Itoa(initial))
	}
	return ti
}

func newNameInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "List name"
	ti.CharLimit = 64
	ti.Width = 28
	return ti
}

func (a *App) Init() tea.Cmd {
	return textarea.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.resize()
		return a, nil
	case listsSavedMsg:
		a.saving = false
		if next := a.queued; next != "" {
			a.queued = ""
			return a, a.persist(next)
		}
		a.ok(m.status)
		return a, nil
	case errMsg:
		a.saving = false
		a.queued = ""
		a.log.Error("store write failed", "err", m.error)
		a.fail("error: " + m.Error() + " (changes not saved)")
		return a, nil
	case tea.KeyMsg:
		if cmd, handled := a.handleKey(m); handled {
			return a, cmd
		}
	}
	return a, a.updateFocused(msg)
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(m, a.keys.Quit):
		return tea.Quit, true
	case key.Matches(m, a.keys.Next):
		return a.setFocus((a.focus + 1) % focusAreas), true
	case key.Matches(m, a.keys.Prev):
		return a.setFocus((a.focus + focusAreas - 1) % focusAreas), true
	case key.Matches(m, a.keys.Groups):
		a.createGroups()
		return nil, true
	case key.Matches(m, a.keys.Draw):
		a.draw()
		return nil, true
	case key.Matches(m, a.keys.Save):
		return a.saveList(), true
	}

	switch a.focus {
	case focusGroups:
		if key.Matches(m, a.keys.Submit) {
			a.createGroups()
			return nil, true
		}
	case focusDraw:
		if key.Matches(m, a.keys.Submit) {
			a.draw()
			return nil, true
		}
	case focusName:
		if key.Matches(m, a.keys.Submit) {
			return a.saveList(), true
		}
	case focusLists:
		switch {
		case key.Matches(m, a.keys.Up):
			if a.listCursor > 0 {
				a.listCursor--
			}
		case key.Matches(m, a.keys.Down):
			if a.listCursor < a.lists.Len()-1 {
				a.listCursor++
			}
		case key.Matches(m, a.keys.Load):
			return a.loadSelected(), true
		case key.Matches(m, a.keys.Delete):
			return a.deleteSelected(), true
		}
		// the list panel has no text input to forward to
		return nil, true
	}
	return nil, false
}

func (a *App) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.focus {
	case focusRoster:
		a.roster, cmd = a.roster.Update(msg)
	case focusGroups:
		a.groupsIn, cmd = a.groupsIn.Update(msg)
	case focusDraw:
		a.drawIn, cmd = a.drawIn.Update(msg)
	case focusName:
		a.nameIn, cmd = a.nameIn.Update(msg)
	}
	return cmd
}

func (a *App) setFocus(f focusArea) tea.Cmd {
	a.focus = f
	a.roster.Blur()
	a.groupsIn.Blur()
	a.drawIn.Blur()
	a.nameIn.Blur()
	switch f {
	case focusRoster:
		return a.roster.Focus()
	case focusGroups:
		return a.groupsIn.Focus()
	case focusDraw:
		return a.drawIn.Focus()
	case focusName:
		return a.nameIn.Focus()
	}
	return nil
}

func (a *App) createGroups() {
	n, err := parseCount(a.groupsIn.Value(), countGroups)
	if err != nil {
		a.fail(err.Error())
		return
	}
	entries := roster.Parse(a.roster.Value())
	if len(entries) == 0 {
		a.fail(msgNoNames)
		return
	}
	groups, err := grouping.Partition(a.src, entries, n)
	if err != nil {
		a.fail(err.Error())
		return
	}
	a.result, a.groups, a.drawn = resultGroups, groups, nil
	a.ok(fmt.Sprintf("Split %d names into %d groups.", len(entries), n))
	a.log.Info("groups created", "entries", len(entries), "groups", n)
}

func (a *App) draw() {
	n, err := parseCount(a.drawIn.Value(), countDraw)
	if err != nil {
		a.fail(err.Error())
		return
	}
	entries := roster.Parse(a.roster.Value())
	if len(entries) == 0 {
		a.fail(msgNoNames)
		return
	}
	drawn, err := grouping.Sample(a.src, entries, n)
	if err != nil {
		a.fail(err.Error())
		return
	}
	a.result, a.groups, a.drawn = resultDraw, nil, drawn
	a.ok(fmt.Sprintf("Drew %d of %d names.", len(drawn), len(entries)))
	a.log.Info("names drawn", "entries", len(entries), "requested", n, "drawn", len(drawn))
}

// saveList stores the editor under the name field. Saving a loaded list under
// a new name renames it.
func (a *App) saveList() tea.Cmd {
	name := strings.TrimSpace(a.nameIn.Value())
	if name == "" {
		a.fail(msgNoListName)
		return nil
	}
	entries := roster.Parse(a.roster.Value())
	if len(entries) == 0 {
		a.fail(msgNoNames)
		return nil
	}
	status := fmt.Sprintf("Saved %q (%d names).", name, len(entries))
	if a.loaded != "" && a.loaded != name {
		status = fmt.Sprintf("Renamed %q to %q (%d names).", a.loaded, name, len(entries))
	}
	a.lists.Rename(a.loaded, name, entries)
	a.loaded = name
	return a.persist(status)
}

func (a *App) loadSelected() tea.Cmd {
	names := a.lists.Names()
	if len(names) == 0 {
		a.fail("No saved lists.")
		return nil
	}
	name := names[a.listCursor]
	entries, _ := a.lists.Get(name)
	a.roster.SetValue(roster.Text(entries))
	a.nameIn.SetValue(name)
	a.loaded = name
	a.ok(fmt.Sprintf("Loaded %q (%d names).", name, len(entries)))
	return a.setFocus(focusRoster)
}

func (a *App) deleteSelected() tea.Cmd {
	names := a.lists.Names()
	if len(names) == 0 {
		a.fail("No saved lists.")
		return nil
	}
	name := names[a.listCursor]
	a.lists.Delete(name)
	if a.loaded == name {
		a.loaded = ""
	}
	a.clampCursor()
	return a.persist(fmt.Sprintf("Deleted %q.", name))
}

// persist writes a snapshot of the lists through the store. Writes never
// overlap: a change made while one is in flight is queued and written once it
// lands, so the store always ends on the latest state.
func (a *App) persist(status string) tea.Cmd {
	if a.saving {
		a.queued = status
		a.ok(status)
		return nil
	}
	if a.store == nil {
		return func() tea.Msg { return errMsg{fmt.Errorf("list store not configured")} }
	}
	a.saving = true
	snapshot := a.lists.Clone()
	a.ok(status)
	return func() tea.Msg {
		if err := a.store.SaveAll(a.ctx, snapshot); err != nil {
			return errMsg{err}
		}
		return listsSavedMsg{status: status}
	}
}

func (a *App) clampCursor() {
	if a.listCursor >= a.lists.Len() {
		a.listCursor = max(0, a.lists.Len()-1)
	}
}

func (a *App) ok(s string) {
	a.status, a.statusErr = s, false
}

func (a *App) fail(s string) {
	a.status, a.statusErr = s, true
}

// messages
type listsSavedMsg struct {
	status string
}

type errMsg struct{ error }
