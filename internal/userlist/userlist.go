// Package userlist renders the users of a state snapshot.
//
// Rows are keyed by position, not by identity. That is correct while users
// can only be appended; a command that removes or reorders users would make
// per-row UI state (selection, filtering) point at the wrong user.
package userlist

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/users/internal/store"
)

// maxNameWidth is the widest a name is shown, in terminal cells.
const maxNameWidth = 80

var (
	indexStyle    = lipgloss.NewStyle().Faint(true)
	emptyStyle    = lipgloss.NewStyle().Faint(true).Italic(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
)

// row adapts one user to bubbles/list.Item.
type row struct {
	Index int
	Name  string
}

func (r row) Title() string       { return r.Name }
func (r row) Description() string { return "" }
func (r row) FilterValue() string { return r.Name }

// Line renders the row without selection marks, e.g. " 2. Doc Brown".
func (r row) Line() string {
	name := ansi.Truncate(r.Name, maxNameWidth, "...")
	if name == "" {
		name = emptyStyle.Render("(empty)")
	}
	return fmt.Sprintf("%s %s", indexStyle.Render(fmt.Sprintf("%2d.", r.Index+1)), name)
}

// rowDelegate renders rows on a single line.
type rowDelegate struct{}

func (d rowDelegate) Height() int                               { return 1 }
func (d rowDelegate) Spacing() int                              { return 0 }
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	r, ok := item.(row)
	if !ok {
		return
	}
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprint(w, prefix+r.Line())
}

func rows(s store.State) []list.Item {
	items := make([]list.Item, 0, s.Len())
	for i, u := range s.All() {
		items = append(items, row{Index: i, Name: u.Name})
	}
	return items
}

// Lines renders s as plain text lines, one per user.
func Lines(s store.State) []string {
	out := make([]string, 0, s.Len())
	for i, u := range s.All() {
		out = append(out, row{Index: i, Name: u.Name}.Line())
	}
	return out
}

// Model is a scrollable list of the users in the last state it was given.
type Model struct {
	list list.Model
}

func New(s store.State) Model {
	l := list.New(rows(s), rowDelegate{}, 0, 0)
	l.Title = "Users"
	l.SetShowHelp(false)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("user", "users")
	l.DisableQuitKeybindings()
	return Model{list: l}
}

// SetState replaces the rows with the users of s and selects the last one,
// so the newest user is always on screen.
func (m *Model) SetState(s store.State) tea.Cmd {
	cmd := m.list.SetItems(rows(s))
	m.SelectLast()
	return cmd
}

// SelectLast moves the cursor to the last row, turning pages as needed.
func (m *Model) SelectLast() {
	if n := len(m.list.Items()); n > 0 {
		m.list.Select(n - 1)
	}
}

// Selected is the position of the row under the cursor.
func (m Model) Selected() int { return m.list.Index() }

// Len is the number of rows shown.
func (m Model) Len() int { return len(m.list.Items()) }

// Names returns the row names in display order.
func (m Model) Names() []string {
	names := make([]string, 0, len(m.list.Items()))
	for _, it := range m.list.Items() {
		if r, ok := it.(row); ok {
			names = append(names, r.Name)
		}
	}
	return names
}

func (m *Model) SetSize(w, h int) { m.list.SetSize(w, h) }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string { return m.list.View() }
