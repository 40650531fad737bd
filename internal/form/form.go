// Package form is the entry form of the users page: one text field whose
// value is appended as a user on submit.
package form

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/users/internal/model"
	"github.com/idilsaglam/users/internal/store"
)

var (
	buttonStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).Reverse(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// SubmitKey submits the form.
var SubmitKey = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add user"))

// Option configures a Model.
type Option func(*Model)

func WithPlaceholder(p string) Option {
	return func(m *Model) { m.input.Placeholder = p }
}

// WithCharLimit caps how much can be typed; 0 means unlimited.
// Values set with Change are not capped.
func WithCharLimit(n int) Option {
	return func(m *Model) { m.input.CharLimit = n }
}

// Model holds the in-progress entry. It only needs the write half of the
// container.
//
// value is the raw field content. The text input sanitizes and caps what it
// holds, so it only drives editing and display.
type Model struct {
	input    textinput.Model
	value    string
	dispatch store.Dispatcher
	err      error
}

func New(d store.Dispatcher, opts ...Option) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "User name..."
	ti.Focus()
	m := Model{input: ti, dispatch: d}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func (m Model) Value() string { return m.value }

// Err is the error of the last submit, if it failed.
func (m Model) Err() error { return m.err }

// Change replaces the field with the raw input, kept byte for byte.
func (m *Model) Change(v string) {
	m.value = v
	m.input.SetValue(v)
	m.input.CursorEnd()
}

// Submit appends the current value, empty or not, then clears the field.
// On error the field keeps its value.
func (m *Model) Submit() error {
	err := m.dispatch.Dispatch(store.Append{User: model.User{Name: m.value}})
	m.err = err
	if err != nil {
		return err
	}
	m.value = ""
	m.input.Reset()
	return nil
}

// ButtonLabel mirrors the field: "Add Doc Brown", or "Add user" when empty.
func (m Model) ButtonLabel() string {
	if v := m.value; v != "" {
		return "Add " + v
	}
	return "Add user"
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, SubmitKey) {
		_ = m.Submit()
		return m, nil
	}
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.value = after
	}
	return m, cmd
}

func (m Model) View() string {
	v := m.input.View() + "  " + buttonStyle.Render(m.ButtonLabel())
	if m.err != nil {
		v += "\n" + errorStyle.Render("✖ "+m.err.Error())
	}
	return v
}
