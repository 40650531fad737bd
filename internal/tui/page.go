// Package tui runs the interactive users page: the entry form above the
// list, both bound to one container scope.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/users/internal/form"
	"github.com/idilsaglam/users/internal/store"
	"github.com/idilsaglam/users/internal/ui"
	"github.com/idilsaglam/users/internal/userlist"
)

// Title is the page heading.
const Title = "Context API example"

var (
	quitKey   = key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit"))
	scrollKey = key.NewBinding(key.WithKeys("up", "down", "pgup", "pgdown"), key.WithHelp("↑/↓", "scroll"))
)

var helpStyle = lipgloss.NewStyle().Faint(true)

// Options tune the page.
type Options struct {
	Placeholder string
	CharLimit   int
	AltScreen   bool
}

// stateMsg carries a snapshot from the container observer into the loop.
type stateMsg struct{ state store.State }

// Page is the bubbletea model of the users page.
type Page struct {
	form  form.Model
	users userlist.Model

	changes     chan store.State
	unsubscribe func()
	closeOnce   *sync.Once

	width, height int
}

// NewPage subscribes to c and builds the form and list around it.
// Close releases the subscription.
func NewPage(c *store.Container, opts Options) (Page, error) {
	s, err := c.State()
	if err != nil {
		return Page{}, err
	}

	var fopts []form.Option
	if opts.Placeholder != "" {
		fopts = append(fopts, form.WithPlaceholder(opts.Placeholder))
	}
	if opts.CharLimit > 0 {
		fopts = append(fopts, form.WithCharLimit(opts.CharLimit))
	}

	// One slot: the loop only ever needs the newest snapshot.
	changes := make(chan store.State, 1)
	unsubscribe := c.Subscribe(func(s store.State) {
		select {
		case <-changes:
		default:
		}
		changes <- s
	})

	p := Page{
		form:        form.New(c, fopts...),
		users:       userlist.New(s),
		changes:     changes,
		unsubscribe: unsubscribe,
		closeOnce:   &sync.Once{},
		width:       80,
		height:      24,
	}
	p.resize()
	return p, nil
}

// Close stops listening to the container and releases a pending
// waitForState. Copies of a Page share the subscription; closing any of
// them closes it once.
func (p Page) Close() {
	if p.closeOnce == nil {
		return
	}
	p.closeOnce.Do(func() {
		p.unsubscribe()
		close(p.changes)
	})
}

// Users returns the names the list currently shows.
func (p Page) Users() []string { return p.users.Names() }

func waitForState(ch <-chan store.State) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return nil
		}
		return stateMsg{state: s}
	}
}

func (p Page) Init() tea.Cmd {
	return tea.Batch(p.form.Init(), waitForState(p.changes))
}

func (p Page) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, quitKey):
			return p, tea.Quit
		case key.Matches(msg, scrollKey):
			var cmd tea.Cmd
			p.users, cmd = p.users.Update(msg)
			return p, cmd
		}
	case tea.WindowSizeMsg:
		p.width, p.height = msg.Width, msg.Height
		p.resize()
		return p, nil
	case stateMsg:
		cmd := p.users.SetState(msg.state)
		return p, tea.Batch(cmd, waitForState(p.changes))
	}

	var cmd tea.Cmd
	p.form, cmd = p.form.Update(msg)
	return p, cmd
}

func (p *Page) resize() {
	// border (2) + heading, blank, form, blank, help
	p.users.SetSize(p.width-4, p.height-7)
}

func (p Page) View() string {
	p.resize()
	t := ui.Current()
	var b strings.Builder
	b.WriteString(t.Title.Render(Title))
	b.WriteString("\n\n")
	b.WriteString(p.form.View())
	b.WriteString("\n\n")
	b.WriteString(p.users.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("%s add • %s scroll • %s quit",
		form.SubmitKey.Help().Key, scrollKey.Help().Key, quitKey.Help().Key)))
	return ui.PanelString([]string{b.String()})
}

// Run opens the page on the terminal and blocks until the user quits or
// ctx is done.
func Run(ctx context.Context, c *store.Container, opts Options) error {
	page, err := NewPage(c, opts)
	if err != nil {
		return err
	}
	defer page.Close()

	popts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.AltScreen {
		popts = append(popts, tea.WithAltScreen())
	}
	if _, err := tea.NewProgram(page, popts...).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("run page: %w", err)
	}
	return nil
}
