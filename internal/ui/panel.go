package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PanelString frames lines with the current theme's border.
func PanelString(lines []string) string {
	t := Current()
	border := lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1)
	return border.Render(strings.Join(lines, "\n"))
}

// Panel writes a framed box to w.
func Panel(w io.Writer, lines []string) {
	fmt.Fprintln(w, PanelString(lines))
}

// Header is the panel heading: title plus a user count.
func Header(title string, users int) string {
	t := Current()
	return fmt.Sprintf("%s  %s %s %d",
		t.Title.Render(title),
		t.Accent.Render(t.SymUser),
		t.Muted.Render("Total"), users,
	)
}
