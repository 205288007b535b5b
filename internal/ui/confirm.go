package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// deletePrompt is the delete confirmation surface. Nothing is sent to the
// record store until the user confirms.
type deletePrompt struct {
	id    string
	title string
}

// handleConfirmKey processes keyboard input while the confirmation is open.
func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	prompt := m.confirm
	if prompt == nil {
		m.mode = ModeList
		return m, nil
	}

	switch msg.String() {
	case "y", "enter":
		if m.pending {
			return m, nil
		}
		return m, tea.Batch(m.startPending(), m.deleteCmd(prompt.id))

	case "n", "esc", "q":
		// Cancel: close the surface, no record store call.
		m.confirm = nil
		m.mode = ModeList
		return m, nil
	}

	return m, nil
}

// renderConfirm renders the delete confirmation over the listing.
func (m Model) renderConfirm() string {
	prompt := m.confirm
	if prompt == nil {
		return m.renderList()
	}
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.DangerText.Render("Delete Book"))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render(fmt.Sprintf("Delete %q from the catalog?", truncate(prompt.title, 40))))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("This cannot be undone."))
	b.WriteString("\n\n")
	if m.pending {
		b.WriteString(m.spinner.View())
		b.WriteString(styles.MutedText.Render(" Deleting..."))
	} else {
		b.WriteString(styles.FaintText.Render("y/enter delete · n/esc cancel"))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Danger)).
		Padding(1, 2).
		Width(min(m.width-4, 56)).
		Render(b.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
