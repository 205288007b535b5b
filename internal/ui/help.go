package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

type helpSection struct {
	title string
	items []key.Binding
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	sections := []helpSection{
		{
			title: "Browse",
			items: []key.Binding{
				keys.Up, keys.Down, keys.PrevPage, keys.NextPage,
				keys.Search, keys.GenreFilter, keys.StatusFilter, keys.Sort,
			},
		},
		{
			title: "Manage",
			items: []key.Binding{
				keys.Add, keys.Edit, keys.Delete, keys.Refresh,
			},
		},
		{
			title: "General",
			items: []key.Binding{
				keys.CycleTheme, keys.Help, keys.Quit,
			},
		},
	}

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("stacks help"))
	b.WriteString("\n\n")

	for i, section := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(styles.MutedText.Bold(true).Render(section.title))
		b.WriteString("\n")
		for _, binding := range section.items {
			help := binding.Help()
			b.WriteString("  ")
			b.WriteString(styles.AccentText.Render(pad(help.Key, 12)))
			b.WriteString(styles.Text.Render(help.Desc))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("press any key to close"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		Padding(1, 2).
		Render(b.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
