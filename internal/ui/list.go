package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/stacksapp/stacks/internal/catalog"
	"github.com/stacksapp/stacks/internal/view"
)

// Column layout for the listing table. Title and author flex; the rest are
// fixed.
const (
	colYearWidth   = 6
	colPagesWidth  = 7
	colStatusWidth = 11
	colGap         = 2
)

// renderList renders the listing view: header, command bar, table, footer.
func (m Model) renderList() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderTable())

	return b.String()
}

// renderTable renders the paginated book rows or the applicable empty state.
func (m Model) renderTable() string {
	styles := m.theme.Styles()
	contentHeight := m.height - 3 // header + command bar + footer

	// A failed initial fetch replaces the list entirely; the user retries
	// with r.
	if !m.snapshot.Loaded {
		if m.pending {
			msg := m.spinner.View() + styles.MutedText.Render(" Loading books...")
			return lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, msg)
		}
		if m.snapshot.LastError != nil {
			msg := styles.DangerText.Render("Could not reach the record store.") + "\n" +
				styles.MutedText.Render("Press r to retry.")
			return lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, msg)
		}
	}

	derived := view.Compute(m.snapshot, m.sortMode)

	if len(derived.Filtered) == 0 {
		msg := styles.MutedText.Render("No books found at the moment. Please check back later.")
		if m.filterSummary() != "" {
			msg = styles.MutedText.Render("No books match the active filters.")
		}
		return lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, msg)
	}

	titleWidth, authorWidth, genreWidth, langWidth := m.columnWidths()

	var b strings.Builder

	// Column headers
	header := pad("Title", titleWidth) + strings.Repeat(" ", colGap) +
		pad("Author", authorWidth) + strings.Repeat(" ", colGap) +
		pad("Genre", genreWidth) + strings.Repeat(" ", colGap) +
		pad("Year", colYearWidth) + strings.Repeat(" ", colGap) +
		pad("Pages", colPagesWidth) + strings.Repeat(" ", colGap) +
		pad("Language", langWidth) + strings.Repeat(" ", colGap) +
		pad("Status", colStatusWidth)
	b.WriteString(styles.FaintText.Bold(true).Render(" " + header))
	b.WriteString("\n")

	for i, book := range derived.Paginated {
		b.WriteString(m.renderRow(book, i == m.selectedRow))
		b.WriteString("\n")
	}

	// Pad so the footer lands on the bottom line.
	rows := len(derived.Paginated) + 1
	for rows < contentHeight {
		b.WriteString("\n")
		rows++
	}

	b.WriteString(m.renderFooter(derived))
	return b.String()
}

// renderRow formats one book row.
func (m Model) renderRow(book catalog.Book, selected bool) string {
	styles := m.theme.Styles()
	titleWidth, authorWidth, genreWidth, langWidth := m.columnWidths()

	year := ""
	if book.PublishedYear > 0 {
		year = strconv.Itoa(book.PublishedYear)
	}
	pages := ""
	if book.Pages > 0 {
		pages = strconv.Itoa(book.Pages)
	}

	gap := strings.Repeat(" ", colGap)
	row := pad(book.Title, titleWidth) + gap +
		pad(book.Author, authorWidth) + gap +
		pad(book.Genre, genreWidth) + gap +
		pad(year, colYearWidth) + gap +
		pad(pages, colPagesWidth) + gap +
		pad(book.Language, langWidth) + gap

	if selected {
		return styles.Selected.Width(m.width).Render(" " + row + pad(book.StatusLabel(), colStatusWidth))
	}

	status := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.StatusColor(book.Available))).
		Render(pad(book.StatusLabel(), colStatusWidth))
	return styles.Text.Render(" "+row) + status
}

// renderFooter renders the pagination line.
func (m Model) renderFooter(derived view.View) string {
	styles := m.theme.Styles()

	left := " "
	if derived.Page > 1 {
		left += "← "
	} else {
		left += "  "
	}
	pageInfo := fmt.Sprintf("Page %d/%d", derived.Page, derived.TotalPages)
	right := ""
	if derived.Page < derived.TotalPages {
		right = " →"
	}

	count := fmt.Sprintf("%d of %d books", len(derived.Filtered), len(m.snapshot.Books))

	line := styles.MutedText.Render(left) +
		styles.Text.Render(pageInfo) +
		styles.MutedText.Render(right+"  ·  "+count)
	return styles.Header.Width(m.width).Render(line)
}

// columnWidths computes the flexible column widths for the current terminal
// width.
func (m Model) columnWidths() (title, author, genre, lang int) {
	fixed := colYearWidth + colPagesWidth + colStatusWidth + 6*colGap + 2
	flex := m.width - fixed
	if flex < 40 {
		flex = 40
	}
	title = flex * 35 / 100
	author = flex * 25 / 100
	genre = flex * 22 / 100
	lang = flex - title - author - genre
	return title, author, genre, lang
}
