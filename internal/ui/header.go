package ui

import (
	"fmt"
	"strings"

	"github.com/stacksapp/stacks/internal/view"
)

// renderHeader renders the status bar: logo, catalog counts, active filters,
// sort mode, refresh timestamp, and any transient notice.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	parts := []string{
		styles.Logo.Render("stacks"),
	}

	if m.snapshot.Loaded {
		parts = append(parts, styles.MutedText.Render("Books:")+" "+
			styles.Text.Render(fmt.Sprintf("%d", len(m.snapshot.Books))))
	}

	if m.searching {
		parts = append(parts, m.searchInput.View())
	} else if summary := m.filterSummary(); summary != "" {
		parts = append(parts, styles.AccentText.Render(summary))
	}

	if m.sortMode != view.SortNone {
		parts = append(parts, styles.MutedText.Render("sort:")+styles.Text.Render(m.sortMode.Label()))
	}

	if m.pending {
		parts = append(parts, m.spinner.View())
	}

	if ts := relativeTime(m.snapshot.LastUpdated); ts != "" {
		parts = append(parts, styles.FaintText.Render(ts))
	}

	switch m.noticeKind {
	case noticeSuccess:
		parts = append(parts, styles.SuccessText.Render(m.notice))
	case noticeError:
		parts = append(parts, styles.DangerText.Render(m.notice))
	}

	if m.snapshot.Loaded && m.snapshot.LastError != nil && m.noticeKind == noticeNone {
		parts = append(parts, styles.DangerText.Render("OFFLINE"))
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, "  "))
}

// renderCommandBar renders the key hint line under the header.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()

	hints := []string{
		"/ search",
		"g genre",
		"s status",
		"o sort",
		"←/→ page",
		"a add",
		"e edit",
		"d delete",
		"r refresh",
		"? help",
		"q quit",
	}

	var b strings.Builder
	for i, hint := range hints {
		if i > 0 {
			b.WriteString(styles.FaintText.Render("  ·  "))
		}
		key, _, _ := strings.Cut(hint, " ")
		rest := strings.TrimPrefix(hint, key+" ")
		b.WriteString(styles.AccentText.Render(key))
		b.WriteString(" ")
		b.WriteString(styles.MutedText.Render(rest))
	}

	return styles.Header.Width(m.width).Render(b.String())
}
