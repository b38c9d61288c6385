package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var body string
	now := time.Now()
	switch m.mode {
	case viewDetail:
		if m.detail != nil {
			body = renderDetail(*m.detail, m.detailOffset, m.width, m.height, now)
		}
	default:
		title := "Beeminder Goals Status"
		if m.showArchived {
			title = "Beeminder Archived Goals"
		}
		body = renderGoalTable(m.goals, m.selected, m.offset, m.width, m.height, now, title)
	}

	screen := m.placeFooter(body, m.footerLine())

	if m.entry != nil {
		return m.entry.View(m.width, m.height)
	}
	if m.overlay != "" {
		box := CurrentTheme.PromptFrame.Render(
			CurrentTheme.ErrorText.Render(m.overlay) + "\n\n" + CurrentTheme.Dim.Render("Press any key to continue..."))
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return screen
}

// footerLine builds the key hint footer for the active view.
func (m Model) footerLine() string {
	footer := "↑↓: Navigate | " + m.registry.HelpForView(m.mode)
	if m.mode == viewDetail {
		footer = "↑↓: Scroll | " + m.registry.HelpForView(m.mode)
	}
	if m.loading {
		footer = m.spinner.View() + " " + footer
	}
	return CurrentTheme.Footer.Render(footer)
}

// placeFooter pins the footer to the last screen row, padding the body
// with blank lines as needed.
func (m Model) placeFooter(body, footer string) string {
	lines := strings.Count(body, "\n")
	var b strings.Builder
	b.WriteString(body)
	for i := lines; i < m.height-1; i++ {
		b.WriteString("\n")
	}
	b.WriteString(footer)
	return b.String()
}
