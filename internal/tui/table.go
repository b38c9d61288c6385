package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/strickvl/beemind/internal/config"
	"github.com/strickvl/beemind/internal/models"
	"github.com/strickvl/beemind/internal/util"
)

// navigateList applies one up/down key to the (selected, offset) pair.
// Selection clamps at the collection boundaries; the offset moves by the
// minimum amount needed to keep the selected row inside the viewport.
func navigateList(key string, listLen, viewportHeight, selected, offset int) (int, int) {
	if listLen == 0 {
		return 0, 0
	}
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	switch key {
	case "up", "k":
		if selected > 0 {
			selected--
		}
	case "down", "j":
		if selected < listLen-1 {
			selected++
		}
	}
	if selected < offset {
		offset = selected
	}
	if selected >= offset+viewportHeight {
		offset = selected - viewportHeight + 1
	}
	return selected, offset
}

// clampSelection revalidates indices after the collection is replaced.
// A shrunken collection must never leave the selection or offset past the
// new bounds.
func clampSelection(listLen, viewportHeight, selected, offset int) (int, int) {
	if listLen == 0 {
		return 0, 0
	}
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	selected = util.Clamp(selected, 0, listLen-1)
	offset = util.Clamp(offset, 0, selected)
	if selected >= offset+viewportHeight {
		offset = selected - viewportHeight + 1
	}
	return selected, offset
}

// goalRowCells formats one goal into the fixed table columns.
func goalRowCells(g models.Goal, now time.Time) []string {
	w := config.ColumnWidths
	return []string{
		truncateCell(g.Slug, w[0]),
		truncateCell(g.Title, w[1]),
		padCell(fmt.Sprintf("%.1f", g.CurVal), w[2]),
		padCell(fmt.Sprintf("%.1f", g.GoalVal), w[3]),
		padCell(FormatDate(g.LoseDate), w[4]),
		padCell(FormatTimeLeft(g.LoseDate, now), w[5]),
		padCell(FormatDate(g.UpdatedAt), w[6]),
		padCell(StatusOf(g), w[7]),
	}
}

// renderGoalTable draws the list view: centered title, bold header,
// separator, and one row per goal inside the scroll window. The selected
// row is rendered inverted.
func renderGoalTable(goals []models.Goal, selected, offset, width, height int, now time.Time, title string) string {
	var b strings.Builder
	gap := strings.Repeat(" ", config.ColumnGap)
	margin := strings.Repeat(" ", config.TableLeftMargin)

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, CurrentTheme.Title.Render(title)))
	b.WriteString("\n")

	headerCells := make([]string, len(config.ColumnTitles))
	for i, t := range config.ColumnTitles {
		headerCells[i] = padCell(t, config.ColumnWidths[i])
	}
	b.WriteString(margin + CurrentTheme.Header.Render(strings.Join(headerCells, gap)))
	b.WriteString("\n")
	sepWidth := width - 2
	if sepWidth < 1 {
		sepWidth = 1
	}
	b.WriteString(" " + strings.Repeat("─", sepWidth))
	b.WriteString("\n")

	viewportHeight := height - config.TableHeaderRows - config.FooterReserve
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	end := offset + viewportHeight
	if end > len(goals) {
		end = len(goals)
	}
	for i := offset; i < end; i++ {
		row := margin + strings.Join(goalRowCells(goals[i], now), gap)
		if i == selected {
			b.WriteString(CurrentTheme.SelectedRow.Render(row))
		} else {
			b.WriteString(CurrentTheme.Row.Render(row))
		}
		b.WriteString("\n")
	}
	return b.String()
}
