package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/strickvl/beemind/internal/config"
	"github.com/strickvl/beemind/internal/models"
	"github.com/strickvl/beemind/internal/util"
)

// detailField is one (label, value) pair in the detail pane. An empty
// value renders as "N/A".
type detailField struct {
	Label string
	Value string
}

// detailFields derives the fixed, ordered field list shown in the detail
// pane from a goal record.
func detailFields(g models.Goal, now time.Time) []detailField {
	weekendsOff := "No"
	if g.WeekendsOff {
		weekendsOff = "Yes"
	}
	return []detailField{
		{"Slug", g.Slug},
		{"Title", g.Title},
		{"Description", g.Description},
		{"Current Value", fmt.Sprintf("%.1f", g.CurVal)},
		{"Goal Value", fmt.Sprintf("%.1f", g.GoalVal)},
		{"Rate", fmt.Sprintf("%.1f", g.Rate)},
		{"Run Units", g.RUnits},
		{"Goal Units", g.GUnits},
		{"Goal Type", g.GoalType},
		{"Pledge", fmt.Sprintf("$%.2f", g.Pledge)},
		{"Lose Date", FormatDate(g.LoseDate)},
		{"Time Remaining", FormatTimeLeft(g.LoseDate, now)},
		{"Last Updated", FormatDate(g.UpdatedAt)},
		{"Status", StatusOf(g)},
		{"Auto Data", g.AutoData},
		{"Fine Print", g.FinePrint},
		{"Y-Axis", g.YAxis},
		{"Current Rate", fmt.Sprintf("%.2f", g.CurRate)},
		{"Delta", g.DeltaText},
		{"Safe Buffer", fmt.Sprintf("%d days", g.SafeBuf)},
		{"Deadline", fmt.Sprintf("%d:00", g.Deadline)},
		{"Weekends Off", weekendsOff},
		{"Tags", strings.Join(g.Tags, ", ")},
	}
}

// scrollDetail applies one up/down key to the detail scroll offset,
// clamped to [0, fieldCount-1].
func scrollDetail(key string, fieldCount, offset int) int {
	switch key {
	case "up", "k":
		offset--
	case "down", "j":
		offset++
	}
	return util.Clamp(offset, 0, max(0, fieldCount-1))
}

// renderDetail draws the detail pane: a centered title, then from the
// scroll offset onward a bold fixed-width label and the value, wrapped at
// the remaining horizontal width. Rendering stops when the row above the
// footer is reached.
func renderDetail(g models.Goal, scrollOffset, width, height int, now time.Time) string {
	var b strings.Builder
	title := fmt.Sprintf("Goal Details: %s", g.Slug)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, CurrentTheme.Title.Render(title)))
	b.WriteString("\n\n")

	valueWidth := width - config.DetailValueMargin - config.TableLeftMargin
	if valueWidth < 10 {
		valueWidth = 10
	}
	maxRows := height - 2 - config.FooterReserve
	row := 2

	fields := detailFields(g, now)
	if scrollOffset > len(fields) {
		scrollOffset = len(fields)
	}
	if scrollOffset < 0 {
		scrollOffset = 0
	}
	for _, f := range fields[scrollOffset:] {
		if row >= maxRows {
			break
		}
		label := CurrentTheme.Label.Render(padCell(f.Label+":", config.DetailLabelWidth))
		value := f.Value
		if value == "" {
			value = "N/A"
		}
		lines := strings.Split(ansi.Wrap(value, valueWidth, ""), "\n")
		for i, line := range lines {
			if row >= maxRows {
				break
			}
			if i == 0 {
				b.WriteString("  " + label + line)
			} else {
				b.WriteString("  " + strings.Repeat(" ", config.DetailLabelWidth) + line)
			}
			b.WriteString("\n")
			row++
		}
	}
	return b.String()
}
