package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/strickvl/beemind/internal/config"
	"github.com/strickvl/beemind/internal/models"
)

// FormatDate renders a Unix timestamp as a local date, "N/A" when absent.
func FormatDate(ts *int64) string {
	if ts == nil {
		return "N/A"
	}
	return time.Unix(*ts, 0).Format("2006-01-02 15:04")
}

// FormatTimeLeft renders the remaining time until the lose date. Past
// deadlines render "EXPIRED"; precision degrades with distance: days and
// hours, then hours and minutes, then minutes alone.
func FormatTimeLeft(loseDate *int64, now time.Time) string {
	if loseDate == nil {
		return "N/A"
	}
	left := time.Unix(*loseDate, 0).Sub(now)
	if left < 0 {
		return "EXPIRED"
	}
	days := int(left.Hours()) / 24
	hours := int(left.Hours()) % 24
	minutes := int(left.Minutes()) % 60
	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}

// StatusOf derives the single displayed status from the goal's flags.
// The flags are not mutually exclusive in the data; display priority is
// lost, then won, then frozen.
func StatusOf(g models.Goal) string {
	if g.Lost {
		return "LOST"
	}
	if g.Won {
		return "WON"
	}
	if g.Frozen {
		return "FROZEN"
	}
	return "ACTIVE"
}

// truncateCell fits text into a fixed-width table cell: long values are
// cut to width-3 runes plus "...", short values are padded with spaces.
func truncateCell(text string, width int) string {
	runes := []rune(text)
	if len(runes) <= width {
		return text + strings.Repeat(" ", width-len(runes))
	}
	return string(runes[:width-len(config.TruncationSuffix)]) + config.TruncationSuffix
}

// padCell left-justifies pre-formatted text without truncation. Values
// wider than the cell are left as-is.
func padCell(text string, width int) string {
	if len(text) >= width {
		return text
	}
	return text + strings.Repeat(" ", width-len(text))
}
