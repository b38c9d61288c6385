package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/strickvl/beemind/internal/models"
)

// writeGoalsReport exports the loaded goal collection as a one-page-per-
// screenful PDF status report and returns the path written.
func writeGoalsReport(goals []models.Goal, now time.Time, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Beeminder Goals Report: %s", now.Format("2006-01-02")))
	pdf.Ln(12)

	counts := map[string]int{}
	pdf.SetFont("Arial", "", 12)
	for _, g := range goals {
		status := StatusOf(g)
		counts[status]++

		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 9, fmt.Sprintf("%s (%s)", g.Slug, status))
		pdf.Ln(7)

		pdf.SetFont("Arial", "", 11)
		if g.Title != "" {
			pdf.MultiCell(0, 6, g.Title, "", "", false)
		}
		pdf.Cell(0, 6, fmt.Sprintf("  Current: %.1f / Target: %.1f", g.CurVal, g.GoalVal))
		pdf.Ln(6)
		pdf.Cell(0, 6, fmt.Sprintf("  Lose date: %s (%s)", FormatDate(g.LoseDate), FormatTimeLeft(g.LoseDate, now)))
		pdf.Ln(9)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Totals: %d goals | %d active | %d won | %d lost | %d frozen",
		len(goals), counts["ACTIVE"], counts["WON"], counts["LOST"], counts["FROZEN"]))

	path := filepath.Join(dir, fmt.Sprintf("beemind_report_%s.pdf", now.Format("2006-01-02")))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}
