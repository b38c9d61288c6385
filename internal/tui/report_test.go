package tui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/strickvl/beemind/internal/testutil"
)

func TestWriteGoalsReport(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.Local)

	path, err := writeGoalsReport(testutil.Goals(3), now, dir)
	if err != nil {
		t.Fatalf("writeGoalsReport: %v", err)
	}
	if filepath.Base(path) != "beemind_report_2024-06-01.pdf" {
		t.Errorf("path = %q", path)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("report file is empty")
	}
}

func TestWriteGoalsReportCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "reports")
	path, err := writeGoalsReport(testutil.Goals(1), time.Now(), dir)
	if err != nil {
		t.Fatalf("writeGoalsReport: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("report not written: %v", err)
	}
}
