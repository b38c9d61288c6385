package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/strickvl/beemind/internal/models"
	"github.com/strickvl/beemind/internal/util"
)

func TestStatusPriority(t *testing.T) {
	cases := []struct {
		lost, won, frozen bool
		want              string
	}{
		{false, false, false, "ACTIVE"},
		{false, false, true, "FROZEN"},
		{false, true, false, "WON"},
		{false, true, true, "WON"},
		{true, false, false, "LOST"},
		{true, true, false, "LOST"},
		{true, false, true, "LOST"},
		{true, true, true, "LOST"},
	}
	for _, c := range cases {
		g := models.Goal{Lost: c.lost, Won: c.won, Frozen: c.frozen}
		if got := StatusOf(g); got != c.want {
			t.Errorf("StatusOf(lost=%v won=%v frozen=%v) = %q, want %q", c.lost, c.won, c.frozen, got, c.want)
		}
	}
}

func TestFormatTimeLeft(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	cases := []struct {
		name   string
		offset int64 // seconds relative to now
		want   string
	}{
		{"one second past", -1, "EXPIRED"},
		{"one day one hour", 90000, "1d 1h"},
		{"ninety minutes", 5400, "1h 30m"},
		{"two minutes", 120, "2m"},
		{"zero", 0, "0m"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ts := now.Unix() + c.offset
			if got := FormatTimeLeft(&ts, now); got != c.want {
				t.Errorf("FormatTimeLeft(now%+d) = %q, want %q", c.offset, got, c.want)
			}
		})
	}
	if got := FormatTimeLeft(nil, now); got != "N/A" {
		t.Errorf("FormatTimeLeft(nil) = %q, want N/A", got)
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(nil); got != "N/A" {
		t.Errorf("FormatDate(nil) = %q, want N/A", got)
	}
	ts := time.Date(2024, 3, 15, 9, 30, 0, 0, time.Local).Unix()
	if got := FormatDate(util.Ptr(ts)); got != "2024-03-15 09:30" {
		t.Errorf("FormatDate = %q, want 2024-03-15 09:30", got)
	}
}

func TestTruncateCellLongValue(t *testing.T) {
	title := strings.Repeat("x", 30)
	got := truncateCell(title, 25)
	if len(got) != 25 {
		t.Fatalf("len = %d, want 25", len(got))
	}
	want := strings.Repeat("x", 22) + "..."
	if got != want {
		t.Errorf("truncateCell = %q, want %q", got, want)
	}
}

func TestTruncateCellShortValuePads(t *testing.T) {
	got := truncateCell("abc", 10)
	if got != "abc       " {
		t.Errorf("truncateCell = %q, want %q", got, "abc       ")
	}
}

func TestTruncateCellExactWidth(t *testing.T) {
	text := strings.Repeat("y", 15)
	if got := truncateCell(text, 15); got != text {
		t.Errorf("truncateCell = %q, want unchanged", got)
	}
}
