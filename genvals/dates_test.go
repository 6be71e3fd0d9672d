package genvals

import (
	"testing"
	"time"
)

func TestPresetsAtMidJanuary(t *testing.T) {
	now := time.Date(2026, time.January, 15, 10, 30, 0, 0, time.UTC)
	p := PresetsAt(now)

	if p.Today != "15/01/2026" {
		t.Fatalf("today = %q", p.Today)
	}
	if p.CurrentMonth.Label != "January" || p.CurrentMonth.Year != 2026 {
		t.Fatalf("current month = %q %d", p.CurrentMonth.Label, p.CurrentMonth.Year)
	}
	// year rollover: last month in January is December of the previous year
	if p.LastMonth.Label != "December" || p.LastMonth.Year != 2025 {
		t.Fatalf("last month = %q %d", p.LastMonth.Label, p.LastMonth.Year)
	}
	if p.LastMonth.Start != "01/12/2025" || p.LastMonth.End != "31/12/2025" {
		t.Fatalf("last month range = %q - %q", p.LastMonth.Start, p.LastMonth.End)
	}
	if p.CurrentMonth.Start != "01/01/2026" || p.CurrentMonth.End != "31/01/2026" {
		t.Fatalf("current month range = %q - %q", p.CurrentMonth.Start, p.CurrentMonth.End)
	}
	// due date is exactly 15 days after today
	if p.DefaultDueDate != "30/01/2026" {
		t.Fatalf("due date = %q", p.DefaultDueDate)
	}
}

func TestPresetsAtMonthLengths(t *testing.T) {
	// leap-year February boundary
	now := time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC)
	p := PresetsAt(now)
	if p.LastMonth.End != "29/02/2024" {
		t.Fatalf("leap February end = %q", p.LastMonth.End)
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		format string
		want   string
	}{
		{"DD/MM/YYYY", "10/02/2026"},
		{"MM/DD/YYYY", "02/10/2026"},
		{"YYYY-MM-DD", "2026-02-10"},
		{"DD MMM YYYY", "10 Feb 2026"},
		{"MMMM YYYY", "February 2026"},
		{"DD-MM-YYYY", "10-02-2026"},
		{"bogus", "10/02/2026"},
	}
	for _, tc := range cases {
		if got := FormatDate(d, tc.format); got != tc.want {
			t.Fatalf("FormatDate(%s) = %q, want %q", tc.format, got, tc.want)
		}
	}
}
