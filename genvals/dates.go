package genvals

import (
	"fmt"
	"time"
)

// DueDateOffsetDays - bills typically fall due 15 days after issue.
const DueDateOffsetDays = 15

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthName returns the full English month name.
func MonthName(m time.Month) string {
	return monthNames[m-1]
}

// FormatDate renders t in one of the textual day/month/year forms the
// templates use. Unknown format names fall back to DD/MM/YYYY.
func FormatDate(t time.Time, format string) string {
	day := t.Day()
	month := int(t.Month())
	year := t.Year()
	switch format {
	case "MM/DD/YYYY":
		return fmt.Sprintf("%02d/%02d/%d", month, day, year)
	case "YYYY-MM-DD":
		return fmt.Sprintf("%d-%02d-%02d", year, month, day)
	case "DD MMM YYYY":
		return fmt.Sprintf("%02d %s %d", day, MonthName(t.Month())[:3], year)
	case "MMMM YYYY":
		return fmt.Sprintf("%s %d", MonthName(t.Month()), year)
	case "DD-MM-YYYY":
		return fmt.Sprintf("%02d-%02d-%d", day, month, year)
	default: // "DD/MM/YYYY"
		return fmt.Sprintf("%02d/%02d/%d", day, month, year)
	}
}

// MonthPreset - one calendar month with its formatted boundaries.
type MonthPreset struct {
	Label string `json:"label"` // month name only, e.g. "January"
	Year  int    `json:"year"`
	Start string `json:"start"` // first day, DD/MM/YYYY
	End   string `json:"end"`   // last day, DD/MM/YYYY
}

// Period - "DD/MM/YYYY - DD/MM/YYYY"
func (p MonthPreset) Period() string {
	return p.Start + " - " + p.End
}

// DatePresets - everything date-shaped the form initializer needs,
// derived from a single "now".
type DatePresets struct {
	Today          string      `json:"today"`
	CurrentMonth   MonthPreset `json:"current_month"`
	LastMonth      MonthPreset `json:"last_month"`
	DefaultDueDate string      `json:"default_due_date"`
}

// PresetsAt derives all presets from the given clock value. Month range
// boundaries use calendar first/last-day arithmetic and roll over year
// boundaries (last month in January is December of the previous year).
func PresetsAt(now time.Time) DatePresets {
	y, m, _ := now.Date()
	loc := now.Location()

	firstOfCurrent := time.Date(y, m, 1, 0, 0, 0, 0, loc)
	lastOfCurrent := time.Date(y, m+1, 0, 0, 0, 0, 0, loc) // day 0 of next month
	firstOfLast := time.Date(y, m-1, 1, 0, 0, 0, 0, loc)
	lastOfLast := time.Date(y, m, 0, 0, 0, 0, 0, loc)

	return DatePresets{
		Today: FormatDate(now, "DD/MM/YYYY"),
		CurrentMonth: MonthPreset{
			Label: MonthName(firstOfCurrent.Month()),
			Year:  firstOfCurrent.Year(),
			Start: FormatDate(firstOfCurrent, "DD/MM/YYYY"),
			End:   FormatDate(lastOfCurrent, "DD/MM/YYYY"),
		},
		LastMonth: MonthPreset{
			Label: MonthName(firstOfLast.Month()),
			Year:  firstOfLast.Year(),
			Start: FormatDate(firstOfLast, "DD/MM/YYYY"),
			End:   FormatDate(lastOfLast, "DD/MM/YYYY"),
		},
		DefaultDueDate: FormatDate(now.Add(DueDateOffsetDays*24*time.Hour), "DD/MM/YYYY"),
	}
}

// Presets derives the presets from the wall clock.
func Presets() DatePresets {
	return PresetsAt(time.Now())
}
