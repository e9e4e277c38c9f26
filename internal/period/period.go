// Package period selects the records that belong to a reporting week.
package period

import (
	"fmt"
	"strings"
	"time"

	"github.com/dotcommander/lifescore/internal/records"
)

// WeekStartDay is the convention for the first day of a week.
type WeekStartDay string

const (
	Monday WeekStartDay = "monday"
	Sunday WeekStartDay = "sunday"
)

// ParseWeekStartDay converts a config or flag value to a WeekStartDay. The
// empty string selects Monday.
func ParseWeekStartDay(s string) (WeekStartDay, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "monday", "mon":
		return Monday, nil
	case "sunday", "sun":
		return Sunday, nil
	default:
		return "", fmt.Errorf("invalid week start %q: valid values are monday, sunday", s)
	}
}

// Weekday is the weekday every week starts on.
func (d WeekStartDay) Weekday() time.Weekday {
	if d == Sunday {
		return time.Sunday
	}
	return time.Monday
}

// WeekStart returns the most recent start-of-week on or before ref.
func WeekStart(ref records.Date, d WeekStartDay) records.Date {
	offset := (int(ref.Weekday()) - int(d.Weekday()) + 7) % 7
	return ref.AddDays(-offset)
}

// Window is an inclusive seven-day range.
type Window struct {
	Start records.Date `json:"start"`
	End   records.Date `json:"end"`
}

// WindowFor returns the week containing ref.
func WindowFor(ref records.Date, d WeekStartDay) Window {
	start := WeekStart(ref, d)
	return Window{Start: start, End: start.AddDays(6)}
}

// Contains reports whether day falls inside the window, bounds included.
func (w Window) Contains(day records.Date) bool {
	return !day.Before(w.Start) && !day.After(w.End)
}

// Previous returns the window immediately before w.
func (w Window) Previous() Window {
	return Window{Start: w.Start.AddDays(-7), End: w.End.AddDays(-7)}
}

// Selection is the slice of history that feeds one week's scoring.
type Selection struct {
	Window Window
	Daily  []records.DailyRecord
	Weekly *records.WeeklyRecord
}

// Select returns the daily records dated inside ref's week, in input order,
// and the weekly record whose week-start date equals the window start. The
// weekly record is a copy; nil when none matches.
func Select(daily []records.DailyRecord, weekly []records.WeeklyRecord, ref records.Date, d WeekStartDay) Selection {
	w := WindowFor(ref, d)
	sel := Selection{Window: w}

	for _, r := range daily {
		if w.Contains(r.Date) {
			sel.Daily = append(sel.Daily, r)
		}
	}

	for _, r := range weekly {
		if r.WeekStartDate.String() == w.Start.String() {
			rec := r
			sel.Weekly = &rec
			break
		}
	}

	return sel
}
