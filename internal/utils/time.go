package utils

import (
	"strings"
	"time"
)

const (
	LayoutDate    = "2006-01-02"
	LayoutDisplay = "Jan 2, 2006"
)

// ParseDate parses YYYY-MM-DD in the given location (time.Local when nil).
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(LayoutDate, strings.TrimSpace(s), loc)
}

// FormatDate formats t as YYYY-MM-DD in its own location.
func FormatDate(t time.Time) string {
	return t.Format(LayoutDate)
}

// FormatDisplayDate renders "Aug 5, 2026".
func FormatDisplayDate(t time.Time) string {
	return t.Format(LayoutDisplay)
}

// StartOfDay truncates t to midnight in its location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
