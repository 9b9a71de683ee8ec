package calendar

import "time"

// DateLayout is the format of every date key in the diary
const DateLayout = "2006-01-02"

// DaysPerWeek is the number of days in a week
const DaysPerWeek = 7

// FormatDate formats t as a YYYY-MM-DD key in t's own location
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD key as local midnight
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.Local)
}

// Midnight returns the start of t's calendar day in t's location
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Today returns the date key for now
func Today(now time.Time) string {
	return FormatDate(now)
}

// AddDays shifts a date key by n calendar days. Invalid keys are returned unchanged.
func AddDays(date string, n int) string {
	t, err := ParseDate(date)
	if err != nil {
		return date
	}
	return FormatDate(t.AddDate(0, 0, n))
}

// WeekStart returns the Monday on or before t
func WeekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % DaysPerWeek
	return Midnight(t).AddDate(0, 0, -offset)
}

// WeekStartKey returns the date key of the Monday on or before t
func WeekStartKey(t time.Time) string {
	return FormatDate(WeekStart(t))
}

// WeekDays returns the seven date keys starting at start
func WeekDays(start time.Time) []string {
	days := make([]string, DaysPerWeek)
	for i := range days {
		days[i] = FormatDate(start.AddDate(0, 0, i))
	}
	return days
}
