package calendar

import "time"

// Grid dimensions
const (
	GridRows  = 6
	GridCells = GridRows * DaysPerWeek
)

// Month is a displayed calendar month
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing t
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// Shift moves the month by delta, letting time.Date normalise year rollover
func (m Month) Shift(delta int) Month {
	first := time.Date(m.Year, m.Month+time.Month(delta), 1, 0, 0, 0, 0, time.Local)
	return MonthOf(first)
}

// First returns local midnight of the first day of the month
func (m Month) First() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.Local)
}

// Cell is one day of the month grid
type Cell struct {
	Date     time.Time
	Key      string
	Day      int
	InMonth  bool
	IsToday  bool
	HasEntry bool
}

// Grid returns the 6x7 cells for m, starting at the Sunday on or before the
// first of the month. hasEntry may be nil.
func Grid(m Month, today time.Time, hasEntry func(date string) bool) []Cell {
	first := m.First()
	start := first.AddDate(0, 0, -int(first.Weekday()))
	todayKey := FormatDate(today)

	cells := make([]Cell, GridCells)
	for i := range cells {
		d := start.AddDate(0, 0, i)
		key := FormatDate(d)
		cells[i] = Cell{
			Date:    d,
			Key:     key,
			Day:     d.Day(),
			InMonth: d.Month() == m.Month && d.Year() == m.Year,
			IsToday: key == todayKey,
		}
		if hasEntry != nil {
			cells[i].HasEntry = hasEntry(key)
		}
	}
	return cells
}
