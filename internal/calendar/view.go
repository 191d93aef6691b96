package calendar

import (
	"fmt"
	"time"
)

// Day is a single grid cell with the flags the renderer needs.
type Day struct {
	Date       time.Time
	InMonth    bool
	IsToday    bool
	Selected   bool
	RangeStart bool
	RangeEnd   bool
	InRange    bool
	Disabled   bool
	Tooltip    string
}

// Label is the text shown in the cell.
func (d Day) Label() string {
	return fmt.Sprintf("%2d", d.Date.Day())
}

// MonthView describes a month laid out into weeks along with the weekday
// headers in display order.
type MonthView struct {
	Cursor   Cursor
	Title    string
	Headers  []string
	Weekdays [7]time.Weekday
	Weeks    [][]Day
}

// Days flattens the weeks row by row.
func (v MonthView) Days() []Day {
	days := make([]Day, 0, len(v.Weeks)*7)
	for _, week := range v.Weeks {
		days = append(days, week...)
	}
	return days
}
