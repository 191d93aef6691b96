package calendar

import "time"

// Grid is a month laid out into weekday columns. Columns are stored in display
// order, so Weekdays[0] is the configured start of the week. Reading column i
// top to bottom yields the dates shown under Weekdays[i].
type Grid struct {
	Year     int
	Month    time.Month
	Weekdays [7]time.Weekday
	Columns  [7][]time.Time
}

// BuildGrid lays out the given month with leading days from the previous
// month and trailing days from the next one, so that every row is complete.
// startOfWeek is taken modulo 7 (0 = Sunday).
func BuildGrid(year int, month time.Month, startOfWeek int, loc *time.Location) Grid {
	if loc == nil {
		loc = time.Local
	}
	page := Cursor{Year: year, Month: month}.Normalize()
	start := ((startOfWeek % 7) + 7) % 7

	g := Grid{Year: page.Year, Month: page.Month}
	for i := range g.Weekdays {
		g.Weekdays[i] = time.Weekday((start + i) % 7)
	}

	first := page.First(loc)
	leading := (int(first.Weekday()) - start + 7) % 7
	daysInMonth := DaysIn(page.Year, page.Month)

	cells := make([]time.Time, 0, 42)
	prev := page.PreviousMonth()
	prevLast := DaysIn(prev.Year, prev.Month)
	for d := prevLast - leading + 1; d <= prevLast; d++ {
		cells = append(cells, time.Date(prev.Year, prev.Month, d, 0, 0, 0, 0, loc))
	}
	for d := 1; d <= daysInMonth; d++ {
		cells = append(cells, time.Date(page.Year, page.Month, d, 0, 0, 0, 0, loc))
	}
	next := page.NextMonth()
	for d := 1; len(cells)%7 != 0; d++ {
		cells = append(cells, time.Date(next.Year, next.Month, d, 0, 0, 0, 0, loc))
	}

	rows := len(cells) / 7
	for col := range g.Columns {
		g.Columns[col] = make([]time.Time, 0, rows)
	}
	for i, cell := range cells {
		g.Columns[i%7] = append(g.Columns[i%7], cell)
	}
	return g
}

// Column returns the dates shown under weekday w.
func (g Grid) Column(w time.Weekday) []time.Time {
	for i, wd := range g.Weekdays {
		if wd == w {
			return g.Columns[i]
		}
	}
	return nil
}

// Rows returns the number of week rows in the grid.
func (g Grid) Rows() int {
	return len(g.Columns[0])
}

// Weeks returns the grid in row-major order.
func (g Grid) Weeks() [][]time.Time {
	weeks := make([][]time.Time, g.Rows())
	for row := range weeks {
		week := make([]time.Time, 7)
		for col := range week {
			week[col] = g.Columns[col][row]
		}
		weeks[row] = week
	}
	return weeks
}

// Cells flattens the grid row by row.
func (g Grid) Cells() []time.Time {
	cells := make([]time.Time, 0, g.Rows()*7)
	for _, week := range g.Weeks() {
		cells = append(cells, week...)
	}
	return cells
}

// InMonth reports whether t belongs to the grid's own month.
func (g Grid) InMonth(t time.Time) bool {
	return t.Year() == g.Year && t.Month() == g.Month
}
