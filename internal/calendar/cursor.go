package calendar

import "time"

// Cursor is the page currently displayed in day view.
type Cursor struct {
	Year  int
	Month time.Month
}

// CursorOf returns the page containing t.
func CursorOf(t time.Time) Cursor {
	return Cursor{Year: t.Year(), Month: t.Month()}
}

// Normalize keeps the month within January..December by rolling the year value.
func (c Cursor) Normalize() Cursor {
	for c.Month > time.December {
		c.Month -= 12
		c.Year++
	}
	for c.Month < time.January {
		c.Month += 12
		c.Year--
	}
	return c
}

// NextMonth moves the cursor to the following month.
func (c Cursor) NextMonth() Cursor {
	c.Month++
	return c.Normalize()
}

// PreviousMonth moves the cursor to the preceding month.
func (c Cursor) PreviousMonth() Cursor {
	c.Month--
	return c.Normalize()
}

// NextYear moves to the following year.
func (c Cursor) NextYear() Cursor {
	c.Year++
	return c
}

// PreviousYear moves to the preceding year.
func (c Cursor) PreviousYear() Cursor {
	c.Year--
	return c
}

// Contains reports whether t falls on this page.
func (c Cursor) Contains(t time.Time) bool {
	return t.Year() == c.Year && t.Month() == c.Month
}

// First returns the first day of the page in loc.
func (c Cursor) First(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(c.Year, c.Month, 1, 0, 0, 0, 0, loc)
}
