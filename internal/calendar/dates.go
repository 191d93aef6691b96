package calendar

import "time"

// SameDay reports whether a and b fall on the same calendar day. Time of day
// and location offsets are ignored; only the year, month and day fields of
// each value are compared.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// CompareInstant orders a and b by their full timestamp. It returns -1 when a
// is before b, 1 when a is after b and 0 when they denote the same instant.
func CompareInstant(a, b time.Time) int {
	return a.Compare(b)
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	// Day 0 of the following month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// IsValid reports whether t carries a usable timestamp.
func IsValid(t time.Time) bool {
	return !t.IsZero()
}
