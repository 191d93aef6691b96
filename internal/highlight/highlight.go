// Package highlight computes the days shown between two range endpoints.
package highlight

import (
	"time"

	"github.com/lululau/datepick/internal/calendar"
)

// Between returns the cells strictly after start and strictly before end,
// preserving the order of cells. It returns nil when start is not before end.
func Between(start, end time.Time, cells []time.Time) []time.Time {
	if calendar.CompareInstant(start, end) >= 0 {
		return nil
	}
	var out []time.Time
	for _, c := range cells {
		if calendar.CompareInstant(c, start) > 0 && calendar.CompareInstant(c, end) < 0 {
			out = append(out, c)
		}
	}
	return out
}

// Set answers day-level membership queries for highlighted cells.
type Set map[[3]int]struct{}

// NewSet indexes dates by day.
func NewSet(dates []time.Time) Set {
	s := make(Set, len(dates))
	for _, d := range dates {
		s[key(d)] = struct{}{}
	}
	return s
}

// Has reports whether t's day is in the set.
func (s Set) Has(t time.Time) bool {
	_, ok := s[key(t)]
	return ok
}

func key(t time.Time) [3]int {
	y, m, d := t.Date()
	return [3]int{y, int(m), d}
}
