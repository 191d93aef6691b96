// Package constraint decides which days may be selected.
package constraint

import (
	"errors"
	"time"

	"github.com/lululau/datepick/internal/calendar"
)

var (
	// ErrInvalidBound indicates a bound without a usable timestamp.
	ErrInvalidBound = errors.New("bound is not a valid date")
	// ErrInvertedBounds indicates min would end up after max.
	ErrInvertedBounds = errors.New("min date must not be after max date")
)

// Evaluator holds the min/max bounds and the disabled day set. The zero value
// allows every date.
type Evaluator struct {
	min      time.Time
	max      time.Time
	hasMin   bool
	hasMax   bool
	disabled map[dayKey]time.Time
}

type dayKey struct {
	year  int
	month time.Month
	day   int
}

func keyOf(t time.Time) dayKey {
	y, m, d := t.Date()
	return dayKey{year: y, month: m, day: d}
}

// SetMin sets the lower bound. The previous bound is kept when min is invalid
// or later than the current max.
func (e *Evaluator) SetMin(min time.Time) error {
	if !calendar.IsValid(min) {
		return ErrInvalidBound
	}
	if e.hasMax && calendar.CompareInstant(min, e.max) > 0 {
		return ErrInvertedBounds
	}
	e.min, e.hasMin = min, true
	return nil
}

// SetMax sets the upper bound. The previous bound is kept when max is invalid
// or earlier than the current min.
func (e *Evaluator) SetMax(max time.Time) error {
	if !calendar.IsValid(max) {
		return ErrInvalidBound
	}
	if e.hasMin && calendar.CompareInstant(max, e.min) < 0 {
		return ErrInvertedBounds
	}
	e.max, e.hasMax = max, true
	return nil
}

// ClearMin removes the lower bound.
func (e *Evaluator) ClearMin() {
	e.min, e.hasMin = time.Time{}, false
}

// ClearMax removes the upper bound.
func (e *Evaluator) ClearMax() {
	e.max, e.hasMax = time.Time{}, false
}

// Min returns the lower bound, if any.
func (e *Evaluator) Min() (time.Time, bool) {
	return e.min, e.hasMin
}

// Max returns the upper bound, if any.
func (e *Evaluator) Max() (time.Time, bool) {
	return e.max, e.hasMax
}

// SetDisabled replaces the disabled day set.
func (e *Evaluator) SetDisabled(dates []time.Time) {
	set := make(map[dayKey]time.Time, len(dates))
	for _, d := range dates {
		if calendar.IsValid(d) {
			set[keyOf(d)] = calendar.StartOfDay(d)
		}
	}
	e.disabled = set
}

// Disabled returns the disabled days in no particular order.
func (e *Evaluator) Disabled() []time.Time {
	out := make([]time.Time, 0, len(e.disabled))
	for _, d := range e.disabled {
		out = append(out, d)
	}
	return out
}

// IsDisabled reports whether date falls outside the bounds or on a disabled
// day. Bounds compare full timestamps and are inclusive.
func (e *Evaluator) IsDisabled(date time.Time) bool {
	if e.hasMin && calendar.CompareInstant(date, e.min) < 0 {
		return true
	}
	if e.hasMax && calendar.CompareInstant(date, e.max) > 0 {
		return true
	}
	_, off := e.disabled[keyOf(date)]
	return off
}
