// Package selection holds the selected-date state machine.
package selection

import (
	"errors"
	"fmt"
	"time"

	"github.com/lululau/datepick/internal/calendar"
)

// ErrArity indicates an assigned value that the mode cannot hold.
var ErrArity = errors.New("value does not fit the selection mode")

// Constraint reports dates that must not be selected.
type Constraint interface {
	IsDisabled(time.Time) bool
}

// Engine mutates the selected dates according to its mode.
type Engine struct {
	mode       Mode
	dates      []time.Time
	constraint Constraint
}

// NewEngine returns an empty selection. A nil constraint allows every date.
func NewEngine(mode Mode, c Constraint) *Engine {
	return &Engine{mode: mode, constraint: c}
}

// Mode returns the selection mode.
func (e *Engine) Mode() Mode {
	return e.mode
}

// Dates returns a copy of the selection in order.
func (e *Engine) Dates() []time.Time {
	out := make([]time.Time, len(e.dates))
	copy(out, e.dates)
	return out
}

// Len returns the number of selected dates.
func (e *Engine) Len() int {
	return len(e.dates)
}

// Contains reports whether the day of t is selected.
func (e *Engine) Contains(t time.Time) bool {
	return e.indexOf(t) >= 0
}

// Range returns the endpoints in range mode. ok is false until both are set.
func (e *Engine) Range() (start, end time.Time, ok bool) {
	if e.mode != ModeRange || len(e.dates) != 2 {
		return time.Time{}, time.Time{}, false
	}
	return e.dates[0], e.dates[1], true
}

// Disabled reports whether t is blocked by the constraint.
func (e *Engine) Disabled(t time.Time) bool {
	return e.constraint != nil && e.constraint.IsDisabled(t)
}

// Select applies a click on date. It returns false without changing anything
// when date is disabled.
func (e *Engine) Select(date time.Time) bool {
	if !calendar.IsValid(date) || e.Disabled(date) {
		return false
	}
	switch e.mode {
	case ModeMultiple:
		if i := e.indexOf(date); i >= 0 {
			e.dates = append(e.dates[:i:i], e.dates[i+1:]...)
		} else {
			e.dates = append(e.Dates(), date)
		}
	case ModeRange:
		e.selectRange(date)
	default:
		e.dates = []time.Time{date}
	}
	return true
}

func (e *Engine) selectRange(date time.Time) {
	switch len(e.dates) {
	case 1:
		start := e.dates[0]
		if calendar.CompareInstant(date, start) > 0 {
			e.dates = []time.Time{start, date}
		} else {
			e.dates = []time.Time{date, start}
		}
	default:
		e.dates = []time.Time{date}
	}
}

// Replace swaps in an externally assigned value. A value whose length the
// mode cannot hold is rejected and the previous selection kept. Range pairs
// are stored in order and duplicate days are dropped in multiple mode.
func (e *Engine) Replace(dates []time.Time) error {
	switch e.mode {
	case ModeSingle:
		if len(dates) > 1 {
			return fmt.Errorf("%w: %s holds at most 1 date, got %d", ErrArity, e.mode, len(dates))
		}
		e.dates = append([]time.Time(nil), dates...)
	case ModeRange:
		switch len(dates) {
		case 0:
			e.dates = nil
		case 2:
			if calendar.CompareInstant(dates[0], dates[1]) > 0 {
				e.dates = []time.Time{dates[1], dates[0]}
			} else {
				e.dates = []time.Time{dates[0], dates[1]}
			}
		default:
			return fmt.Errorf("%w: %s needs 2 dates, got %d", ErrArity, e.mode, len(dates))
		}
	default:
		next := make([]time.Time, 0, len(dates))
		for _, d := range dates {
			dup := false
			for _, have := range next {
				if calendar.SameDay(have, d) {
					dup = true
					break
				}
			}
			if !dup {
				next = append(next, d)
			}
		}
		e.dates = next
	}
	return nil
}

// Clear empties the selection.
func (e *Engine) Clear() {
	e.dates = nil
}

func (e *Engine) indexOf(t time.Time) int {
	for i, d := range e.dates {
		if calendar.SameDay(d, t) {
			return i
		}
	}
	return -1
}
