// Package normalize turns the value representations a host may assign
// (CSV strings, single dates, date slices) into an ordered date slice.
package normalize

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lululau/datepick/internal/calendar"
	"github.com/lululau/datepick/internal/selection"
)

// ErrUnsupportedValue indicates a value of a type the normalizer cannot read.
var ErrUnsupportedValue = errors.New("unsupported date value")

// Layouts are tried in order when parsing a single token.
var Layouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006/01/02",
	"01/02/2006",
	"Jan 2 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"January 2, 2006",
}

// Result is the outcome of a normalization. Dropped lists the tokens that
// could not be parsed, in input order.
type Result struct {
	Dates   []time.Time
	Dropped []string
}

// Normalizer parses dates relative to a location.
type Normalizer struct {
	Location *time.Location
}

// Zone returns the location tokens are read in, time.Local when unset.
func (n Normalizer) Zone() *time.Location {
	if n.Location == nil {
		return time.Local
	}
	return n.Location
}

// Parse reads a single date token.
func (n Normalizer) Parse(token string) (time.Time, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return time.Time{}, fmt.Errorf("empty date token")
	}
	loc := n.Zone()
	for _, layout := range Layouts {
		if t, err := time.ParseInLocation(layout, token, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as a date", token)
}

// ParseCSV splits s on commas and parses every token, keeping input order.
// Blank and unparseable tokens are dropped.
func (n Normalizer) ParseCSV(s string) Result {
	var res Result
	for _, token := range strings.Split(s, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		t, err := n.Parse(token)
		if err != nil {
			res.Dropped = append(res.Dropped, token)
			continue
		}
		res.Dates = append(res.Dates, t)
	}
	return res
}

// Normalize converts value into an ordered date slice. Accepted inputs are
// nil, string (CSV), time.Time, []time.Time and []string. Invalid dates are
// filtered out; valid ones pass through unchanged.
func (n Normalizer) Normalize(value any) (Result, error) {
	switch v := value.(type) {
	case nil:
		return Result{}, nil
	case string:
		return n.ParseCSV(v), nil
	case time.Time:
		if !calendar.IsValid(v) {
			return Result{}, nil
		}
		return Result{Dates: []time.Time{v}}, nil
	case *time.Time:
		if v == nil {
			return Result{}, nil
		}
		return n.Normalize(*v)
	case []time.Time:
		res := Result{Dates: make([]time.Time, 0, len(v))}
		for _, t := range v {
			if calendar.IsValid(t) {
				res.Dates = append(res.Dates, t)
			}
		}
		return res, nil
	case []string:
		var res Result
		for _, s := range v {
			part := n.ParseCSV(s)
			res.Dates = append(res.Dates, part.Dates...)
			res.Dropped = append(res.Dropped, part.Dropped...)
		}
		return res, nil
	default:
		return Result{}, fmt.Errorf("%w: %T", ErrUnsupportedValue, value)
	}
}

// ArityError reports a value whose length does not suit the selection mode.
type ArityError struct {
	Mode  selection.Mode
	Count int
}

func (e *ArityError) Error() string {
	switch e.Mode {
	case selection.ModeSingle:
		return fmt.Sprintf("%s mode accepts at most one date, got %d", e.Mode, e.Count)
	case selection.ModeRange:
		return fmt.Sprintf("%s mode expects exactly two dates, got %d", e.Mode, e.Count)
	default:
		return fmt.Sprintf("%s mode rejected %d dates", e.Mode, e.Count)
	}
}

// Validate checks that dates has a length the mode can hold. It never
// modifies dates; callers decide what to do with a mismatch.
func Validate(mode selection.Mode, dates []time.Time) error {
	switch mode {
	case selection.ModeSingle:
		if len(dates) > 1 {
			return &ArityError{Mode: mode, Count: len(dates)}
		}
	case selection.ModeRange:
		if len(dates) > 0 && len(dates) != 2 {
			return &ArityError{Mode: mode, Count: len(dates)}
		}
	}
	return nil
}
