package picker

import (
	"fmt"
	"time"

	"github.com/lululau/datepick/internal/calendar"
	"github.com/lululau/datepick/internal/constraint"
	"github.com/lululau/datepick/internal/locale"
	"github.com/lululau/datepick/internal/normalize"
	"github.com/lululau/datepick/internal/selection"
	"github.com/lululau/datepick/internal/tooltip"
)

// SetValue replaces the selection with value, which may be a CSV string, a
// time.Time, a []time.Time or a []string. Unparseable tokens are dropped.
// A value whose length does not suit the mode is rejected and the previous
// selection kept. The picker pages to the first assigned date.
func (p *Picker) SetValue(value any) error {
	res, err := p.norm.Normalize(value)
	if err != nil {
		p.warn("value", value, err, "value rejected")
		return err
	}
	p.warnDropped("value", res.Dropped)
	if err := normalize.Validate(p.mode, res.Dates); err != nil {
		p.warn("value", value, err, "value does not fit selection type")
		return fmt.Errorf("%w: %w", selection.ErrArity, err)
	}
	if err := p.engine.Replace(p.inLocation(res.Dates)); err != nil {
		p.warn("value", value, err, "value rejected")
		return err
	}
	if dates := p.engine.Dates(); len(dates) > 0 {
		p.nav.GoTo(calendar.CursorOf(dates[0].In(p.loc)))
	}
	p.refresh()
	p.emit(EventDatesChanged)
	return nil
}

// SetMinDate sets the earliest selectable instant. nil or "" removes the
// bound. An invalid value or one after the current max is rejected.
func (p *Picker) SetMinDate(value any) error {
	return p.setBound("min-date", value, p.bounds.SetMin, p.bounds.ClearMin)
}

// SetMaxDate sets the latest selectable instant. nil or "" removes the
// bound. An invalid value or one before the current min is rejected.
func (p *Picker) SetMaxDate(value any) error {
	return p.setBound("max-date", value, p.bounds.SetMax, p.bounds.ClearMax)
}

func (p *Picker) setBound(property string, value any, set func(time.Time) error, clear func()) error {
	if value == nil || value == "" {
		clear()
		return nil
	}
	bound, err := p.parseBound(value)
	if err == nil {
		err = set(bound)
	}
	if err != nil {
		p.warn(property, value, err, "bound rejected")
		return err
	}
	return nil
}

func (p *Picker) parseBound(value any) (time.Time, error) {
	res, err := p.norm.Normalize(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", constraint.ErrInvalidBound, err)
	}
	if len(res.Dates) != 1 || len(res.Dropped) > 0 {
		return time.Time{}, constraint.ErrInvalidBound
	}
	return res.Dates[0], nil
}

// SetDisabledDates replaces the set of days that may not be selected.
// value is a CSV string or a date slice.
func (p *Picker) SetDisabledDates(value any) error {
	res, err := p.norm.Normalize(value)
	if err != nil {
		p.warn("disabled-dates", value, err, "disabled dates rejected")
		return err
	}
	p.warnDropped("disabled-dates", res.Dropped)
	p.bounds.SetDisabled(p.inLocation(res.Dates))
	return nil
}

// SetStartOfWeek sets the first grid column (0 = Sunday).
func (p *Picker) SetStartOfWeek(day int) error {
	if day < 0 || day > 6 {
		p.warn("start-of-week", day, ErrStartOfWeek, "start of week rejected")
		return ErrStartOfWeek
	}
	p.startOfWeek = day
	p.refresh()
	return nil
}

// StartOfWeek returns the first grid column.
func (p *Picker) StartOfWeek() int {
	return p.startOfWeek
}

// SetLocale changes the language of month and weekday names.
func (p *Picker) SetLocale(tag string) {
	p.localeTag = tag
	p.names = locale.Lookup(tag)
}

// Names returns the active display names.
func (p *Picker) Names() locale.Names {
	return p.names
}

// SetTooltips rebuilds the tooltip index from entries.
func (p *Picker) SetTooltips(entries []tooltip.Entry) {
	p.tooltips = tooltip.Build(entries, p.norm)
}

// inLocation moves dates into the picker's zone so day-level comparisons
// agree with the grid.
func (p *Picker) inLocation(dates []time.Time) []time.Time {
	out := make([]time.Time, len(dates))
	for i, d := range dates {
		out[i] = d.In(p.loc)
	}
	return out
}

// Parse reads a date token in the picker's location.
func (p *Picker) Parse(token string) (time.Time, error) {
	return p.norm.Parse(token)
}

func (p *Picker) warn(property string, value any, err error, msg string) {
	p.log.WithFields(map[string]any{
		"property": property,
		"value":    fmt.Sprint(value),
		"type":     p.mode.String(),
	}).Warn(err, msg)
}

func (p *Picker) warnDropped(property string, dropped []string) {
	if len(dropped) == 0 {
		return
	}
	p.log.WithFields(map[string]any{
		"property": property,
		"tokens":   dropped,
	}).Debug("dropped unparseable date tokens")
}
