// Package picker is a calendar date picker instance: it owns the displayed
// page, the selection, the date constraints and the tooltip index, and
// exposes the host-facing properties and commands over them.
//
// A Picker is not safe for concurrent use.
package picker

import (
	"errors"
	"time"

	"github.com/lululau/datepick/internal/calendar"
	"github.com/lululau/datepick/internal/constraint"
	"github.com/lululau/datepick/internal/highlight"
	"github.com/lululau/datepick/internal/locale"
	"github.com/lululau/datepick/internal/logger"
	"github.com/lululau/datepick/internal/normalize"
	"github.com/lululau/datepick/internal/selection"
	"github.com/lululau/datepick/internal/tooltip"
)

// ErrStartOfWeek indicates a start-of-week outside 0..6.
var ErrStartOfWeek = errors.New("start of week must be between 0 (Sunday) and 6 (Saturday)")

// Picker is one calendar/date-picker component instance.
type Picker struct {
	mode        selection.Mode
	now         func() time.Time
	loc         *time.Location
	startOfWeek int
	localeTag   string
	names       locale.Names
	log         *logger.Logger

	nav         *calendar.Navigator
	engine      *selection.Engine
	bounds      *constraint.Evaluator
	norm        normalize.Normalizer
	tooltips    tooltip.Index
	highlighted highlight.Set
	listeners   []subscription
	nextID      int
}

// Option configures the Picker.
type Option func(*Picker)

// WithMode fixes the selection mode. The default is single.
func WithMode(m selection.Mode) Option {
	return func(p *Picker) {
		p.mode = m
	}
}

// WithNow overrides the clock, which is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(p *Picker) {
		p.now = now
	}
}

// WithLocation sets the location dates are built and parsed in.
func WithLocation(loc *time.Location) Option {
	return func(p *Picker) {
		p.loc = loc
	}
}

// WithStartOfWeek sets the first grid column; out-of-range values are ignored.
func WithStartOfWeek(day int) Option {
	return func(p *Picker) {
		if day >= 0 && day <= 6 {
			p.startOfWeek = day
		}
	}
}

// WithLocale sets the language used for month and weekday names.
func WithLocale(tag string) Option {
	return func(p *Picker) {
		p.localeTag = tag
	}
}

// WithLogger routes diagnostics to l.
func WithLogger(l *logger.Logger) Option {
	return func(p *Picker) {
		p.log = l
	}
}

// New constructs a Picker showing the current month with nothing selected.
func New(opts ...Option) *Picker {
	p := &Picker{
		now: time.Now,
		loc: time.Local,
		log: logger.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.loc == nil {
		p.loc = time.Local
	}
	if p.log == nil {
		p.log = logger.Nop()
	}
	p.names = locale.Lookup(p.localeTag)
	p.norm = normalize.Normalizer{Location: p.loc}
	p.bounds = &constraint.Evaluator{}
	p.engine = selection.NewEngine(p.mode, p.bounds)
	p.nav = calendar.NewNavigator(calendar.CursorOf(p.today()))
	return p
}

func (p *Picker) today() time.Time {
	return p.now().In(p.loc)
}

// Mode returns the selection mode, fixed at construction.
func (p *Picker) Mode() selection.Mode {
	return p.mode
}

// Location returns the location dates are built in.
func (p *Picker) Location() *time.Location {
	return p.loc
}

// Dates returns the selection in order.
func (p *Picker) Dates() []time.Time {
	return p.engine.Dates()
}

// Range returns both endpoints once a range is complete.
func (p *Picker) Range() (start, end time.Time, ok bool) {
	return p.engine.Range()
}

// IsSelected reports whether t's day is selected.
func (p *Picker) IsSelected(t time.Time) bool {
	return p.engine.Contains(t.In(p.loc))
}

// IsDisabled reports whether t may not be selected.
func (p *Picker) IsDisabled(t time.Time) bool {
	return p.bounds.IsDisabled(t.In(p.loc))
}

// InRange reports whether t lies strictly between the range endpoints on
// the visible page.
func (p *Picker) InRange(t time.Time) bool {
	return p.highlighted.Has(t)
}

// Tooltip returns the annotation for t's exact day timestamp.
func (p *Picker) Tooltip(t time.Time) (string, bool) {
	return p.tooltips.Lookup(t)
}

// Click applies a user click on date. When date is on another page, the
// picker pages there first; listeners only observe the combined result.
// Disabled dates are ignored and false is returned.
func (p *Picker) Click(date time.Time) bool {
	if !calendar.IsValid(date) {
		return false
	}
	date = date.In(p.loc)
	if p.bounds.IsDisabled(date) {
		return false
	}
	if page := calendar.CursorOf(date); page != p.nav.Cursor() {
		p.nav.GoTo(page)
	}
	if !p.engine.Select(date) {
		return false
	}
	p.refresh()
	p.emit(EventDatesChanged)
	return true
}

// Clear empties the selection and notifies listeners.
func (p *Picker) Clear() {
	p.engine.Clear()
	p.refresh()
	p.emit(EventCleared)
}

func (p *Picker) refresh() {
	start, end, ok := p.engine.Range()
	if !ok {
		p.highlighted = nil
		return
	}
	p.highlighted = highlight.NewSet(highlight.Between(start, end, p.Grid().Cells()))
}
