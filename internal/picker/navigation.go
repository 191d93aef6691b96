package picker

import (
	"time"

	"github.com/lululau/datepick/internal/calendar"
)

// Cursor returns the page on display.
func (p *Picker) Cursor() calendar.Cursor {
	return p.nav.Cursor()
}

// View returns the active view.
func (p *Picker) View() calendar.View {
	return p.nav.View()
}

// YearWindow returns the years offered by the year view.
func (p *Picker) YearWindow() calendar.YearWindow {
	return p.nav.YearWindow()
}

// SetView switches views; choosing the active months or years view again
// returns to days.
func (p *Picker) SetView(v calendar.View) {
	p.nav.SetView(v)
}

// Prev pages back by a month, a year or a year window depending on the view.
func (p *Picker) Prev() {
	p.nav.Prev()
	p.refresh()
}

// Next pages forward by a month, a year or a year window depending on the view.
func (p *Picker) Next() {
	p.nav.Next()
	p.refresh()
}

// PickMonth shows month m of the current year in day view.
func (p *Picker) PickMonth(m time.Month) {
	p.nav.PickMonth(m)
	p.refresh()
}

// PickYear shows the current month of year in day view.
func (p *Picker) PickYear(year int) {
	p.nav.PickYear(year)
	p.refresh()
}

// Today pages to the current month in day view.
func (p *Picker) Today() {
	p.nav.GoTo(calendar.CursorOf(p.today()))
	if v := p.nav.View(); v != calendar.ViewDays {
		p.nav.SetView(v)
	}
	p.refresh()
}

// GoTo pages to c without touching the selection.
func (p *Picker) GoTo(c calendar.Cursor) {
	p.nav.GoTo(c)
	p.refresh()
}

// Grid lays out the page on display.
func (p *Picker) Grid() calendar.Grid {
	c := p.nav.Cursor()
	return calendar.BuildGrid(c.Year, c.Month, p.startOfWeek, p.loc)
}

// MonthView builds the rendering snapshot of the page on display.
func (p *Picker) MonthView() calendar.MonthView {
	g := p.Grid()
	c := p.nav.Cursor()
	now := p.today()
	start, end, isRange := p.engine.Range()

	view := calendar.MonthView{
		Cursor:   c,
		Title:    p.names.Title(c.Year, c.Month),
		Weekdays: g.Weekdays,
		Headers:  make([]string, len(g.Weekdays)),
	}
	for i, wd := range g.Weekdays {
		view.Headers[i] = p.names.Weekday(wd)
	}
	for _, week := range g.Weeks() {
		row := make([]calendar.Day, len(week))
		for i, d := range week {
			tip, _ := p.tooltips.Lookup(d)
			row[i] = calendar.Day{
				Date:       d,
				InMonth:    g.InMonth(d),
				IsToday:    calendar.SameDay(d, now),
				Selected:   p.engine.Contains(d),
				RangeStart: isRange && calendar.SameDay(d, start),
				RangeEnd:   isRange && calendar.SameDay(d, end),
				InRange:    p.highlighted.Has(d),
				Disabled:   p.bounds.IsDisabled(d),
				Tooltip:    tip,
			}
		}
		view.Weeks = append(view.Weeks, row)
	}
	return view
}
