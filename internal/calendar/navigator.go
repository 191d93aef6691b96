package calendar

import "time"

// View is the level the calendar is currently browsing.
type View int

const (
	ViewDays View = iota
	ViewMonths
	ViewYears
)

// YearWindowSize is the number of years shown by the year picker.
const YearWindowSize = 12

func (v View) String() string {
	switch v {
	case ViewMonths:
		return "months"
	case ViewYears:
		return "years"
	default:
		return "days"
	}
}

// YearWindow is the inclusive range of years offered in the year view.
type YearWindow struct {
	Start int
	End   int
}

// Years lists every year in the window.
func (w YearWindow) Years() []int {
	years := make([]int, 0, YearWindowSize)
	for y := w.Start; y <= w.End; y++ {
		years = append(years, y)
	}
	return years
}

// Contains reports whether year falls inside the window.
func (w YearWindow) Contains(year int) bool {
	return year >= w.Start && year <= w.End
}

func windowAround(year int) YearWindow {
	return YearWindow{Start: year - 4, End: year + 7}
}

// Navigator owns the displayed page and the days/months/years view state.
type Navigator struct {
	cursor Cursor
	view   View
	window *YearWindow
}

// NewNavigator starts in day view on the given page.
func NewNavigator(c Cursor) *Navigator {
	return &Navigator{cursor: c.Normalize(), view: ViewDays}
}

// Cursor returns the displayed page.
func (n *Navigator) Cursor() Cursor {
	return n.cursor
}

// View returns the active view.
func (n *Navigator) View() View {
	return n.view
}

// SetView switches to v. Selecting the active months or years view again
// returns to day view.
func (n *Navigator) SetView(v View) {
	if v == n.view && v != ViewDays {
		n.view = ViewDays
		return
	}
	if v == ViewYears && n.view != ViewYears {
		n.window = nil
	}
	n.view = v
}

// YearWindow returns the years shown in the year view, computing it from
// the cursor on first use.
func (n *Navigator) YearWindow() YearWindow {
	if n.window == nil {
		w := windowAround(n.cursor.Year)
		n.window = &w
	}
	return *n.window
}

// Prev pages backwards one unit of the active view.
func (n *Navigator) Prev() {
	switch n.view {
	case ViewMonths:
		n.cursor = n.cursor.PreviousYear()
	case ViewYears:
		cur := n.YearWindow()
		end := cur.Start - 1
		n.window = &YearWindow{Start: end - YearWindowSize + 1, End: end}
	default:
		n.cursor = n.cursor.PreviousMonth()
	}
}

// Next pages forwards one unit of the active view.
func (n *Navigator) Next() {
	switch n.view {
	case ViewMonths:
		n.cursor = n.cursor.NextYear()
	case ViewYears:
		cur := n.YearWindow()
		start := cur.End + 1
		n.window = &YearWindow{Start: start, End: start + YearWindowSize - 1}
	default:
		n.cursor = n.cursor.NextMonth()
	}
}

// PickMonth sets the cursor month and returns to day view.
func (n *Navigator) PickMonth(m time.Month) {
	n.cursor = Cursor{Year: n.cursor.Year, Month: m}.Normalize()
	n.view = ViewDays
}

// PickYear sets the cursor year and returns to day view.
func (n *Navigator) PickYear(year int) {
	n.cursor.Year = year
	n.view = ViewDays
}

// GoTo moves the cursor to c without changing the view.
func (n *Navigator) GoTo(c Cursor) {
	n.cursor = c.Normalize()
}
