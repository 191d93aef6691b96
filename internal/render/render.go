package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lululau/datepick/internal/calendar"
	"github.com/lululau/datepick/internal/locale"
	"github.com/lululau/datepick/internal/picker"
	"github.com/lululau/datepick/internal/selection"
	"github.com/lululau/datepick/internal/textwidth"
)

var (
	noColorMode bool // Global flag to disable all color output
)

// SetNoColor sets the global no-color flag
func SetNoColor(disable bool) {
	noColorMode = disable
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FEC260"))
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#A5B4FC"))
	cellStyle         = lipgloss.NewStyle()
	dimCellStyle      = cellStyle.Foreground(lipgloss.Color("#6B7280"))
	todayCellStyle    = cellStyle.Foreground(lipgloss.Color("#34D399")).Bold(true)
	selectedCellStyle = cellStyle.Background(lipgloss.Color("#3B82F6")).Foreground(lipgloss.Color("#F8FAFC")).Bold(true)
	rangeCellStyle    = cellStyle.Background(lipgloss.Color("#1E3A8A")).Foreground(lipgloss.Color("#E0E7FF"))
	disabledCellStyle = cellStyle.Foreground(lipgloss.Color("#475569")).Strikethrough(true)
	focusCellStyle    = cellStyle.Reverse(true)
	tooltipStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#F97316"))
	helpStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
	frameStyle        = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#475569")).
				Padding(0, 1)
)

// Options carries the interactive focus, if any.
type Options struct {
	FocusDay   time.Time
	FocusMonth time.Month
	FocusYear  int
}

// Picker renders whichever view p is showing.
func Picker(p *picker.Picker, opts Options) string {
	switch p.View() {
	case calendar.ViewMonths:
		return Months(p.Names(), p.Cursor(), opts.FocusMonth)
	case calendar.ViewYears:
		return Years(p.YearWindow(), p.Cursor(), opts.FocusYear)
	default:
		view := p.MonthView()
		body := Days(view, opts)
		if tips := Tooltips(view); tips != "" {
			body += "\n\n" + tips
		}
		return body
	}
}

// Days renders a month grid with one styled cell per day.
func Days(view calendar.MonthView, opts Options) string {
	width := 2
	for _, h := range view.Headers {
		width = max(width, textwidth.StringWidth(h))
	}

	headers := make([]string, len(view.Headers))
	for i, h := range view.Headers {
		headers[i] = " " + textwidth.Center(h, width) + " "
	}
	lines := []string{style(headerStyle, strings.Join(headers, ""))}

	for _, week := range view.Weeks {
		cells := make([]string, len(week))
		for i, day := range week {
			focused := !opts.FocusDay.IsZero() && calendar.SameDay(day.Date, opts.FocusDay)
			cells[i] = renderDay(day, width, focused)
		}
		lines = append(lines, strings.Join(cells, ""))
	}
	return frame(view.Title, strings.Join(lines, "\n"))
}

func renderDay(day calendar.Day, width int, focused bool) string {
	text := textwidth.PadLeft(day.Label(), width)
	left, right := markers(day, focused)
	if noColorMode {
		return left + text + right
	}

	s := cellStyle
	switch {
	case day.Selected || day.RangeStart || day.RangeEnd:
		s = selectedCellStyle
	case day.InRange:
		s = rangeCellStyle
	case day.Disabled:
		s = disabledCellStyle
	case day.IsToday:
		s = todayCellStyle
	case !day.InMonth:
		s = dimCellStyle
	}
	if focused {
		s = s.Inherit(focusCellStyle)
	}
	return " " + s.Render(text) + style(tooltipStyle, right)
}

// markers returns the characters printed either side of a cell. Without
// color they carry the cell state; with color only the tooltip marker is kept.
func markers(day calendar.Day, focused bool) (string, string) {
	right := " "
	if day.Tooltip != "" {
		right = "*"
	}
	if !noColorMode {
		return " ", right
	}
	switch {
	case focused:
		return ">", "<"
	case day.Selected || day.RangeStart || day.RangeEnd:
		return "[", "]"
	case day.InRange:
		return "-", "-"
	case day.Disabled:
		return "x", right
	case day.IsToday:
		return "(", ")"
	}
	return " ", right
}

// Months renders the month picker as a 4x3 grid.
func Months(names locale.Names, cursor calendar.Cursor, focus time.Month) string {
	width := 0
	for m := time.January; m <= time.December; m++ {
		width = max(width, textwidth.StringWidth(names.ShortMonth(m)))
	}
	var rows []string
	for row := 0; row < 3; row++ {
		cells := make([]string, 4)
		for col := range cells {
			m := time.Month(row*4 + col + 1)
			cells[col] = pickCell(textwidth.Center(names.ShortMonth(m), width), m == cursor.Month, m == focus)
		}
		rows = append(rows, strings.Join(cells, ""))
	}
	return frame(fmt.Sprintf("%d", cursor.Year), strings.Join(rows, "\n"))
}

// Years renders the year window as a 4x3 grid.
func Years(window calendar.YearWindow, cursor calendar.Cursor, focus int) string {
	years := window.Years()
	var rows []string
	for start := 0; start < len(years); start += 4 {
		end := min(start+4, len(years))
		cells := make([]string, 0, 4)
		for _, y := range years[start:end] {
			cells = append(cells, pickCell(textwidth.PadLeft(fmt.Sprintf("%d", y), 4), y == cursor.Year, y == focus))
		}
		rows = append(rows, strings.Join(cells, ""))
	}
	return frame(fmt.Sprintf("%d - %d", window.Start, window.End), strings.Join(rows, "\n"))
}

func pickCell(text string, current, focused bool) string {
	if noColorMode {
		switch {
		case focused:
			return " >" + text + "< "
		case current:
			return " [" + text + "] "
		}
		return "  " + text + "  "
	}
	s := cellStyle
	if current {
		s = selectedCellStyle
	}
	if focused {
		s = s.Inherit(focusCellStyle)
	}
	return "  " + s.Render(text) + "  "
}

// Tooltips lists the annotations of the in-month days of view.
func Tooltips(view calendar.MonthView) string {
	var lines []string
	for _, day := range view.Days() {
		if !day.InMonth || day.Tooltip == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("* %s  %s", day.Date.Format("01-02"), day.Tooltip))
	}
	if len(lines) == 0 {
		return ""
	}
	return style(tooltipStyle, strings.Join(lines, "\n"))
}

// Selection describes the chosen dates for a status line.
func Selection(mode selection.Mode, dates []time.Time) string {
	if len(dates) == 0 {
		return "未选择日期"
	}
	parts := make([]string, len(dates))
	for i, d := range dates {
		parts[i] = d.Format("2006-01-02")
	}
	sep := ", "
	if mode == selection.ModeRange {
		sep = " → "
	}
	return strings.Join(parts, sep)
}

// HelpLine describes the interactive key bindings.
func HelpLine() string {
	helpText := "←↓↑→/hjkl 移动  enter 选择  [ ] 翻页  m 月份  y 年份  . 今天  i 输入日期  c 清除  q 完成  esc 取消"
	return style(helpStyle, helpText)
}

func frame(title, body string) string {
	if noColorMode {
		return title + "\n\n" + body
	}
	return titleStyle.Render(title) + "\n\n" + frameStyle.Render(body)
}

func style(s lipgloss.Style, text string) string {
	if noColorMode {
		return text
	}
	return s.Render(text)
}
