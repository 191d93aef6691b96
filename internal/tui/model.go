package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lululau/datepick/internal/calendar"
	"github.com/lululau/datepick/internal/picker"
	"github.com/lululau/datepick/internal/render"
)

var (
	noColorMode bool // Global flag to disable all color output
)

// SetNoColor sets the global no-color flag
func SetNoColor(disable bool) {
	noColorMode = disable
}

// Run starts the interactive Bubble Tea UI and returns the final selection.
func Run(p *picker.Picker) ([]time.Time, error) {
	if p == nil {
		p = picker.New()
	}
	m := newModel(p)
	prog := tea.NewProgram(m, tea.WithAltScreen())
	final, err := prog.Run()
	if err != nil {
		return nil, err
	}
	if fm, ok := final.(model); ok && fm.canceled {
		return nil, nil
	}
	return p.Dates(), nil
}

// eventMsg forwards a picker notification into the update loop.
type eventMsg picker.Event

type model struct {
	picker     *picker.Picker
	focus      time.Time
	focusMonth time.Month
	focusYear  int
	inputting  bool
	input      textinput.Model
	statusMsg  string
	events     chan picker.Event
	canceled   bool
}

func newModel(p *picker.Picker) model {
	ti := textinput.New()
	ti.Placeholder = "2024-01-05,2024-01-10"
	ti.CharLimit = 256
	ti.Prompt = "> "

	events := make(chan picker.Event, 16)
	p.Subscribe(func(ev picker.Event) {
		select {
		case events <- ev:
		default:
		}
	})

	focus := p.Cursor().First(p.Location())
	if dates := p.Dates(); len(dates) > 0 {
		focus = calendar.StartOfDay(dates[0].In(p.Location()))
	}
	return model{
		picker:     p,
		focus:      focus,
		focusMonth: p.Cursor().Month,
		focusYear:  p.Cursor().Year,
		input:      ti,
		events:     events,
	}
}

func (m model) Init() tea.Cmd {
	return m.waitForEvent
}

func (m model) waitForEvent() tea.Msg {
	return eventMsg(<-m.events)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		if msg.Kind == picker.EventCleared {
			m.statusMsg = "已清除"
		} else {
			m.statusMsg = render.Selection(m.picker.Mode(), msg.Dates)
		}
		return m, m.waitForEvent
	case tea.KeyMsg:
		if m.inputting {
			return m.handleInputKey(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.canceled = true
		return m, tea.Quit
	case "q":
		return m, tea.Quit
	case "[":
		m.picker.Prev()
		m.syncFocus()
	case "]":
		m.picker.Next()
		m.syncFocus()
	case "m":
		m.picker.SetView(calendar.ViewMonths)
		m.focusMonth = m.picker.Cursor().Month
	case "y":
		m.picker.SetView(calendar.ViewYears)
		m.focusYear = m.picker.Cursor().Year
	case ".":
		m.picker.Today()
		m.syncFocus()
	case "c":
		m.picker.Clear()
	case "i":
		m.inputting = true
		m.input.SetValue("")
		m.input.Focus()
		m.statusMsg = ""
	case "enter", " ":
		m.choose()
	case "left", "h":
		m.move(-1, -1)
	case "right", "l":
		m.move(1, 1)
	case "up", "k":
		m.move(-7, -4)
	case "down", "j":
		m.move(7, 4)
	}
	return m, nil
}

// move shifts the focus by days in day view and by cells in the pickers.
func (m *model) move(days, cells int) {
	switch m.picker.View() {
	case calendar.ViewMonths:
		next := int(m.focusMonth) + cells
		if next >= 1 && next <= 12 {
			m.focusMonth = time.Month(next)
		}
	case calendar.ViewYears:
		m.focusYear += cells
		w := m.picker.YearWindow()
		switch {
		case m.focusYear < w.Start:
			m.picker.Prev()
		case m.focusYear > w.End:
			m.picker.Next()
		}
	default:
		m.focus = m.focus.AddDate(0, 0, days)
		if page := calendar.CursorOf(m.focus); page != m.picker.Cursor() {
			m.picker.GoTo(page)
		}
	}
}

func (m *model) choose() {
	switch m.picker.View() {
	case calendar.ViewMonths:
		m.picker.PickMonth(m.focusMonth)
		m.syncFocus()
	case calendar.ViewYears:
		m.picker.PickYear(m.focusYear)
		m.syncFocus()
	default:
		if !m.picker.Click(m.focus) {
			m.statusMsg = "该日期不可选"
		}
	}
}

// syncFocus keeps the focused day on the page on display.
func (m *model) syncFocus() {
	c := m.picker.Cursor()
	if c.Contains(m.focus) {
		return
	}
	day := min(m.focus.Day(), calendar.DaysIn(c.Year, c.Month))
	m.focus = time.Date(c.Year, c.Month, day, 0, 0, 0, 0, m.picker.Location())
}

func (m model) View() string {
	if m.inputting {
		return m.inputView()
	}

	sb := strings.Builder{}
	sb.WriteString(render.Picker(m.picker, render.Options{
		FocusDay:   m.focus,
		FocusMonth: m.focusMonth,
		FocusYear:  m.focusYear,
	}))
	sb.WriteString("\n\n")
	sb.WriteString(render.HelpLine())
	if m.statusMsg != "" {
		sb.WriteString("\n")
		if noColorMode {
			sb.WriteString(m.statusMsg)
		} else {
			sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("#F97316")).Render(m.statusMsg))
		}
	}
	return sb.String()
}

func (m model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.inputting = false
		m.input.Blur()
		m.statusMsg = ""
		return m, nil
	case tea.KeyEnter:
		m.applyInput()
		return m, nil
	case tea.KeyCtrlC:
		m.canceled = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) applyInput() {
	value := strings.TrimSpace(m.input.Value())
	if value == "" {
		m.statusMsg = "请输入日期"
		return
	}
	if err := m.picker.SetValue(value); err != nil {
		m.statusMsg = err.Error()
		return
	}
	if dates := m.picker.Dates(); len(dates) > 0 {
		m.focus = calendar.StartOfDay(dates[0].In(m.picker.Location()))
	}
	m.inputting = false
	m.input.Blur()
}

func (m model) inputView() string {
	label := "输入日期，逗号分隔 (回车确认 / Esc 取消)"
	if noColorMode {
		return label + "\n\n" + m.input.View()
	}
	return lipgloss.NewStyle().
		Bold(true).
		Render(label) + "\n\n" + m.input.View()
}
