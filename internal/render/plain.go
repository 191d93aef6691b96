package render

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/lululau/datepick/internal/picker"
)

// PlainOptions controls how the non-interactive renderer behaves.
type PlainOptions struct {
	Writer io.Writer
	Picker *picker.Picker
	Width  int
}

// RunPlain renders the picker's current view exactly once, centered in the
// terminal width, followed by the selected dates.
func RunPlain(opts PlainOptions) error {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}
	if opts.Picker == nil {
		opts.Picker = picker.New()
	}

	output := Picker(opts.Picker, Options{})
	width := opts.Width
	if width == 0 {
		width = DetectWidth()
	}
	if width > lipgloss.Width(output) {
		output = lipgloss.PlaceHorizontal(width, lipgloss.Center, output)
	}
	if _, err := fmt.Fprintln(opts.Writer, output); err != nil {
		return err
	}
	_, err := fmt.Fprintln(opts.Writer, "\n"+Selection(opts.Picker.Mode(), opts.Picker.Dates()))
	return err
}

// DetectWidth tries to determine the terminal width, falling back to 100 cols.
func DetectWidth() int {
	fd := os.Stdout.Fd()
	if isatty.IsTerminal(fd) {
		if w, _, err := term.GetSize(int(fd)); err == nil {
			return w
		}
	}
	return 100
}

// ColorSupported reports whether stdout is a terminal that can show styles.
func ColorSupported() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
