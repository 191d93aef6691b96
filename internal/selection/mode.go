package selection

import (
	"fmt"
	"strings"
)

// Mode is how clicks change the selection. It is fixed per picker.
type Mode int

const (
	ModeSingle Mode = iota
	ModeMultiple
	ModeRange
)

func (m Mode) String() string {
	switch m {
	case ModeMultiple:
		return "multiple"
	case ModeRange:
		return "range"
	default:
		return "single"
	}
}

// ParseMode reads "single", "multiple" or "range". An empty string means single.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "single":
		return ModeSingle, nil
	case "multiple":
		return ModeMultiple, nil
	case "range":
		return ModeRange, nil
	}
	return ModeSingle, fmt.Errorf("unknown selection type %q (want single, multiple or range)", s)
}
