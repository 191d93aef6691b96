package textwidth_test

import (
	"testing"

	"github.com/lululau/datepick/internal/textwidth"
)

func TestStringWidthMixedScripts(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"empty", "", 0},
		{"ascii", "Su", 2},
		{"chinese", "一月", 4},
		{"mixed", "A中", 3},
		{"multiline", "ab\n中文", 4},
		{"ansi", "\x1b[38;2;52;211;153m18\x1b[0m", 2},
		{"accented", "sá", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := textwidth.StringWidth(tt.in); got != tt.want {
				t.Fatalf("StringWidth(%q)=%d want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestPadding(t *testing.T) {
	if got := textwidth.PadRight("日", 4); got != "日  " {
		t.Fatalf("PadRight=%q", got)
	}
	if got := textwidth.PadLeft("7", 3); got != "  7" {
		t.Fatalf("PadLeft=%q", got)
	}
	if got := textwidth.Center("Mo", 5); got != " Mo  " {
		t.Fatalf("Center=%q", got)
	}
	if got := textwidth.PadRight("wide", 2); got != "wide" {
		t.Fatalf("PadRight should not truncate, got %q", got)
	}
}
