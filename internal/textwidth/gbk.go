// Package textwidth measures and pads strings by terminal display columns.
package textwidth

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

var ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StringWidth returns the widest line of s in monospace columns, ignoring
// ANSI color sequences. CJK characters count as two columns.
func StringWidth(s string) int {
	widest := 0
	for _, line := range strings.Split(s, "\n") {
		widest = max(widest, lineWidth(line))
	}
	return widest
}

// PadRight appends spaces until s is width columns wide.
func PadRight(s string, width int) string {
	return s + fill(s, width)
}

// PadLeft prepends spaces until s is width columns wide.
func PadLeft(s string, width int) string {
	return fill(s, width) + s
}

// Center splits the padding around s, favouring the right side.
func Center(s string, width int) string {
	pad := fill(s, width)
	left := len(pad) / 2
	return pad[:left] + s + pad[left:]
}

func fill(s string, width int) string {
	diff := width - StringWidth(s)
	if diff <= 0 {
		return ""
	}
	return strings.Repeat(" ", diff)
}

func lineWidth(s string) int {
	clean := ansiRegexp.ReplaceAllString(s, "")
	width := 0
	for _, r := range clean {
		width += runeWidth(r)
	}
	return width
}

// runeWidth counts Latin script as one column. Anything else is measured by
// its GBK byte length; characters GBK cannot encode count as two.
func runeWidth(r rune) int {
	switch {
	case r == '\r':
		return 0
	case r <= unicode.MaxASCII, unicode.Is(unicode.Latin, r):
		return 1
	}
	encoded, _, err := transform.String(simplifiedchinese.GBK.NewEncoder(), string(r))
	if err != nil || len(encoded) < 1 {
		return 2
	}
	return len(encoded)
}
