// Package tooltip indexes per-day annotation text.
package tooltip

import (
	"time"

	"github.com/lululau/datepick/internal/calendar"
	"github.com/lululau/datepick/internal/normalize"
)

// Entry attaches one tooltip to a list of ISO dates.
type Entry struct {
	Dates   []string `json:"dates" yaml:"dates" validate:"required,min=1,dive,required"`
	Tooltip string   `json:"tooltip" yaml:"tooltip" validate:"required"`
}

// Index maps a day timestamp in milliseconds to its tooltip text.
type Index map[int64]string

// Build indexes entries by the start of their day in the normalizer's zone.
// Later entries overwrite earlier ones that share a day; unparseable dates
// are skipped.
func Build(entries []Entry, n normalize.Normalizer) Index {
	loc := n.Zone()
	idx := make(Index)
	for _, entry := range entries {
		for _, raw := range entry.Dates {
			t, err := n.Parse(raw)
			if err != nil {
				continue
			}
			idx[calendar.StartOfDay(t.In(loc)).UnixMilli()] = entry.Tooltip
		}
	}
	return idx
}

// Lookup returns the tooltip for the exact timestamp of t.
func (idx Index) Lookup(t time.Time) (string, bool) {
	if idx == nil {
		return "", false
	}
	text, ok := idx[t.UnixMilli()]
	return text, ok
}
