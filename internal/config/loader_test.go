package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lululau/datepick/internal/constraint"
	"github.com/lululau/datepick/internal/picker"
	"github.com/lululau/datepick/internal/selection"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDocument(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tips.json", `[{"dates":["2024-01-01"],"tooltip":"from file"},{"dates":["2024-01-02"],"tooltip":"only file"}]`)
	path := writeFile(t, dir, "picker.yaml", `
type: range
min-date: 2024-01-01
max-date: "2024-12-31"
disabled-dates: 2024-01-15, 2024-01-16
value:
  - 2024-01-03
  - 2024-01-09
start-of-week: 1
locale: zh-CN
tooltips-file: tips.json
tooltips:
  - dates: ["2024-01-01"]
    tooltip: inline
`)

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "range", doc.Type)
	assert.Equal(t, DateList{"2024-01-15, 2024-01-16"}, doc.DisabledDates)
	assert.Equal(t, DateList{"2024-01-03", "2024-01-09"}, doc.Value)
	require.NotNil(t, doc.StartOfWeek)
	assert.Equal(t, 1, *doc.StartOfWeek)
	require.Len(t, doc.Tooltips, 3)
	assert.Equal(t, "inline", doc.Tooltips[2].Tooltip)
}

func TestApplyDocument(t *testing.T) {
	sow := 1
	doc := &Document{
		Type:          "range",
		MinDate:       "2024-01-01",
		MaxDate:       "2024-12-31",
		DisabledDates: DateList{"2024-01-15,2024-01-16"},
		Value:         DateList{"2024-01-09", "2024-01-03"},
		StartOfWeek:   &sow,
		Locale:        "de",
	}
	opts, err := doc.Options()
	require.NoError(t, err)
	p := picker.New(append(opts, picker.WithLocation(time.UTC))...)
	require.NoError(t, doc.Apply(p))

	assert.Equal(t, selection.ModeRange, p.Mode())
	assert.Equal(t, 1, p.StartOfWeek())
	assert.Equal(t, "Januar 2024", p.MonthView().Title)
	assert.Equal(t, []time.Time{
		time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC),
	}, p.Dates())
	assert.True(t, p.IsDisabled(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)))
	assert.True(t, p.IsDisabled(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestApplyCollectsRejectedProperties(t *testing.T) {
	doc := &Document{Type: "single", MinDate: "2024-06-01", MaxDate: "2024-01-01", Value: DateList{"2024-06-02,2024-06-03"}}
	opts, err := doc.Options()
	require.NoError(t, err)
	p := picker.New(append(opts, picker.WithLocation(time.UTC))...)

	err = doc.Apply(p)
	require.Error(t, err)
	assert.ErrorIs(t, err, constraint.ErrInvertedBounds)
	assert.ErrorIs(t, err, selection.ErrArity)
	assert.Empty(t, p.Dates())
}

func TestLoadValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"bad type", "type: week\n", "type"},
		{"bad start of week", "start-of-week: 9\n", "start-of-week"},
		{"bad locale", "locale: \"!!\"\n", "locale"},
		{"empty tooltip", "tooltips:\n  - dates: [\"2024-01-01\"]\n    tooltip: \"\"\n", "tooltips[0].tooltip"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "picker.yaml", tt.body)
			_, err := Load(path)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestLoadParseErrorCarriesLine(t *testing.T) {
	path := writeFile(t, t.TempDir(), "picker.yaml", "type: single\nvalue: [unterminated\n")
	_, err := Load(path)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, path, perr.Path)
	assert.Positive(t, perr.Line)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadTooltipsRejectsEmptyDates(t *testing.T) {
	path := writeFile(t, t.TempDir(), "tips.json", `[{"dates":[],"tooltip":"x"}]`)
	_, err := LoadTooltips(path)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "tooltips[0].dates", verr.Field)
}
