package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lululau/datepick/internal/selection"
)

func utcDay(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseCSVDropsInvalidTokens(t *testing.T) {
	n := Normalizer{Location: time.UTC}
	res := n.ParseCSV("2024-01-01,not-a-date,2024-03-01")

	require.Equal(t, []time.Time{utcDay(2024, 1, 1), utcDay(2024, 3, 1)}, res.Dates)
	assert.Equal(t, []string{"not-a-date"}, res.Dropped)
}

func TestParseCSVTrimsAndKeepsOrder(t *testing.T) {
	n := Normalizer{Location: time.UTC}
	res := n.ParseCSV("  2024-05-02 , 2024/01/09,, Jan 3 2024 ")

	require.Equal(t, []time.Time{utcDay(2024, 5, 2), utcDay(2024, 1, 9), utcDay(2024, 1, 3)}, res.Dates)
	assert.Empty(t, res.Dropped)
}

func TestParseAcceptsTimestamps(t *testing.T) {
	n := Normalizer{Location: time.UTC}
	got, err := n.Parse("2024-01-01T10:30:00Z")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC)))

	_, err = n.Parse("2024-13-40")
	assert.Error(t, err)
	_, err = n.Parse("   ")
	assert.Error(t, err)
}

func TestNormalizeSupportedTypes(t *testing.T) {
	n := Normalizer{Location: time.UTC}
	d := utcDay(2024, 2, 29)

	res, err := n.Normalize(d)
	require.NoError(t, err)
	assert.Equal(t, []time.Time{d}, res.Dates)

	res, err = n.Normalize(&d)
	require.NoError(t, err)
	assert.Equal(t, []time.Time{d}, res.Dates)

	res, err = n.Normalize([]time.Time{d, {}, utcDay(2024, 3, 1)})
	require.NoError(t, err)
	assert.Equal(t, []time.Time{d, utcDay(2024, 3, 1)}, res.Dates)

	res, err = n.Normalize([]string{"2024-02-29", "bogus,2024-03-01"})
	require.NoError(t, err)
	assert.Equal(t, []time.Time{d, utcDay(2024, 3, 1)}, res.Dates)
	assert.Equal(t, []string{"bogus"}, res.Dropped)

	res, err = n.Normalize(nil)
	require.NoError(t, err)
	assert.Empty(t, res.Dates)

	res, err = n.Normalize(time.Time{})
	require.NoError(t, err)
	assert.Empty(t, res.Dates)
}

func TestNormalizeRejectsUnknownType(t *testing.T) {
	_, err := Normalizer{}.Normalize(42)
	require.ErrorIs(t, err, ErrUnsupportedValue)
}

func TestValidateArity(t *testing.T) {
	one := []time.Time{utcDay(2024, 1, 1)}
	two := append(one, utcDay(2024, 1, 2))
	three := append(two, utcDay(2024, 1, 3))

	tests := []struct {
		name  string
		mode  selection.Mode
		dates []time.Time
		ok    bool
	}{
		{"single empty", selection.ModeSingle, nil, true},
		{"single one", selection.ModeSingle, one, true},
		{"single two", selection.ModeSingle, two, false},
		{"range empty", selection.ModeRange, nil, true},
		{"range one", selection.ModeRange, one, false},
		{"range two", selection.ModeRange, two, true},
		{"range three", selection.ModeRange, three, false},
		{"multiple three", selection.ModeMultiple, three, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.mode, tt.dates)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			var arity *ArityError
			require.ErrorAs(t, err, &arity)
			assert.Equal(t, len(tt.dates), arity.Count)
			assert.Equal(t, tt.mode, arity.Mode)
		})
	}
}
