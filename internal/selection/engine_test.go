package selection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type blockDays map[int]bool

func (b blockDays) IsDisabled(t time.Time) bool { return b[t.Day()] }

func TestSingleReplaces(t *testing.T) {
	e := NewEngine(ModeSingle, nil)
	require.True(t, e.Select(day(2024, 1, 1)))
	require.True(t, e.Select(day(2024, 1, 2)))
	assert.Equal(t, []time.Time{day(2024, 1, 2)}, e.Dates())
}

func TestMultipleToggleIsItsOwnInverse(t *testing.T) {
	e := NewEngine(ModeMultiple, nil)
	e.Select(day(2024, 1, 1))
	e.Select(day(2024, 1, 3))
	before := e.Dates()

	e.Select(time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC))
	e.Select(day(2024, 1, 2))
	assert.Equal(t, before, e.Dates())

	e.Select(time.Date(2024, 1, 1, 17, 0, 0, 0, time.UTC))
	assert.Equal(t, []time.Time{day(2024, 1, 3)}, e.Dates())
}

func TestRangeOrderIndependent(t *testing.T) {
	a, b := day(2024, 1, 10), day(2024, 1, 5)
	for _, clicks := range [][2]time.Time{{a, b}, {b, a}} {
		e := NewEngine(ModeRange, nil)
		e.Select(clicks[0])
		e.Select(clicks[1])
		start, end, ok := e.Range()
		require.True(t, ok)
		assert.Equal(t, b, start)
		assert.Equal(t, a, end)
	}
}

func TestRangeThirdClickStartsOver(t *testing.T) {
	e := NewEngine(ModeRange, nil)
	e.Select(day(2024, 1, 5))
	e.Select(day(2024, 1, 10))
	e.Select(day(2024, 2, 1))
	assert.Equal(t, []time.Time{day(2024, 2, 1)}, e.Dates())
	_, _, ok := e.Range()
	assert.False(t, ok)
}

func TestDisabledClickIgnored(t *testing.T) {
	e := NewEngine(ModeMultiple, blockDays{13: true})
	assert.False(t, e.Select(day(2024, 9, 13)))
	assert.False(t, e.Select(time.Time{}))
	assert.Zero(t, e.Len())
}

func TestReplaceSingleRejectsTooMany(t *testing.T) {
	e := NewEngine(ModeSingle, nil)
	require.NoError(t, e.Replace([]time.Time{day(2024, 1, 1)}))
	err := e.Replace([]time.Time{day(2024, 1, 2), day(2024, 1, 3)})
	require.ErrorIs(t, err, ErrArity)
	assert.Equal(t, []time.Time{day(2024, 1, 1)}, e.Dates())
}

func TestReplaceRange(t *testing.T) {
	e := NewEngine(ModeRange, nil)
	require.NoError(t, e.Replace([]time.Time{day(2024, 3, 9), day(2024, 3, 1)}))
	assert.Equal(t, []time.Time{day(2024, 3, 1), day(2024, 3, 9)}, e.Dates())

	require.ErrorIs(t, e.Replace([]time.Time{day(2024, 1, 1), day(2024, 1, 2), day(2024, 1, 3)}), ErrArity)
	require.ErrorIs(t, e.Replace([]time.Time{day(2024, 1, 1)}), ErrArity)
	assert.Equal(t, []time.Time{day(2024, 3, 1), day(2024, 3, 9)}, e.Dates())

	require.NoError(t, e.Replace(nil))
	assert.Zero(t, e.Len())
}

func TestReplaceMultipleDeduplicates(t *testing.T) {
	e := NewEngine(ModeMultiple, nil)
	require.NoError(t, e.Replace([]time.Time{day(2024, 1, 2), time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC), day(2024, 1, 1)}))
	assert.Equal(t, []time.Time{day(2024, 1, 2), day(2024, 1, 1)}, e.Dates())
}

func TestDatesReturnsCopy(t *testing.T) {
	e := NewEngine(ModeMultiple, nil)
	e.Select(day(2024, 1, 1))
	got := e.Dates()
	got[0] = day(1999, 1, 1)
	assert.True(t, e.Contains(day(2024, 1, 1)))
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"": ModeSingle, "single": ModeSingle, "Multiple": ModeMultiple, " range ": ModeRange} {
		got, err := ParseMode(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseMode("week")
	assert.Error(t, err)
}
