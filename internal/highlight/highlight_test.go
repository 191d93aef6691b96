package highlight

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lululau/datepick/internal/calendar"
)

func TestBetweenIsExclusive(t *testing.T) {
	g := calendar.BuildGrid(2024, time.January, 0, time.UTC)
	start := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	got := Between(start, end, g.Cells())
	require.Len(t, got, 4)
	assert.Equal(t, 6, got[0].Day())
	assert.Equal(t, 9, got[3].Day())

	s := NewSet(got)
	assert.True(t, s.Has(time.Date(2024, 1, 7, 15, 0, 0, 0, time.UTC)))
	assert.False(t, s.Has(start))
	assert.False(t, s.Has(end))
}

func TestBetweenSpansAdjacentMonthCells(t *testing.T) {
	g := calendar.BuildGrid(2024, time.January, 0, time.UTC)
	start := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	assert.Len(t, Between(start, end, g.Cells()), len(g.Cells()))
}

func TestBetweenEmptyForCollapsedRange(t *testing.T) {
	d := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	g := calendar.BuildGrid(2024, time.January, 0, time.UTC)
	assert.Nil(t, Between(d, d, g.Cells()))
	assert.Nil(t, Between(d.AddDate(0, 0, 1), d, g.Cells()))
}
