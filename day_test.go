package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayPaths(t *testing.T) {
	ds, err := parseDays("2020-03-07\nx\n")
	require.NoError(t, err)

	assert.Equal(t, "2020/03/07.html", ds[0].archivePath())
	assert.Equal(t, "archive/2020/03/07.html", ds[0].pagePath())
	assert.Equal(t, "2020", ds[0].year())
}

func TestRecent(t *testing.T) {
	ds, err := parseDays(multiYearLog)
	require.NoError(t, err)
	require.Len(t, ds, 6)

	top := ds.recent(2)
	require.Len(t, top, 2)
	assert.Equal(t, "2021-01-03", top[0].stamp())
	assert.Equal(t, "2020-01-06", top[1].stamp())

	assert.Len(t, ds.recent(6), 6)
	assert.Len(t, ds.recent(100), 6)
	assert.Len(t, ds.recent(0), 6)
}

func TestYearBoundsAndRange(t *testing.T) {
	ds, err := parseDays(multiYearLog)
	require.NoError(t, err)

	minYear, maxYear := ds.yearBounds()
	assert.Equal(t, "2018", minYear)
	assert.Equal(t, "2021", maxYear)
	assert.Equal(t, "2018–2021", yearRange(minYear, maxYear))
	assert.Equal(t, "2020", yearRange("2020", "2020"))
}
