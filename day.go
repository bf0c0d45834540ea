package main

import (
	"fmt"
	"slices"
	"time"
)

// Day holds all entries written on one calendar date.
type Day struct {
	Date    time.Time
	Title   string
	Entries []string
}

func (d *Day) stamp() string {
	return d.Date.Format(dateStampLayout)
}

// archivePath is the day's page relative to the archive directory.
func (d *Day) archivePath() string {
	return d.Date.Format("2006/01/02") + ".html"
}

// pagePath is the day's page relative to the output directory.
func (d *Day) pagePath() string {
	return "archive/" + d.archivePath()
}

func (d *Day) year() string {
	return fmt.Sprintf("%04d", d.Date.Year())
}

type days []*Day

func (ds days) sortNewestFirst() {
	slices.SortStableFunc(ds, func(a, b *Day) int { return b.Date.Compare(a.Date) })
}

// recent returns at most limit days from the front. A limit below one
// means no limit.
func (ds days) recent(limit int) days {
	if limit > 0 && len(ds) > limit {
		return ds[:limit]
	}
	return ds
}

// yearBounds expects days sorted newest first.
func (ds days) yearBounds() (minYear, maxYear string) {
	if len(ds) == 0 {
		return "", ""
	}
	return ds[len(ds)-1].year(), ds[0].year()
}

func yearRange(minYear, maxYear string) string {
	if minYear == maxYear {
		return minYear
	}
	return minYear + "–" + maxYear
}
