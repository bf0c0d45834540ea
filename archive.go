package main

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// yearWeek is an ISO 8601 week. The year is the ISO week-year, which can
// differ from the calendar year in the first and last days of January and
// December.
type yearWeek struct {
	year, week int
}

// noWeek marks the absence of a current week when rendering the archive.
var noWeek = yearWeek{}

func isoYearWeek(t time.Time) yearWeek {
	y, w := t.ISOWeek()
	return yearWeek{year: y, week: w}
}

func (yw yearWeek) String() string {
	return yw.yearString() + "-" + yw.weekString()
}

func (yw yearWeek) yearString() string { return fmt.Sprintf("%04d", yw.year) }

func (yw yearWeek) weekString() string { return fmt.Sprintf("%02d", yw.week) }

// pagePath is the week's page relative to the output directory.
func (yw yearWeek) pagePath() string {
	return "archive/" + yw.yearString() + "/week/" + yw.weekString() + ".html"
}

// weekLabel fills %V with the week number and %Y with the year.
func weekLabel(format, year, week string) string {
	label := strings.ReplaceAll(format, "%V", week)
	return strings.ReplaceAll(label, "%Y", year)
}

// archive maps a zero-padded year to its zero-padded week numbers in
// ascending order.
type archive map[string][]string

// buildArchive expects days sorted newest first. Weeks are met in descending
// order, so each new one goes to the front of its year.
func buildArchive(ds days) archive {
	seen := make(map[yearWeek]bool)
	a := make(archive)
	for _, d := range ds {
		yw := isoYearWeek(d.Date)
		if seen[yw] {
			continue
		}
		seen[yw] = true
		year := yw.yearString()
		a[year] = append([]string{yw.weekString()}, a[year]...)
	}
	return a
}

// years returns the archive's years, newest first.
func (a archive) years() []string {
	years := make([]string, 0, len(a))
	for y := range a {
		years = append(years, y)
	}
	slices.Sort(years)
	slices.Reverse(years)
	return years
}

func (a archive) String() string {
	var b strings.Builder
	for _, y := range a.years() {
		b.WriteString(y)
		b.WriteString(": ")
		b.WriteString(strings.Join(a[y], ", "))
		b.WriteString("\n")
	}
	return b.String()
}
