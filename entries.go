package main

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"
)

var (
	ErrNoEntries       = errors.New("no blog entries found")
	ErrNoDateSpecified = errors.New("no date specified for first tumblelog entry")
	ErrMalformedDate   = errors.New("malformed date")
)

// A line holding only this marker separates two entries.
const entrySeparator = "%"

const dateStampLayout = "2006-01-02"

// An entry opens a new day when it starts with a date stamp. Anything after
// the stamp on the first line is the day's title, the rest is the body.
var entryHeader = regexp.MustCompile(`(?s)^(\d{4}-\d{2}-\d{2})(.*?)\n(.*)`)

func readEntries(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading entries from %v: %w", path, err)
	}
	return string(content), nil
}

// splitEntries cuts the log at separator lines and drops empty chunks.
func splitEntries(text string) []string {
	entries := make([]string, 0, 100)
	var chunk strings.Builder
	flush := func() {
		if chunk.Len() > 0 {
			entries = append(entries, chunk.String())
		}
		chunk.Reset()
	}

	for _, line := range strings.SplitAfter(text, "\n") {
		if strings.TrimRight(line, "\r\n") == entrySeparator {
			flush()
			continue
		}
		chunk.WriteString(line)
	}
	flush()

	return entries
}

type collectorState int

const (
	awaitingDate collectorState = iota
	inDay
)

// dayCollector groups entries into days in a single pass. Entries that carry
// no date of their own belong to the most recently opened day.
type dayCollector struct {
	state   collectorState
	current *Day
	days    days
	byStamp map[string]*Day
}

func newDayCollector() *dayCollector {
	return &dayCollector{
		state:   awaitingDate,
		days:    make(days, 0, 100),
		byStamp: make(map[string]*Day),
	}
}

func (c *dayCollector) openDay(stamp, title string) error {
	if d, ok := c.byStamp[stamp]; ok {
		if d.Title == "" {
			d.Title = title
		}
		c.current = d
		c.state = inDay
		return nil
	}

	date, err := time.Parse(dateStampLayout, stamp)
	if err != nil {
		return fmt.Errorf("%w %q: %v", ErrMalformedDate, stamp, err)
	}

	d := &Day{Date: date, Title: title, Entries: make([]string, 0, 2)}
	c.days = append(c.days, d)
	c.byStamp[stamp] = d
	c.current = d
	c.state = inDay
	return nil
}

func (c *dayCollector) add(entry string) error {
	if m := entryHeader.FindStringSubmatch(entry); m != nil {
		if err := c.openDay(m[1], strings.TrimSpace(m[2])); err != nil {
			return err
		}
		entry = m[3]
	}

	if c.state == awaitingDate {
		return ErrNoDateSpecified
	}
	c.current.Entries = append(c.current.Entries, entry)
	return nil
}

// collectDays turns the raw entries into days, newest first.
func collectDays(entries []string) (days, error) {
	c := newDayCollector()
	for _, e := range entries {
		if err := c.add(e); err != nil {
			return nil, err
		}
	}

	c.days.sortNewestFirst()
	return c.days, nil
}

func parseDays(text string) (days, error) {
	entries := splitEntries(text)
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}
	return collectDays(entries)
}
