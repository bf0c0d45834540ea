// Tumblelog turns a single text file of dated entries into a static blog:
// a home page, one page per day, one page per ISO week, a year/week archive
// and a JSON feed.
//
// Entries are separated by a line holding only a "%". An entry that starts
// with a YYYY-MM-DD date opens a new day, optionally titled by the rest of
// that line; entries without a date belong to the day above them. Entry
// bodies are Markdown.
//
// You need to provide your own template.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/otiai10/copy"
)

var version = "1.0.3"

// sink receives finished files. relPath uses forward slashes and is
// relative to the output directory.
type sink interface {
	write(relPath string, content []byte) error
}

// dirSink writes below a directory, creating parent directories as needed.
type dirSink struct {
	root string
}

func (d dirSink) write(relPath string, content []byte) error {
	path := filepath.Join(d.root, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(path), os.FileMode(0775)); err != nil {
		return fmt.Errorf("creating directory for %v: %w", path, err)
	}
	if err := os.WriteFile(path, content, os.FileMode(0664)); err != nil {
		return fmt.Errorf("writing %v: %w", path, err)
	}
	return nil
}

type Site struct {
	days    days
	archive archive
	conf    *SiteConf
	toHtml  renderer
	out     sink

	minYear, maxYear string

	// Rendered entries per day stamp, shared by pages and feeds.
	renderCache map[string]string
}

func ReadSite(conf *SiteConf) (*Site, error) {
	text, err := readEntries(conf.Filename)
	if err != nil {
		return nil, err
	}

	toHtml, err := newRenderer(conf.Renderer)
	if err != nil {
		return nil, err
	}

	s, err := newSite(conf, text, toHtml, dirSink{conf.OutDir})
	if err != nil {
		return nil, fmt.Errorf("%v: %w", conf.Filename, err)
	}
	return s, nil
}

func newSite(conf *SiteConf, text string, toHtml renderer, out sink) (*Site, error) {
	ds, err := parseDays(text)
	if err != nil {
		return nil, err
	}

	s := &Site{
		days:        ds,
		archive:     buildArchive(ds),
		conf:        conf,
		toHtml:      toHtml,
		out:         out,
		renderCache: make(map[string]string),
	}
	s.minYear, s.maxYear = ds.yearBounds()

	slog.Debug("Read entries", logCount(len(ds)), slog.String("years", yearRange(s.minYear, s.maxYear)))
	return s, nil
}

func (s *Site) RenderAll() error {
	if err := s.renderIndex(); err != nil {
		return err
	}
	if err := s.renderDayAndWeekPages(); err != nil {
		return err
	}
	if err := s.RenderJSONFeed(); err != nil {
		return err
	}
	if s.conf.Atom {
		return s.RenderAtom()
	}
	return nil
}

func (s *Site) CopyStaticFiles() error {
	srcDir := s.conf.StaticFilesDir
	slog.Info("Copying static files", logPath(srcDir), slog.String("dest", s.conf.OutDir))
	if err := copy.Copy(srcDir, s.conf.OutDir); err != nil {
		return fmt.Errorf("copying %v: %w", srcDir, err)
	}
	return nil
}

func (s *Site) writeFile(relPath string, content []byte) error {
	if err := s.out.write(relPath, content); err != nil {
		return err
	}
	slog.Info("Created", logPath(relPath))
	return nil
}

func (s *Site) createPage(relPath, title, label, bodyHtml, archiveHtml string) error {
	p := &pageParam{
		Title:     title,
		YearRange: yearRange(s.minYear, s.maxYear),
		Label:     label,
		CSS:       cssPath(relPath, s.conf.CSS),
		Name:      s.conf.Name,
		Author:    s.conf.Author,
		Version:   version,
		FeedURL:   s.conf.FeedURL,
		Body:      bodyHtml,
		Archive:   archiveHtml,
	}
	return s.writeFile(relPath, []byte(fillTemplate(s.conf.Template, p)))
}

func (s *Site) entriesHTML(d *Day) (string, error) {
	if rendered, ok := s.renderCache[d.stamp()]; ok {
		return rendered, nil
	}

	var b strings.Builder
	for _, e := range d.Entries {
		h, err := entryHTML(s.toHtml, e)
		if err != nil {
			return "", fmt.Errorf("rendering entry of %v: %w", d.stamp(), err)
		}
		b.WriteString(h)
	}
	s.renderCache[d.stamp()] = b.String()
	return b.String(), nil
}

// dayHTML is a day's heading followed by its entries.
func (s *Site) dayHTML(d *Day, prefix string) (string, error) {
	entries, err := s.entriesHTML(d)
	if err != nil {
		return "", err
	}
	return dateHTML(d, s.conf.DateFormat, prefix) + entries, nil
}

// Render index.html with the last conf.Days days.
func (s *Site) renderIndex() error {
	var body strings.Builder
	for _, d := range s.days.recent(s.conf.Days) {
		h, err := s.dayHTML(d, "archive")
		if err != nil {
			return err
		}
		body.WriteString(h)
	}

	label := "home"
	archiveHtml := archiveHTML(s.archive, noWeek, "archive", s.conf.LabelFormat)
	return s.createPage("index.html", s.conf.Name+" - "+label, label, body.String(), archiveHtml)
}

func (s *Site) renderWeekPage(yw yearWeek, bodyHtml string) error {
	label := weekLabel(s.conf.LabelFormat, yw.yearString(), yw.weekString())
	archiveHtml := archiveHTML(s.archive, yw, "../..", s.conf.LabelFormat)
	return s.createPage(yw.pagePath(), s.conf.Name+" - "+label, label, bodyHtml, archiveHtml)
}

// weekAccumulator collects the day bodies of one week until the walk over
// the days leaves that week.
type weekAccumulator struct {
	week yearWeek
	body strings.Builder
}

func (s *Site) flushWeek(acc *weekAccumulator) error {
	return s.renderWeekPage(acc.week, acc.body.String())
}

// renderDayAndWeekPages writes every day page as it is reached and every
// week page once the walk has passed its last day.
func (s *Site) renderDayAndWeekPages() error {
	if len(s.days) == 0 {
		return nil
	}

	dayArchiveHtml := archiveHTML(s.archive, noWeek, "../..", s.conf.LabelFormat)
	acc := &weekAccumulator{week: isoYearWeek(s.days[0].Date)}

	for i, d := range s.days {
		dayBody, err := s.dayHTML(d, "../..")
		if err != nil {
			return err
		}

		label, title := labelAndTitle(d, s.conf.DateFormat, s.conf.Name)
		nav := nextPrevHTML(s.days, i, s.conf.DateFormat)
		if err := s.createPage(d.pagePath(), title, label, dayBody+nav, dayArchiveHtml); err != nil {
			return err
		}

		if yw := isoYearWeek(d.Date); yw != acc.week {
			if err := s.flushWeek(acc); err != nil {
				return err
			}
			acc.week = yw
			acc.body.Reset()
		}
		acc.body.WriteString(dayBody)
	}

	return s.flushWeek(acc)
}
