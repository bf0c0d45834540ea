package main

import (
	"log/slog"

	atom "github.com/thomas11/atomgenerator"
)

const atomFeedPath = "feed.xml"

// RenderAtom writes the same days as the JSON feed as an Atom feed.
func (s *Site) RenderAtom() error {
	atomXml, err := s.renderAtomFeed(s.days.recent(s.conf.Days))
	if err != nil {
		return err
	}
	return s.writeFile(atomFeedPath, atomXml)
}

func (s *Site) renderAtomFeed(ds days) ([]byte, error) {
	feed := atom.Feed{
		Title: s.conf.Name,
		Link:  s.conf.BlogURL,
	}
	if len(ds) > 0 {
		feed.PubDate = ds[0].Date
	}
	feed.AddAuthor(atom.Author{
		Name: s.conf.Author,
		Uri:  s.conf.BlogURL,
	})

	for _, d := range ds {
		e, err := s.entryForDay(d)
		if err != nil {
			return nil, err
		}
		feed.AddEntry(e)
	}

	errs := feed.Validate()
	if len(errs) > 0 {
		slog.Error("Atom feed is not valid", logCount(len(errs)))
		for _, e := range errs {
			slog.Error(e.Error())
		}
		return nil, errs[0]
	}

	return feed.GenXml()
}

func (s *Site) entryForDay(d *Day) (*atom.Entry, error) {
	content, err := s.entriesHTML(d)
	if err != nil {
		return nil, err
	}
	return &atom.Entry{
		Title:   feedItemTitle(d, s.conf.DateFormat),
		Link:    s.conf.absURL(d.pagePath()),
		PubDate: d.Date,
		Content: content,
	}, nil
}
