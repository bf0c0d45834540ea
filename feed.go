package main

import (
	"bytes"
	"encoding/json"
)

const jsonFeedVersion = "https://jsonfeed.org/version/1"

// Fields are declared in key order so the encoded document is sorted.
type jsonFeed struct {
	Author      jsonFeedAuthor `json:"author"`
	FeedURL     string         `json:"feed_url"`
	HomePageURL string         `json:"home_page_url"`
	Items       []jsonFeedItem `json:"items"`
	Title       string         `json:"title"`
	Version     string         `json:"version"`
}

type jsonFeedAuthor struct {
	Name string `json:"name"`
}

type jsonFeedItem struct {
	ContentHTML   string `json:"content_html"`
	DatePublished string `json:"date_published"`
	ID            string `json:"id"`
	Title         string `json:"title"`
	URL           string `json:"url"`
}

// feedItemTitle falls back to the formatted date for untitled days.
func feedItemTitle(d *Day, dateFormat string) string {
	if d.Title != "" {
		return d.Title
	}
	return formatDate(dateFormat, d.Date)
}

func (s *Site) jsonFeed() (*jsonFeed, error) {
	recent := s.days.recent(s.conf.Days)
	feed := &jsonFeed{
		Author:      jsonFeedAuthor{Name: s.conf.Author},
		FeedURL:     s.conf.FeedURL,
		HomePageURL: s.conf.BlogURL,
		Items:       make([]jsonFeedItem, 0, len(recent)),
		Title:       s.conf.Name,
		Version:     jsonFeedVersion,
	}

	for _, d := range recent {
		content, err := s.entriesHTML(d)
		if err != nil {
			return nil, err
		}
		url := s.conf.absURL(d.pagePath())
		feed.Items = append(feed.Items, jsonFeedItem{
			ContentHTML:   content,
			DatePublished: d.stamp(),
			ID:            url,
			Title:         feedItemTitle(d, s.conf.DateFormat),
			URL:           url,
		})
	}
	return feed, nil
}

func encodeJSONFeed(feed *jsonFeed) ([]byte, error) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "   ")
	if err := enc.Encode(feed); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func (s *Site) RenderJSONFeed() error {
	feed, err := s.jsonFeed()
	if err != nil {
		return err
	}
	content, err := encodeJSONFeed(feed)
	if err != nil {
		return err
	}
	return s.writeFile(s.conf.FeedPath, content)
}
