package main

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const testTemplate = `<html><head><title>[% title %]</title>
<link rel="stylesheet" href="[% css %]">
<link rel="alternate" href="[% feed-url %]">
</head><body>
<h1>[% name %]: [% label %]</h1>
<main>
[% body %]
</main>
<aside>
[% archive %]
</aside>
<footer>[% year-range %] [% author %] tumblelog [% version %]</footer>
</body></html>
`

// memSink keeps written files in memory.
type memSink map[string]string

func (m memSink) write(relPath string, content []byte) error {
	m[relPath] = string(content)
	return nil
}

func testConf(t *testing.T) *SiteConf {
	t.Helper()
	base, err := url.Parse("https://example.com/blog/")
	require.NoError(t, err)

	conf := &SiteConf{
		Template:    testTemplate,
		Author:      "Ann Author",
		Name:        "Test Blog",
		BlogURL:     base.String(),
		FeedPath:    jsonFeedPath,
		Days:        14,
		CSS:         "styles.css",
		DateFormat:  "%d %b %Y",
		LabelFormat: "week %V, %Y",
		Renderer:    rendererCommonMark,
		baseURL:     base,
	}
	conf.FeedURL = conf.absURL(conf.FeedPath)
	return conf
}

func testSite(t *testing.T, conf *SiteConf, text string) (*Site, memSink) {
	t.Helper()
	out := memSink{}
	s, err := newSite(conf, text, newCommonMarkRenderer(), out)
	require.NoError(t, err)
	return s, out
}

// Days spanning two ISO years, newest first:
// 2021-01-03 is 2020-W53, 2020-01-06 is 2020-W02, 2020-01-03 and 2019-12-30
// are 2020-W01, 2019-12-29 is 2019-W52 and 2018-12-31 is 2019-W01.
const multiYearLog = `2019-12-30 Monday
Start of the ISO year
%
2020-01-03
Friday
%
2018-12-31
Old one
%
2021-01-03 Last
Sunday in week 53
%
2019-12-29
Sunday
%
2020-01-06
Week two
`

// navItem is an archive list item: either a link or the marked current week.
type navItem struct {
	text, href string
	self       bool
}

func parseArchiveNav(t *testing.T, fragment string) []navItem {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(fragment))
	require.NoError(t, err)

	var items []navItem
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "li" {
			items = append(items, liItem(n))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return items
}

func liItem(li *html.Node) navItem {
	for _, a := range li.Attr {
		if a.Key == "class" && a.Val == "tl-self" {
			return navItem{text: textOf(li), self: true}
		}
	}
	item := navItem{text: textOf(li)}
	if a := li.FirstChild; a != nil && a.Type == html.ElementNode && a.Data == "a" {
		for _, attr := range a.Attr {
			if attr.Key == "href" {
				item.href = attr.Val
			}
		}
	}
	return item
}

func textOf(n *html.Node) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
