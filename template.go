package main

import (
	"html"
	"regexp"
	"strings"
)

// pageParam holds the values substituted into the page template.
type pageParam struct {
	Title     string
	YearRange string
	Label     string
	CSS       string
	Name      string
	Author    string
	Version   string
	FeedURL   string

	// Pre-rendered HTML.
	Body    string
	Archive string
}

type placeholder struct {
	pattern *regexp.Regexp
	value   func(p *pageParam) string
	// verbatim values are HTML and are not escaped.
	verbatim bool
	// firstOnly replaces only the first occurrence.
	firstOnly bool
}

func placeholderPattern(name, suffix string) *regexp.Regexp {
	return regexp.MustCompile(`\[%\s*` + regexp.QuoteMeta(name) + `\s*%\]` + suffix)
}

// Escaped scalars go first so the HTML fragments are never escaped twice.
var placeholders = []placeholder{
	{pattern: placeholderPattern("title", ""), value: func(p *pageParam) string { return p.Title }},
	{pattern: placeholderPattern("year-range", ""), value: func(p *pageParam) string { return p.YearRange }},
	{pattern: placeholderPattern("label", ""), value: func(p *pageParam) string { return p.Label }},
	{pattern: placeholderPattern("css", ""), value: func(p *pageParam) string { return p.CSS }},
	{pattern: placeholderPattern("name", ""), value: func(p *pageParam) string { return p.Name }},
	{pattern: placeholderPattern("author", ""), value: func(p *pageParam) string { return p.Author }},
	{pattern: placeholderPattern("version", ""), value: func(p *pageParam) string { return p.Version }},
	{pattern: placeholderPattern("feed-url", ""), value: func(p *pageParam) string { return p.FeedURL }},
	{pattern: placeholderPattern("body", `\n`), value: func(p *pageParam) string { return p.Body }, verbatim: true, firstOnly: true},
	{pattern: placeholderPattern("archive", `\n`), value: func(p *pageParam) string { return p.Archive }, verbatim: true},
}

func fillTemplate(tmpl string, p *pageParam) string {
	out := tmpl
	for _, ph := range placeholders {
		v := ph.value(p)
		if !ph.verbatim {
			v = html.EscapeString(v)
		}
		if ph.firstOnly {
			if loc := ph.pattern.FindStringIndex(out); loc != nil {
				out = out[:loc[0]] + v + out[loc[1]:]
			}
			continue
		}
		out = ph.pattern.ReplaceAllLiteralString(out, v)
	}
	return out
}

// cssPath makes the stylesheet reachable from a page at relPath.
func cssPath(relPath, css string) string {
	return strings.Repeat("../", strings.Count(relPath, "/")) + css
}
