package main

import (
	"html"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
)

// formatDate applies a strftime(3) style format.
func formatDate(format string, d time.Time) string {
	return strftime.Format(format, d)
}

// labelAndTitle returns the label and the page title of a day's page.
func labelAndTitle(d *Day, dateFormat, blogName string) (label, title string) {
	label = formatDate(dateFormat, d.Date)
	if d.Title != "" {
		return label, d.Title + " - " + blogName
	}
	return label, blogName + " - " + label
}

// dateHTML is the heading of a day. prefix leads from the page being rendered
// to the archive directory.
func dateHTML(d *Day, dateFormat, prefix string) string {
	return `<time class="tl-date" datetime="` + d.stamp() + `"><a href="` +
		prefix + "/" + d.archivePath() + `">` +
		html.EscapeString(formatDate(dateFormat, d.Date)) +
		"</a></time>\n"
}

func entryHTML(toHtml renderer, entry string) (string, error) {
	body, err := toHtml.render([]byte(entry))
	if err != nil {
		return "", err
	}
	return "<article>\n" + body + "</article>\n", nil
}

// dayLinkHTML links one day page to another within the archive.
func dayLinkHTML(d *Day, dateFormat string) string {
	label := html.EscapeString(formatDate(dateFormat, d.Date))
	title := html.EscapeString(d.Title)
	if title == "" {
		title = label
	}
	return `<a href="../../` + d.archivePath() + `" title="` + label + `">` + title + "</a>"
}

// nextPrevHTML links the day at index i to its neighbours. Next is the
// newer day, prev the older one.
func nextPrevHTML(ds days, i int, dateFormat string) string {
	if len(ds) == 1 {
		return ""
	}

	var b strings.Builder
	b.WriteString(`<nav class="tl-next-prev">` + "\n")
	if i > 0 {
		b.WriteString(`  <div class="next">`)
		b.WriteString(dayLinkHTML(ds[i-1], dateFormat))
		b.WriteString(`</div><div class="tl-right-arrow">→</div>` + "\n")
	}
	if i < len(ds)-1 {
		b.WriteString(`  <div class="tl-left-arrow">←</div><div class="prev">`)
		b.WriteString(dayLinkHTML(ds[i+1], dateFormat))
		b.WriteString("</div>\n")
	}
	b.WriteString("</nav>\n")

	return b.String()
}

// archiveHTML renders the year/week navigation. The current week, if any, is
// marked instead of linked.
func archiveHTML(a archive, current yearWeek, prefix, labelFormat string) string {
	var b strings.Builder
	b.WriteString("<nav>\n  <dl class=\"tl-archive\">\n")
	for _, year := range a.years() {
		b.WriteString("    <dt>" + year + "</dt>\n    <dd>\n      <ul>\n")
		for _, week := range a[year] {
			if current != noWeek && year+"-"+week == current.String() {
				b.WriteString(`        <li class="tl-self">` + week + "</li>\n")
				continue
			}
			title := html.EscapeString(weekLabel(labelFormat, year, week))
			uri := prefix + "/" + year + "/week/" + week + ".html"
			b.WriteString(`        <li><a href="` + uri + `" title="` + title + `">` + week + "</a></li>\n")
		}
		b.WriteString("      </ul>\n    </dd>\n")
	}
	b.WriteString("  </dl>\n</nav>\n")

	return b.String()
}
