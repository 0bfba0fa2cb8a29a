package goquery

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// titleSelectors name elements that commonly hold the headline on news sites.
var titleSelectors = []string{
	"#title", "#head", "#heading",
	".pageTitle", ".news_title", ".title", ".head", ".heading",
	".contentheading", ".small_header_red",
}

// titleDelimiters separate a headline from a site or section name.
var titleDelimiters = []string{" | ", " - ", " :: ", " / "}

var titleReplacer = strings.NewReplacer(
	"\u2014", "-",
	"\u2013", "-",
	"&mdash;", "-",
	"&ndash;", "-",
	"\u00a0", " ",
	"\u00ab", `"`,
	"\u00bb", `"`,
	"&quot;", `"`,
)

// Metadata answers the selector-driven lookups of the extraction pipeline:
// titles and social images from the pristine page, and the lead paragraph
// and first image from the extracted article.
type Metadata struct{}

// NewMetadata creates a new Metadata.
func NewMetadata() *Metadata {
	return &Metadata{}
}

// Title returns the normalized text of the first <title> element.
func (m *Metadata) Title(doc *html.Node) string {
	raw, ok := titleText(goquery.NewDocumentFromNode(doc))
	if !ok {
		return ""
	}
	return normalizeTitle(raw)
}

// ShortTitle returns the title stripped of site names and section prefixes.
//
// Headings and headline-like elements whose text appears inside the title are
// preferred, longest first. Without such a match the title is split on common
// delimiters. The full title is returned when the shortened one has fewer than
// two words or is not between 16 and 149 characters long. A short headline
// ahead of a site name only needs ten characters.
func (m *Metadata) ShortTitle(doc *html.Node) string {
	d := goquery.NewDocumentFromNode(doc)
	raw, ok := titleText(d)
	if !ok {
		return ""
	}
	orig := normalizeTitle(raw)

	var candidates []string
	addMatch := func(text string) {
		text = normalizeTitle(text)
		if len(strings.Fields(text)) < 2 || utf8.RuneCountInString(text) < 15 {
			return
		}
		if !strings.Contains(strings.ReplaceAll(orig, `"`, ""), strings.ReplaceAll(text, `"`, "")) {
			return
		}
		if !slices.Contains(candidates, text) {
			candidates = append(candidates, text)
		}
	}
	collect := func(_ int, s *goquery.Selection) {
		if text := leadingText(s); text != "" {
			addMatch(text)
		}
		if text := s.Text(); text != "" {
			addMatch(text)
		}
	}
	for _, tag := range []string{"h1", "h2", "h3"} {
		d.Find(tag).Each(collect)
	}
	for _, sel := range titleSelectors {
		d.Find(sel).Each(collect)
	}

	title, minLength := orig, minTitleLength
	if len(candidates) > 0 {
		title = longest(candidates)
	} else {
		title, minLength = splitTitle(orig)
	}

	n := utf8.RuneCountInString(title)
	if wordCount(title) < 2 || n <= minLength || n >= 150 {
		return orig
	}
	return title
}

const (
	// minTitleLength is the length a shortened title must exceed.
	minTitleLength = 15
	// minHeadlineLength applies to a short headline taken from before a
	// delimiter, as in "Breaking News | Example Times".
	minHeadlineLength = 9
)

// splitTitle keeps the meaningful segment of a delimited title and returns
// the length the segment must exceed to be used.
func splitTitle(title string) (string, int) {
	for _, delim := range titleDelimiters {
		if !strings.Contains(title, delim) {
			continue
		}
		parts := strings.Split(title, delim)
		first, last := parts[0], parts[len(parts)-1]
		switch {
		case wordCount(first) >= 4:
			return first, minTitleLength
		case wordCount(last) >= 4:
			return last, minTitleLength
		case wordCount(first) >= 2 && wordCount(first)+wordCount(last) >= 4:
			return first, minHeadlineLength
		}
	}

	if strings.Contains(title, ": ") {
		parts := strings.Split(title, ": ")
		if last := parts[len(parts)-1]; wordCount(last) >= 4 {
			return last, minTitleLength
		}
		return strings.SplitN(title, ": ", 2)[1], minTitleLength
	}
	return title, minTitleLength
}

// MetaImageURL returns the page's og:image, falling back to twitter:image:src.
func (m *Metadata) MetaImageURL(doc *html.Node) string {
	d := goquery.NewDocumentFromNode(doc)
	for _, sel := range []string{
		`head meta[property="og:image"]`,
		`head meta[name="twitter:image:src"]`,
	} {
		if content := strings.TrimSpace(d.Find(sel).First().AttrOr("content", "")); content != "" {
			return content
		}
	}
	return ""
}

// Lead returns the text of the article's first paragraph when it is longer
// than 50 and shorter than 300 characters.
func (m *Metadata) Lead(article *html.Node) string {
	p := goquery.NewDocumentFromNode(article).Find("p").First()
	if p.Length() == 0 {
		return ""
	}
	lead := p.Text()
	if n := utf8.RuneCountInString(lead); n > 50 && n < 300 {
		return lead
	}
	return ""
}

// FirstImageURL returns the src of the article's first image.
func (m *Metadata) FirstImageURL(article *html.Node) string {
	return goquery.NewDocumentFromNode(article).Find("img").First().AttrOr("src", "")
}

func titleText(d *goquery.Document) (string, bool) {
	t := d.Find("title").First()
	if t.Length() == 0 {
		return "", false
	}
	text := t.Text()
	return text, text != ""
}

func normalizeTitle(s string) string {
	return titleReplacer.Replace(strings.Join(strings.Fields(s), " "))
}

// leadingText returns the text preceding the first child element.
func leadingText(s *goquery.Selection) string {
	if s.Length() == 0 {
		return ""
	}
	var sb strings.Builder
	for c := s.Get(0).FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			break
		}
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return sb.String()
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}

// longest returns the longest string, preferring the earliest among equals.
func longest(ss []string) string {
	best := ss[0]
	for _, s := range ss[1:] {
		if utf8.RuneCountInString(s) > utf8.RuneCountInString(best) {
			best = s
		}
	}
	return best
}
