// Package bluemonday strips presentational and unsafe attributes from
// extracted markup using microcosm-cc/bluemonday.
package bluemonday

import (
	"strings"

	"github.com/fwojciec/readview"
	"github.com/microcosm-cc/bluemonday"
)

// Ensure Cleaner implements readview.AttributeCleaner at compile time.
var _ readview.AttributeCleaner = (*Cleaner)(nil)

// elements is every element the reading view keeps. Anything else is
// unwrapped, keeping its text.
var elements = []string{
	"html", "head", "body", "title",
	"article", "section", "header", "footer", "aside", "nav", "main",
	"div", "span", "p", "br", "hr",
	"h1", "h2", "h3", "h4", "h5", "h6",
	"a", "img", "figure", "figcaption", "picture",
	"ul", "ol", "li", "dl", "dt", "dd",
	"table", "caption", "thead", "tbody", "tfoot", "tr", "th", "td", "colgroup", "col",
	"blockquote", "q", "cite", "pre", "code", "kbd", "samp", "var",
	"b", "i", "u", "s", "strong", "em", "small", "sub", "sup", "mark",
	"abbr", "del", "ins", "time", "address",
}

// Cleaner removes style, size, event handler and other non-content
// attributes while keeping structure, links and image sources.
type Cleaner struct {
	policy *bluemonday.Policy
}

// NewCleaner creates a new Cleaner.
func NewCleaner() *Cleaner {
	p := bluemonday.NewPolicy()
	p.AllowElements(elements...)
	p.AllowAttrs("id", "class", "title", "lang", "dir").Globally()
	p.AllowAttrs("href", "name", "rel").OnElements("a")
	p.AllowAttrs("src", "alt", "srcset").OnElements("img")
	p.AllowAttrs("colspan", "rowspan", "headers", "scope").OnElements("td", "th")
	p.AllowAttrs("cite").OnElements("blockquote", "q", "del", "ins")
	p.AllowAttrs("datetime").OnElements("time", "del", "ins")
	p.AllowAttrs("start", "reversed").OnElements("ol")
	p.AllowURLSchemes("http", "https", "mailto", "ftp")
	p.AllowRelativeURLs(true)
	p.AllowDataURIImages()
	return &Cleaner{policy: p}
}

// CleanAttributes returns markup with disallowed attributes removed.
func (c *Cleaner) CleanAttributes(markup string) (string, error) {
	if strings.TrimSpace(markup) == "" {
		return "", nil
	}
	return c.policy.Sanitize(markup), nil
}
