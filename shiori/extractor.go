// Package shiori adapts go-shiori/go-readability, a port of Mozilla's
// Readability.js, as an alternative extraction engine.
package shiori

import (
	"bytes"
	"net/url"

	"github.com/fwojciec/readview"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements readview.Extractor at compile time.
var _ readview.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct {
	pageURL *url.URL
}

// NewExtractor creates a new Extractor. Relative links are resolved against
// pageURL when it is non-nil.
func NewExtractor(pageURL *url.URL) *Extractor {
	return &Extractor{pageURL: pageURL}
}

// Extract processes raw HTML and returns the requested fields. Lead is the
// page excerpt and MainImageURL the page's social image.
func (e *Extractor) Extract(input []byte, req readview.ExtractRequest) (*readview.Article, error) {
	if len(bytes.TrimSpace(input)) == 0 {
		return nil, readview.Errorf(readview.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(bytes.NewReader(input), e.pageURL)
	if err != nil {
		return nil, readview.WrapError(readview.EUNPARSEABLE, err, "go-readability failed")
	}

	result := readview.Article{
		Title:        article.Title,
		ShortTitle:   article.Title,
		Summary:      readview.WrapDocument(article.Content, req.HTMLPartial),
		Lead:         article.Excerpt,
		MainImageURL: article.Image,
	}.Select(req.Fields)
	return &result, nil
}
