// Package trafilatura adapts markusmobius/go-trafilatura as an alternative
// extraction engine.
package trafilatura

import (
	"bytes"
	"net/url"

	"github.com/fwojciec/readview"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements readview.Extractor at compile time.
var _ readview.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct {
	pageURL *url.URL
}

// NewExtractor creates a new Extractor. pageURL may be nil.
func NewExtractor(pageURL *url.URL) *Extractor {
	return &Extractor{pageURL: pageURL}
}

// Extract processes raw HTML and returns the requested fields. Lead is the
// page description and MainImageURL the image found in its metadata.
func (e *Extractor) Extract(input []byte, req readview.ExtractRequest) (*readview.Article, error) {
	if len(bytes.TrimSpace(input)) == 0 {
		return nil, readview.Errorf(readview.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
		OriginalURL:    e.pageURL,
	}

	result, err := trafilatura.Extract(bytes.NewReader(input), opts)
	if err != nil {
		return nil, readview.WrapError(readview.EUNPARSEABLE, err, "go-trafilatura failed")
	}

	var summary string
	if result.ContentNode != nil {
		summary, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, readview.WrapError(readview.EUNPARSEABLE, err, "failed to render content")
		}
	}

	article := readview.Article{
		Title:        result.Metadata.Title,
		ShortTitle:   result.Metadata.Title,
		Summary:      readview.WrapDocument(summary, req.HTMLPartial),
		Lead:         result.Metadata.Description,
		MainImageURL: result.Metadata.Image,
	}.Select(req.Fields)
	return &article, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
