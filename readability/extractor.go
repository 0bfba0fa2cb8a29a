package readability

import "github.com/fwojciec/readview"

// Ensure Extractor implements readview.Extractor.
var _ readview.Extractor = (*Extractor)(nil)

// Extractor implements readview.Extractor with a new Document per call.
type Extractor struct {
	opts []Option
}

// NewExtractor creates an Extractor applying opts to every Document.
func NewExtractor(opts ...Option) *Extractor {
	return &Extractor{opts: opts}
}

// Extract parses input and returns the requested fields.
func (e *Extractor) Extract(input []byte, req readview.ExtractRequest) (*readview.Article, error) {
	if len(input) == 0 {
		return nil, readview.Errorf(readview.EINVALID, "empty HTML input")
	}
	doc := New(input, e.opts...)
	if err := doc.Parse(req.Fields, req.HTMLPartial); err != nil {
		return nil, err
	}
	article := doc.Article()
	return &article, nil
}
