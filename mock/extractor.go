package mock

import "github.com/fwojciec/readview"

var _ readview.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of readview.Extractor.
type Extractor struct {
	ExtractFn func(input []byte, req readview.ExtractRequest) (*readview.Article, error)
}

func (e *Extractor) Extract(input []byte, req readview.ExtractRequest) (*readview.Article, error) {
	return e.ExtractFn(input, req)
}
