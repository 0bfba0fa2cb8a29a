package mock

import "github.com/fwojciec/readview"

var _ readview.EncodingResolver = (*EncodingResolver)(nil)

// EncodingResolver is a mock implementation of readview.EncodingResolver.
type EncodingResolver struct {
	ResolveFn func(raw []byte) string
}

func (r *EncodingResolver) Resolve(raw []byte) string {
	return r.ResolveFn(raw)
}

var _ readview.AttributeCleaner = (*AttributeCleaner)(nil)

// AttributeCleaner is a mock implementation of readview.AttributeCleaner.
type AttributeCleaner struct {
	CleanAttributesFn func(markup string) (string, error)
}

func (c *AttributeCleaner) CleanAttributes(markup string) (string, error) {
	return c.CleanAttributesFn(markup)
}
