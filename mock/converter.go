package mock

import "github.com/fwojciec/readview"

var _ readview.Converter = (*Converter)(nil)

// Converter is a mock implementation of readview.Converter.
type Converter struct {
	ConvertFn        func(html string) (string, error)
	ConvertArticleFn func(article *readview.Article) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

func (c *Converter) ConvertArticle(article *readview.Article) (string, error) {
	return c.ConvertArticleFn(article)
}
