package mock

import (
	"golang.org/x/net/html"

	"github.com/fwojciec/readview/readability"
)

var _ readability.Metadata = (*Metadata)(nil)

// Metadata is a mock implementation of readability.Metadata.
type Metadata struct {
	TitleFn         func(doc *html.Node) string
	ShortTitleFn    func(doc *html.Node) string
	MetaImageURLFn  func(doc *html.Node) string
	LeadFn          func(article *html.Node) string
	FirstImageURLFn func(article *html.Node) string
}

func (m *Metadata) Title(doc *html.Node) string {
	return m.TitleFn(doc)
}

func (m *Metadata) ShortTitle(doc *html.Node) string {
	return m.ShortTitleFn(doc)
}

func (m *Metadata) MetaImageURL(doc *html.Node) string {
	return m.MetaImageURLFn(doc)
}

func (m *Metadata) Lead(article *html.Node) string {
	return m.LeadFn(article)
}

func (m *Metadata) FirstImageURL(article *html.Node) string {
	return m.FirstImageURLFn(article)
}
