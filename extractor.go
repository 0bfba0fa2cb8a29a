package readview

// Article holds the fields extracted from an HTML page. Fields that were not
// requested, or could not be found, are empty.
type Article struct {
	// Title is the normalized text of the document's <title>.
	Title string

	// ShortTitle is Title with site names and section prefixes removed.
	ShortTitle string

	// Content is the cleaned markup of the whole document body.
	Content string

	// Summary is the extracted article markup. Boilerplate (nav, footer,
	// sidebar, ads) has been removed.
	Summary string

	// Lead is the text of the article's first paragraph.
	Lead string

	// FirstImageURL is the src of the first image kept in the article.
	FirstImageURL string

	// MainImageURL is the page's declared social image, falling back to
	// FirstImageURL.
	MainImageURL string

	// Encoding is the character encoding the input was decoded with.
	// Empty when the input was already text.
	Encoding string
}

// ExtractRequest selects what an Extractor computes.
type ExtractRequest struct {
	// Fields lists the requested fields. Empty means DefaultFields.
	Fields FieldSet

	// HTMLPartial returns the summary as a bare <div> fragment instead of
	// a full <html><body> document.
	HTMLPartial bool
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	// Extract processes raw HTML bytes and returns the requested fields.
	Extract(input []byte, req ExtractRequest) (*Article, error)
}

// Select returns a copy of the article holding only the requested fields and
// the fields they depend on. Encoding is always kept. An empty set selects
// DefaultFields.
func (a Article) Select(fields FieldSet) Article {
	if len(fields) == 0 {
		fields = DefaultFields
	}
	fields = fields.Expand()
	out := Article{Encoding: a.Encoding}
	for _, f := range fields {
		switch f {
		case FieldTitle:
			out.Title = a.Title
		case FieldShortTitle:
			out.ShortTitle = a.ShortTitle
		case FieldContent:
			out.Content = a.Content
		case FieldSummary:
			out.Summary = a.Summary
		case FieldLead:
			out.Lead = a.Lead
		case FieldFirstImageURL:
			out.FirstImageURL = a.FirstImageURL
		case FieldMainImageURL:
			out.MainImageURL = a.MainImageURL
		}
	}
	return out
}

// WrapDocument wraps a summary fragment in <html><body> unless a partial
// fragment was requested.
func WrapDocument(fragment string, htmlPartial bool) string {
	if htmlPartial || fragment == "" {
		return fragment
	}
	return "<html><body>" + fragment + "</body></html>"
}
