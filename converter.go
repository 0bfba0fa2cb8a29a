package readview

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	Convert(html string) (string, error)

	// ConvertArticle renders an article as Markdown: the title as a
	// top-level heading followed by the converted summary.
	ConvertArticle(article *Article) (string, error)
}
