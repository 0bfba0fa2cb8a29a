package readview

import (
	"context"
	"strings"
)

// Output formats.
const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// Formats lists the supported output formats.
var Formats = []string{FormatHTML, FormatMarkdown, FormatJSON}

// Output is a rendered article ready to be written.
type Output struct {
	// Source is the input path or URL the article was extracted from.
	Source string

	// Title is the article title.
	Title string

	// Format is one of FormatHTML, FormatMarkdown or FormatJSON.
	Format string

	// Body is the rendered article.
	Body string
}

// Validate returns an error if the output is missing required fields.
func (o *Output) Validate() error {
	switch o.Format {
	case FormatHTML, FormatMarkdown, FormatJSON:
	default:
		return Errorf(EINVALID, "unknown output format %q", o.Format)
	}
	if strings.TrimSpace(o.Body) == "" {
		return Errorf(EINVALID, "output body required")
	}
	return nil
}

// OutputWriter persists rendered articles.
type OutputWriter interface {
	WriteOutput(ctx context.Context, out *Output) error
}
