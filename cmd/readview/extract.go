package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/readview"
	"github.com/fwojciec/readview/fs"
)

// articleJSON is the JSON rendering of an article. Fields that were not
// requested are omitted. Field order must match readview.Article.
type articleJSON struct {
	Title         string `json:"title,omitempty"`
	ShortTitle    string `json:"short_title,omitempty"`
	Content       string `json:"content,omitempty"`
	Summary       string `json:"summary,omitempty"`
	Lead          string `json:"lead,omitempty"`
	FirstImageURL string `json:"first_image_url,omitempty"`
	MainImageURL  string `json:"main_image_url,omitempty"`
	Encoding      string `json:"encoding,omitempty"`
}

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	fields, err := readview.ParseFields(c.Fields)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", readview.ErrorMessage(err))
		return err
	}

	extractor, ok := deps.Extractors[c.Engine]
	if !ok {
		return readview.Errorf(readview.EINVALID, "unknown engine %q", c.Engine)
	}

	input, err := readInput(deps, c.File)
	if err != nil {
		return err
	}

	article, err := extractor.Extract(input, readview.ExtractRequest{
		Fields:      fields,
		HTMLPartial: c.Partial,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", readview.ErrorMessage(err))
		return err
	}

	body, err := c.render(deps, article)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", readview.ErrorMessage(err))
		return err
	}

	if deps.Writer == nil {
		fmt.Fprintln(deps.Stdout, body)
		return nil
	}

	source := c.BaseURL
	if source == "" {
		source = c.File
	}
	out := &readview.Output{
		Source: source,
		Title:  article.Title,
		Format: c.Format,
		Body:   body,
	}
	if err := deps.Writer.WriteOutput(deps.Ctx, out); err != nil {
		return err
	}
	path, _ := fs.OutputPath(source, c.Format)
	fmt.Fprintf(deps.Stdout, "Wrote %s\n", path)
	return nil
}

func (c *ExtractCmd) render(deps *Dependencies, article *readview.Article) (string, error) {
	switch c.Format {
	case readview.FormatMarkdown:
		return deps.Converter.ConvertArticle(article)
	case readview.FormatJSON:
		b, err := json.MarshalIndent(articleJSON(*article), "", "  ")
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		if article.Summary == "" {
			return "", readview.Errorf(readview.EINVALID, "html output needs the summary field")
		}
		return article.Summary, nil
	}
}
