package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/readview"
	"github.com/fwojciec/readview/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements readview.Converter at compile time.
var _ readview.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts paragraphs and emphasis", func(t *testing.T) {
		t.Parallel()

		html := `<div><p>The council <b>approved</b> the <i>budget</i>.</p><p>Second paragraph.</p></div>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "The council **approved** the *budget*.")
		assert.Contains(t, md, "Second paragraph.")
	})

	t.Run("converts headings and lists", func(t *testing.T) {
		t.Parallel()

		html := `<h2>Highlights</h2><ul><li>Parks</li><li>Libraries</li></ul>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "## Highlights")
		assert.Contains(t, md, "- Parks")
		assert.Contains(t, md, "- Libraries")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		html := `<table><tr><th>District</th><th>Funding</th></tr><tr><td>North</td><td>12</td></tr></table>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "District")
		assert.Contains(t, md, "North")
		assert.Contains(t, md, "|")
	})

	t.Run("resolves relative links against domain", func(t *testing.T) {
		t.Parallel()

		html := `<p>See the <a href="/budget">full budget</a>.</p>`

		conv := htmltomarkdown.NewConverter(htmltomarkdown.WithDomain("https://example.com"))
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "[full budget](https://example.com/budget)")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("   ")

		assert.Equal(t, readview.EINVALID, readview.ErrorCode(err))
	})
}

func TestConverter_ConvertArticle(t *testing.T) {
	t.Parallel()

	t.Run("prefixes the title as a heading", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.ConvertArticle(&readview.Article{
			Title:   "Council approves budget",
			Summary: "<div><p>The council met.</p></div>",
		})

		require.NoError(t, err)
		assert.Equal(t, "# Council approves budget\n\nThe council met.", md)
	})

	t.Run("omits missing title", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.ConvertArticle(&readview.Article{Summary: "<p>Body only.</p>"})

		require.NoError(t, err)
		assert.Equal(t, "Body only.", md)
	})

	t.Run("requires a summary", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.ConvertArticle(&readview.Article{Title: "Title"})

		assert.Equal(t, readview.EINVALID, readview.ErrorCode(err))
	})
}
