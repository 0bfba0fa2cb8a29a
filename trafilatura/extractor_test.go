package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/readview"
	"github.com/fwojciec/readview/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements readview.Extractor at compile time.
var _ readview.Extractor = (*trafilatura.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title from meta tags", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Council approves budget - Daily Planet</title>
<meta property="og:title" content="Council approves budget">
</head>
<body>
<nav>Navigation here</nav>
<main>
<h1>Council approves budget</h1>
<p>The city council voted on Tuesday to approve the new budget for the coming year.</p>
</main>
<footer>Footer content</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor(nil)
		result, err := ext.Extract([]byte(html), readview.ExtractRequest{})

		require.NoError(t, err)
		assert.NotEmpty(t, result.Title)
	})

	t.Run("extracts main content without boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav class="main-nav">
<ul>
<li><a href="/">Home</a></li>
<li><a href="/about">About</a></li>
</ul>
</nav>
<article>
<h1>Budget vote</h1>
<p>This paragraph contains the substantive article content readers came for.</p>
</article>
<footer>
<p>Copyright 2024 Example Corp</p>
</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor(nil)
		result, err := ext.Extract([]byte(html), readview.ExtractRequest{HTMLPartial: true})

		require.NoError(t, err)
		assert.Contains(t, result.Summary, "substantive article content")
		assert.NotContains(t, result.Summary, "main-nav")
		assert.NotContains(t, result.Summary, "Copyright 2024 Example Corp")
		assert.NotContains(t, result.Summary, "<html>")
	})

	t.Run("returns only requested fields", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Only title</title></head><body><p>Simple content</p></body></html>`

		ext := trafilatura.NewExtractor(nil)
		result, err := ext.Extract([]byte(html), readview.ExtractRequest{
			Fields: readview.FieldSet{readview.FieldSummary},
		})

		require.NoError(t, err)
		assert.Empty(t, result.Title)
		assert.Contains(t, result.Summary, "Simple content")
		assert.Contains(t, result.Summary, "<html><body>")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor(nil)
		_, err := ext.Extract(nil, readview.ExtractRequest{})

		assert.Equal(t, readview.EINVALID, readview.ErrorCode(err))
	})
}
