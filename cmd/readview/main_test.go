package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	main "github.com/fwojciec/readview/cmd/readview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<html>
<head><title>Council approves budget | Daily Planet</title></head>
<body>
<div class="sidebar"><a href="/weather">Weather today</a></div>
<div id="story">
<p>The city council met on Tuesday evening to debate the new budget, which includes funding for parks, libraries and public transit across every district.</p>
<p>After three hours of discussion, the council voted six to three in favor of the budget, with amendments restoring part of the library funding.</p>
</div>
</body>
</html>`

func writePage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "budget.html")
	require.NoError(t, os.WriteFile(path, []byte(page), 0644))
	return path
}

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "readview")
	assert.Contains(t, stdout.String(), "extract")
	assert.Contains(t, stdout.String(), "compare")
}

func TestMain_Run_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{}, &stdout, &stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestMain_Run_Extract(t *testing.T) {
	t.Parallel()

	t.Run("prints the summary of a file", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"extract", "--partial", writePage(t)}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "debate the new budget")
		assert.NotContains(t, stdout.String(), "Weather today")
	})

	t.Run("reads stdin", func(t *testing.T) {
		t.Parallel()

		m := &main.Main{Stdin: strings.NewReader(page)}
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"extract", "--format", "json", "-f", "title"}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `"title": "Council approves budget | Daily Planet"`)
		assert.NotContains(t, stdout.String(), `"summary"`)
	})

	t.Run("writes markdown to a directory", func(t *testing.T) {
		t.Parallel()

		out := t.TempDir()
		m := main.NewMain()
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{
			"extract", "--format", "markdown", "--out", out,
			"--base-url", "https://example.com/news/budget",
			writePage(t),
		}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "news/budget.md")
		content, err := os.ReadFile(filepath.Join(out, "news", "budget.md"))
		require.NoError(t, err)
		assert.Contains(t, string(content), "source: https://example.com/news/budget")
		assert.Contains(t, string(content), "# Council approves budget | Daily Planet")
		assert.Contains(t, string(content), "debate the new budget")
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"extract", "-f", "byline", writePage(t)}, &stdout, &stderr)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), `unknown field "byline"`)
	})

	t.Run("rejects unknown engines", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"extract", "--engine", "lynx", writePage(t)}, &stdout, &stderr)

		require.Error(t, err)
	})

	t.Run("rejects relative base URL", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"extract", "--base-url", "/news", writePage(t)}, &stdout, &stderr)

		require.Error(t, err)
	})
}
