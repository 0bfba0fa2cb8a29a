package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/readview"
	"github.com/fwojciec/readview/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		source  string
		format  string
		want    string
		wantErr bool
	}{
		{
			name:   "url path",
			source: "https://example.com/news/budget.html",
			format: readview.FormatMarkdown,
			want:   "news/budget.md",
		},
		{
			name:   "trailing slash becomes index",
			source: "https://example.com/news/",
			format: readview.FormatHTML,
			want:   "news/index.html",
		},
		{
			name:   "root url becomes index",
			source: "https://example.com",
			format: readview.FormatJSON,
			want:   "index.json",
		},
		{
			name:   "ignores query string",
			source: "https://example.com/a/b?page=2",
			format: readview.FormatMarkdown,
			want:   "a/b.md",
		},
		{
			name:   "file path uses base name",
			source: "/tmp/pages/article.htm",
			format: readview.FormatMarkdown,
			want:   "article.md",
		},
		{
			name:   "stdin",
			source: "",
			format: readview.FormatHTML,
			want:   "stdin.html",
		},
		{
			name:    "unknown format",
			source:  "page.html",
			format:  "pdf",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fs.OutputPath(tt.source, tt.format)

			if tt.wantErr {
				assert.Equal(t, readview.EINVALID, readview.ErrorCode(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHash(t *testing.T) {
	t.Parallel()

	assert.Len(t, fs.Hash("hello"), 16)
	assert.Equal(t, fs.Hash("hello"), fs.Hash("hello"))
	assert.NotEqual(t, fs.Hash("hello"), fs.Hash("world"))
	assert.Equal(t, "ef46db3751d8e999", fs.Hash(""))
}

func TestFormatOutput(t *testing.T) {
	t.Parallel()

	t.Run("formats markdown with frontmatter", func(t *testing.T) {
		t.Parallel()

		out := &readview.Output{
			Source: "https://example.com/news/budget",
			Title:  "Council approves budget",
			Format: readview.FormatMarkdown,
			Body:   "The council met on Tuesday.",
		}

		got := fs.FormatOutput(out)

		want := "---\nsource: https://example.com/news/budget\ntitle: Council approves budget\nhash: " +
			fs.Hash(out.Body) + "\n---\n\nThe council met on Tuesday."
		assert.Equal(t, want, got)
	})

	t.Run("json is written as is", func(t *testing.T) {
		t.Parallel()

		out := &readview.Output{Format: readview.FormatJSON, Body: `{"title":"x"}`}

		assert.Equal(t, `{"title":"x"}`, fs.FormatOutput(out))
	})
}

func TestWriter_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ readview.OutputWriter = &fs.Writer{}
}

func TestWriter_WriteOutput(t *testing.T) {
	t.Parallel()

	t.Run("writes output to path derived from source", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()
		w := fs.NewWriter(baseDir)

		out := &readview.Output{
			Source: "https://example.com/news/2024/budget.html",
			Title:  "Budget",
			Format: readview.FormatHTML,
			Body:   "<p>Budget</p>",
		}

		err := w.WriteOutput(context.Background(), out)

		require.NoError(t, err)
		content, err := os.ReadFile(filepath.Join(baseDir, "news/2024/budget.html"))
		require.NoError(t, err)
		assert.Equal(t, fs.FormatOutput(out), string(content))
	})

	t.Run("rejects invalid output", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())

		err := w.WriteOutput(context.Background(), &readview.Output{Format: readview.FormatHTML})

		assert.Equal(t, readview.EINVALID, readview.ErrorCode(err))
	})

	t.Run("respects canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		w := fs.NewWriter(t.TempDir())

		err := w.WriteOutput(ctx, &readview.Output{Format: readview.FormatHTML, Body: "<p>x</p>"})

		assert.ErrorIs(t, err, context.Canceled)
	})
}
