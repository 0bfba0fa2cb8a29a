package bluemonday_test

import (
	"testing"

	"github.com/fwojciec/readview"
	"github.com/fwojciec/readview/bluemonday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Cleaner implements readview.AttributeCleaner at compile time.
var _ readview.AttributeCleaner = (*bluemonday.Cleaner)(nil)

func TestCleaner_CleanAttributes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "keeps structure",
			input: `<div><p>Hello <b>world</b></p></div>`,
			want:  `<div><p>Hello <b>world</b></p></div>`,
		},
		{
			name:  "strips style and event handlers",
			input: `<p style="color:red" onclick="x()" class="lead">Text</p>`,
			want:  `<p class="lead">Text</p>`,
		},
		{
			name:  "strips image dimensions",
			input: `<img src="https://example.com/a.jpg" width="600" height="400" alt="A">`,
			want:  `<img src="https://example.com/a.jpg" alt="A">`,
		},
		{
			name:  "keeps relative links",
			input: `<a href="/news/budget">Budget</a>`,
			want:  `<a href="/news/budget">Budget</a>`,
		},
		{
			name:  "drops javascript links",
			input: `<a href="javascript:alert(1)">Click</a>`,
			want:  `Click`,
		},
		{
			name:  "keeps table spans",
			input: `<table><tbody><tr><td colspan="2" bgcolor="red">x</td></tr></tbody></table>`,
			want:  `<table><tbody><tr><td colspan="2">x</td></tr></tbody></table>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := bluemonday.NewCleaner()
			got, err := c.CleanAttributes(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCleaner_CleanAttributes_Document(t *testing.T) {
	t.Parallel()

	c := bluemonday.NewCleaner()
	got, err := c.CleanAttributes(`<html><body id="readabilityBody"><div><p>Text</p></div></body></html>`)

	require.NoError(t, err)
	assert.Contains(t, got, `<body id="readabilityBody">`)
	assert.Contains(t, got, `<p>Text</p>`)
}

func TestCleaner_CleanAttributes_Empty(t *testing.T) {
	t.Parallel()

	got, err := bluemonday.NewCleaner().CleanAttributes(" \n")

	require.NoError(t, err)
	assert.Empty(t, got)
}
