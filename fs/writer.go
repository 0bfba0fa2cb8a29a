// Package fs writes extracted articles to the local filesystem.
package fs

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/readview"
)

// extensions maps output formats to file extensions.
var extensions = map[string]string{
	readview.FormatHTML:     ".html",
	readview.FormatMarkdown: ".md",
	readview.FormatJSON:     ".json",
}

// OutputPath converts a source (URL or file path) to a relative output path
// with the extension of the given format.
// Example: https://example.com/news/budget.html → news/budget.md
// Example: /tmp/page.htm → page.md
func OutputPath(source, format string) (string, error) {
	ext, ok := extensions[format]
	if !ok {
		return "", readview.Errorf(readview.EINVALID, "unknown output format %q", format)
	}

	var p string
	if u, err := url.Parse(source); err == nil && u.Scheme != "" && u.Host != "" {
		p = strings.TrimPrefix(u.Path, "/")
		// Trailing slash becomes index in that directory
		if p == "" || strings.HasSuffix(p, "/") {
			p += "index"
		}
	} else {
		p = filepath.Base(source)
		if source == "" || source == "-" || p == "." || p == string(filepath.Separator) {
			p = "stdin"
		}
	}

	p = strings.TrimSuffix(p, path.Ext(p))
	return p + ext, nil
}

// Hash returns the hex xxhash of s.
func Hash(s string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(s))
}

// FormatOutput renders an output with YAML frontmatter. JSON output is
// returned as is.
func FormatOutput(out *readview.Output) string {
	if out.Format == readview.FormatJSON {
		return out.Body
	}
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(out.Source)
	b.WriteString("\ntitle: ")
	b.WriteString(out.Title)
	b.WriteString("\nhash: ")
	b.WriteString(Hash(out.Body))
	b.WriteString("\n---\n\n")
	b.WriteString(out.Body)
	return b.String()
}

// Ensure Writer implements readview.OutputWriter at compile time.
var _ readview.OutputWriter = (*Writer)(nil)

// Writer writes rendered articles to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteOutput writes an article to disk under a path derived from its source.
func (w *Writer) WriteOutput(ctx context.Context, out *readview.Output) error {
	if err := out.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	relPath, err := OutputPath(out.Source, out.Format)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, relPath)

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(FormatOutput(out)), 0644)
}
