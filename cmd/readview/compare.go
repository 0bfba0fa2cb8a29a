package main

import (
	"bytes"
	"fmt"
	"slices"
	"text/tabwriter"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/fwojciec/readview"
	"github.com/fwojciec/readview/fs"
)

// comparison is one engine's result on the compared page.
type comparison struct {
	Engine string
	Title  string
	Length int
	Hash   string
	Err    error
}

// Run executes the compare command. Engines run concurrently on private
// copies of the input; a failing engine is reported in its row.
func (c *CompareCmd) Run(deps *Dependencies) error {
	input, err := readInput(deps, c.File)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(deps.Extractors))
	for name := range deps.Extractors {
		names = append(names, name)
	}
	slices.Sort(names)

	results := make([]comparison, len(names))
	g, ctx := errgroup.WithContext(deps.Ctx)
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			article, err := deps.Extractors[name].Extract(bytes.Clone(input), readview.ExtractRequest{
				Fields:      readview.FieldSet{readview.FieldTitle, readview.FieldSummary},
				HTMLPartial: true,
			})
			if err != nil {
				results[i] = comparison{Engine: name, Err: err}
				return nil
			}
			results[i] = comparison{
				Engine: name,
				Title:  article.Title,
				Length: utf8.RuneCountInString(article.Summary),
				Hash:   fs.Hash(article.Summary),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	w := tabwriter.NewWriter(deps.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ENGINE\tLENGTH\tHASH\tTITLE")
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(w, "%s\t-\t-\terror: %s\n", r.Engine, readview.ErrorMessage(r.Err))
			continue
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", r.Engine, r.Length, r.Hash, r.Title)
	}
	return w.Flush()
}
