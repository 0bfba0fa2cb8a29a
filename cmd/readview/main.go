package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/readview"
	"github.com/fwojciec/readview/fs"
	"github.com/fwojciec/readview/htmltomarkdown"
	"github.com/fwojciec/readview/readability"
	"github.com/fwojciec/readview/shiori"
	rvslog "github.com/fwojciec/readview/slog"
	"github.com/fwojciec/readview/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Stdin is read when no input file is given.
	Stdin io.Reader
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Stdin: os.Stdin}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("readview"),
		kong.Description("Extract the readable article from HTML pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'readview --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Debug {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire command-specific dependencies based on command
	flags := cli.Compare.EngineFlags
	if strings.HasPrefix(kongCtx.Command(), "extract") {
		flags = cli.Extract.EngineFlags
	}
	deps.Extractors, err = newExtractors(flags, deps.Logger, cli.Debug)
	if err != nil {
		return err
	}

	if strings.HasPrefix(kongCtx.Command(), "extract") {
		var opts []htmltomarkdown.Option
		if flags.BaseURL != "" {
			opts = append(opts, htmltomarkdown.WithDomain(flags.BaseURL))
		}
		deps.Converter = htmltomarkdown.NewConverter(opts...)
		if cli.Extract.Out != "" {
			deps.Writer = fs.NewWriter(cli.Extract.Out)
		}
	}

	return kongCtx.Run(deps)
}

// newExtractors builds every engine from the flags, each wrapped with
// logging.
func newExtractors(flags EngineFlags, logger *slog.Logger, debug bool) (map[string]readview.Extractor, error) {
	var pageURL *url.URL
	if flags.BaseURL != "" {
		u, err := url.Parse(flags.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return nil, readview.Errorf(readview.EINVALID, "invalid base URL %q", flags.BaseURL)
		}
		pageURL = u
	}

	extractors := map[string]readview.Extractor{
		EngineReadability: readability.NewExtractor(
			readability.WithBaseURL(flags.BaseURL),
			readability.WithMinTextLength(flags.MinTextLength),
			readability.WithRetryLength(flags.RetryLength),
			readability.WithPositiveKeywords(flags.Positive...),
			readability.WithNegativeKeywords(flags.Negative...),
			readability.WithDebug(debug),
			readability.WithLogger(logger),
		),
		EngineShiori:      shiori.NewExtractor(pageURL),
		EngineTrafilatura: trafilatura.NewExtractor(pageURL),
	}
	for name, e := range extractors {
		extractors[name] = rvslog.NewLoggingExtractor(e, name, logger)
	}
	return extractors, nil
}

// readInput reads the named file, or stdin when the name is empty or "-".
func readInput(deps *Dependencies, file string) ([]byte, error) {
	if file == "" || file == "-" {
		if deps.Stdin == nil {
			return nil, readview.Errorf(readview.EINVALID, "no input: pass a file or pipe HTML to stdin")
		}
		return io.ReadAll(deps.Stdin)
	}
	return os.ReadFile(file)
}
