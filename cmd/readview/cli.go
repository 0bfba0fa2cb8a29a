package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/readview"
)

// Engine names accepted by --engine.
const (
	EngineReadability = "readability"
	EngineShiori      = "shiori"
	EngineTrafilatura = "trafilatura"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	// Extractors maps engine names to extractors.
	Extractors map[string]readview.Extractor
	Converter  readview.Converter

	// Writer is nil unless output goes to a directory.
	Writer readview.OutputWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Debug bool `help:"Log scoring and removal decisions to stderr" env:"READVIEW_DEBUG"`

	Extract ExtractCmd `cmd:"" help:"Extract the readable article from an HTML page"`
	Compare CompareCmd `cmd:"" help:"Run every engine on an HTML page and compare the results"`
}

// EngineFlags configure the extraction engines.
type EngineFlags struct {
	BaseURL       string   `name:"base-url" help:"URL the page was fetched from, for resolving relative links"`
	MinTextLength int      `default:"25" help:"Shortest paragraph that counts towards scoring"`
	RetryLength   int      `default:"250" help:"Shortest acceptable summary before retrying leniently"`
	Positive      []string `help:"Extra class/id keywords that mark content (repeatable)"`
	Negative      []string `help:"Extra class/id keywords that mark boilerplate (repeatable)"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	File string `arg:"" optional:"" help:"HTML file to read (stdin when omitted or -)"`

	EngineFlags `embed:""`

	Fields  []string `short:"f" help:"Fields to extract (repeatable, default: title, summary, content, lead, first_image_url, main_image_url)"`
	Partial bool     `short:"p" help:"Return the summary as a <div> fragment instead of a full document"`
	Format  string   `default:"html" enum:"html,markdown,json" help:"Output format (html, markdown, json)"`
	Engine  string   `short:"e" default:"readability" enum:"readability,shiori,trafilatura" help:"Extraction engine"`
	Out     string   `short:"o" type:"path" help:"Write output under this directory instead of stdout"`
}

// CompareCmd is the "compare" subcommand.
type CompareCmd struct {
	File string `arg:"" optional:"" help:"HTML file to read (stdin when omitted or -)"`

	EngineFlags `embed:""`
}
