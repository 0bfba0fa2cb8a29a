// Package slog decorates readview services with structured logging.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/readview"
)

// Ensure LoggingExtractor implements readview.Extractor.
var _ readview.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging of each extraction.
type LoggingExtractor struct {
	next   readview.Extractor
	engine string
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor. The engine name is
// attached to every record.
func NewLoggingExtractor(next readview.Extractor, engine string, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, engine: engine, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(input []byte, req readview.ExtractRequest) (*readview.Article, error) {
	begin := time.Now()
	article, err := e.next.Extract(input, req)
	if err != nil {
		e.logger.Error("extract",
			"engine", e.engine,
			"bytes", len(input),
			"duration", time.Since(begin),
			"code", readview.ErrorCode(err),
			"error", err,
		)
		return nil, err
	}
	e.logger.Info("extract",
		"engine", e.engine,
		"bytes", len(input),
		"duration", time.Since(begin),
		"encoding", article.Encoding,
		"summary_length", len(article.Summary),
	)
	return article, nil
}
