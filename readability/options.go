package readability

import (
	"log/slog"

	"github.com/fwojciec/readview"
)

// Defaults for the length thresholds.
const (
	// DefaultMinTextLength is the shortest paragraph, in characters, that
	// contributes to candidate scores.
	DefaultMinTextLength = 25

	// DefaultRetryLength is the shortest summary, in characters, accepted
	// from the ruthless pass before retrying leniently.
	DefaultRetryLength = 250
)

// Option configures a Document.
type Option func(*Document)

// WithBaseURL makes image sources and links absolute. Only the scheme and
// host of the URL are used.
func WithBaseURL(rawURL string) Option {
	return func(d *Document) {
		d.rawBaseURL = rawURL
	}
}

// WithMinTextLength sets the minimum paragraph length considered for scoring.
// Defaults to DefaultMinTextLength.
func WithMinTextLength(n int) Option {
	return func(d *Document) {
		d.minTextLength = n
	}
}

// WithRetryLength sets the summary length below which the ruthless pass is
// retried leniently. Defaults to DefaultRetryLength.
func WithRetryLength(n int) Option {
	return func(d *Document) {
		d.retryLength = n
	}
}

// WithPositiveKeywords adds class/id keywords that raise a node's weight.
// Keywords are matched case-sensitively after lower-casing; a keyword of the
// form "tag-<name>" also matches elements by tag.
func WithPositiveKeywords(keywords ...string) Option {
	return func(d *Document) {
		d.positive = compileKeywords(keywords)
	}
}

// WithNegativeKeywords adds class/id keywords that lower a node's weight.
func WithNegativeKeywords(keywords ...string) Option {
	return func(d *Document) {
		d.negative = compileKeywords(keywords)
	}
}

// WithDebug enables debug logging of scores and removals.
func WithDebug(debug bool) Option {
	return func(d *Document) {
		d.debugEnabled = debug
	}
}

// WithLogger sets the logger. Defaults to a logger that discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Document) {
		d.logger = logger
	}
}

// WithEncodingResolver replaces the encoding resolver used for byte input.
func WithEncodingResolver(r readview.EncodingResolver) Option {
	return func(d *Document) {
		d.resolver = r
	}
}

// WithMetadata replaces the title, lead and image lookups.
func WithMetadata(m Metadata) Option {
	return func(d *Document) {
		d.metadata = m
	}
}

// WithAttributeCleaner replaces the attribute cleaner applied to output markup.
func WithAttributeCleaner(c readview.AttributeCleaner) Option {
	return func(d *Document) {
		d.cleaner = c
	}
}
