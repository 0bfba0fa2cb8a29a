// Package readability extracts the readable article from an HTML page.
//
// A Document owns a pristine tree built once from the input. Title, content
// and metadata lookups read the pristine tree; the summary pipeline runs on
// fresh clones of it. The summary pipeline scores paragraph containers,
// assembles the best candidate with its related siblings and sanitizes the
// result. A first ruthless attempt strips nodes that look like boilerplate;
// when that yields nothing, or too little, a lenient attempt keeps them.
package readability

import (
	"fmt"
	"log/slog"
	"net/url"

	"golang.org/x/net/html"

	"github.com/fwojciec/readview"
	"github.com/fwojciec/readview/bluemonday"
	"github.com/fwojciec/readview/charset"
	"github.com/fwojciec/readview/dom"
	"github.com/fwojciec/readview/goquery"
)

// Metadata answers the selector-driven lookups of the extraction. Title,
// ShortTitle and MetaImageURL receive the pristine page; Lead and
// FirstImageURL receive the extracted article.
type Metadata interface {
	Title(doc *html.Node) string
	ShortTitle(doc *html.Node) string
	MetaImageURL(doc *html.Node) string
	Lead(article *html.Node) string
	FirstImageURL(article *html.Node) string
}

// Mode is the strictness of a summary attempt.
type Mode int

// Summary attempt modes.
const (
	Ruthless Mode = iota
	Lenient
)

func (m Mode) String() string {
	if m == Ruthless {
		return "ruthless"
	}
	return "lenient"
}

// maxAttempts caps the summary pipeline at one ruthless and one lenient run.
const maxAttempts = 2

// Attempt records one run of the summary pipeline.
type Attempt struct {
	Mode       Mode
	Candidates []Candidate
	Best       Candidate
	Found      bool
	Length     int
}

// Document extracts fields from a single HTML input.
type Document struct {
	input  []byte
	isText bool

	rawBaseURL    string
	baseURL       *url.URL
	minTextLength int
	retryLength   int
	positive      *keywords
	negative      *keywords
	debugEnabled  bool
	logger        *slog.Logger
	resolver      readview.EncodingResolver
	metadata      Metadata
	cleaner       readview.AttributeCleaner

	pristine     *dom.Document
	pristineNode *html.Node
	article      *dom.Document
	articleRoot  dom.NodeID
	attempts     []Attempt
	result       readview.Article
}

// New creates a Document from encoded bytes. The encoding is resolved from
// declarations in the markup or detected from its content.
func New(input []byte, opts ...Option) *Document {
	d := &Document{
		input:         input,
		minTextLength: DefaultMinTextLength,
		retryLength:   DefaultRetryLength,
		logger:        slog.New(slog.DiscardHandler),
		resolver:      charset.NewResolver(),
		metadata:      goquery.NewMetadata(),
		cleaner:       bluemonday.NewCleaner(),
		articleRoot:   dom.None,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NewFromString creates a Document from already decoded markup.
func NewFromString(s string, opts ...Option) *Document {
	d := New([]byte(s), opts...)
	d.isText = true
	return d
}

// Parse computes the requested fields. An empty field set requests
// readview.DefaultFields. Fields that depend on the summary pull it in.
// Results from a previous call are discarded.
func (d *Document) Parse(fields readview.FieldSet, htmlPartial bool) error {
	if len(fields) == 0 {
		fields = readview.DefaultFields
	}
	fields = fields.Expand()

	if err := d.configure(); err != nil {
		return err
	}
	d.result = readview.Article{}
	d.attempts = nil
	d.article, d.articleRoot = nil, dom.None

	if err := d.build(); err != nil {
		return err
	}

	if fields.Has(readview.FieldTitle) {
		d.result.Title = d.metadata.Title(d.pristineNode)
	}
	if fields.Has(readview.FieldShortTitle) {
		d.result.ShortTitle = d.metadata.ShortTitle(d.pristineNode)
	}
	if fields.Has(readview.FieldContent) {
		d.result.Content = d.content()
	}
	if fields.Has(readview.FieldSummary) {
		summary, err := d.summary(htmlPartial)
		if err != nil {
			return err
		}
		d.result.Summary = summary
	}

	var articleNode *html.Node
	if d.article != nil {
		articleNode = d.article.ToNode(d.articleRoot)
	}
	if articleNode != nil && fields.Has(readview.FieldLead) {
		d.result.Lead = d.metadata.Lead(articleNode)
	}
	if articleNode != nil && (fields.Has(readview.FieldFirstImageURL) || fields.Has(readview.FieldMainImageURL)) {
		d.result.FirstImageURL = d.metadata.FirstImageURL(articleNode)
	}
	if fields.Has(readview.FieldMainImageURL) {
		d.result.MainImageURL = d.metadata.MetaImageURL(d.pristineNode)
		if d.result.MainImageURL == "" {
			d.result.MainImageURL = d.result.FirstImageURL
		}
	}
	if !fields.Has(readview.FieldFirstImageURL) {
		d.result.FirstImageURL = ""
	}
	return nil
}

func (d *Document) configure() error {
	d.baseURL = nil
	if d.rawBaseURL == "" {
		return nil
	}
	u, err := url.Parse(d.rawBaseURL)
	if err != nil {
		return readview.WrapError(readview.EINVALID, err, "invalid base URL %q", d.rawBaseURL)
	}
	if u.Scheme == "" || u.Host == "" {
		return readview.Errorf(readview.EINVALID, "base URL %q must be absolute", d.rawBaseURL)
	}
	d.baseURL = &url.URL{Scheme: u.Scheme, Host: u.Host, Path: "/"}
	return nil
}

// build decodes the input and parses the pristine tree.
func (d *Document) build() error {
	text := string(d.input)
	if !d.isText {
		d.result.Encoding = d.resolver.Resolve(d.input)
		text = charset.Decode(d.input, d.result.Encoding)
	}
	doc, err := dom.ParseString(text)
	if err != nil {
		return readview.WrapError(readview.EINVALID, err, "failed to parse HTML")
	}
	cleanDocument(doc)
	absolutizeLinks(doc, d.baseURL)
	d.pristine = doc
	d.pristineNode = doc.ToDocumentNode()
	return nil
}

// content renders the page body without scripts, stylesheets or links.
func (d *Document) content() string {
	doc := d.pristine.Clone()
	removeTags(doc, "script", "link", "style")
	root := doc.Find(doc.Root(), "body")
	if root == dom.None {
		root = doc.Root()
	}
	markup, err := doc.RenderString(root)
	if err != nil {
		d.logger.Warn("failed to render content", "error", err)
		return ""
	}
	cleaned, err := d.cleaner.CleanAttributes(markup)
	if err != nil {
		d.logger.Warn("failed to clean attributes", "error", err)
		return markup
	}
	return cleaned
}

// summary runs the ruthless/lenient pipeline. Each attempt starts from a
// fresh clone of the pristine tree.
func (d *Document) summary(htmlPartial bool) (summary string, err error) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("summary extraction panicked", "panic", r)
			err = readview.WrapError(readview.EUNPARSEABLE, fmt.Errorf("%v", r), "failed to extract summary")
		}
	}()

	mode := Ruthless
	for range maxAttempts {
		doc := d.pristine.Clone()
		removeTags(doc, "script", "style")
		for _, body := range doc.FindAll(doc.Root(), "body") {
			doc.SetAttr(body, "id", "readabilityBody")
		}
		if mode == Ruthless {
			d.removeUnlikelyCandidates(doc)
		}
		transformMisusedDivs(doc)

		c := d.scoreParagraphs(doc)
		best, found := d.selectBest(doc, c)
		attempt := Attempt{Mode: mode, Candidates: c.ranked(), Best: best, Found: found}

		var root dom.NodeID
		switch {
		case found:
			root = d.assemble(doc, c, best, htmlPartial)
		case mode == Ruthless:
			d.attempts = append(d.attempts, attempt)
			d.debug("ruthless removal did not work")
			mode = Lenient
			continue
		default:
			d.debug("ruthless and lenient parsing did not work, returning raw html")
			if root = doc.Find(doc.Root(), "body"); root == dom.None {
				root = doc.Root()
			}
		}

		cleaned, err := d.sanitize(doc, root, c)
		if err != nil {
			return "", readview.WrapError(readview.EUNPARSEABLE, err, "failed to render summary")
		}
		attempt.Length = len([]rune(cleaned))
		d.attempts = append(d.attempts, attempt)

		if mode == Ruthless && attempt.Length < d.retryLength {
			d.debug("ruthless summary too short, retrying", "length", attempt.Length, "retry_length", d.retryLength)
			mode = Lenient
			continue
		}
		d.article, d.articleRoot = doc, root
		return cleaned, nil
	}
	return "", readview.Errorf(readview.EUNPARSEABLE, "no summary after %d attempts", maxAttempts)
}

func (d *Document) debug(msg string, args ...any) {
	if d.debugEnabled {
		d.logger.Debug(msg, args...)
	}
}

// Title returns the page title.
func (d *Document) Title() string { return d.result.Title }

// ShortTitle returns the title without site or section names.
func (d *Document) ShortTitle() string { return d.result.ShortTitle }

// Content returns the cleaned page body.
func (d *Document) Content() string { return d.result.Content }

// Summary returns the extracted article markup.
func (d *Document) Summary() string { return d.result.Summary }

// Lead returns the article's opening paragraph.
func (d *Document) Lead() string { return d.result.Lead }

// FirstImageURL returns the first image of the article.
func (d *Document) FirstImageURL() string { return d.result.FirstImageURL }

// MainImageURL returns the page's social image, or the first image.
func (d *Document) MainImageURL() string { return d.result.MainImageURL }

// Encoding returns the resolved input encoding. It is empty for documents
// created from strings.
func (d *Document) Encoding() string { return d.result.Encoding }

// Article returns all computed fields.
func (d *Document) Article() readview.Article { return d.result }

// Attempts returns the summary attempts made by the last Parse.
func (d *Document) Attempts() []Attempt { return d.attempts }
