// Package charset resolves and decodes the character encoding of raw HTML.
// Declared encodings are looked up through golang.org/x/net/html/charset and
// validated by decoding; undeclared input is classified statistically with
// github.com/gogs/chardet.
package charset

import (
	"bytes"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/readview"
	"github.com/gogs/chardet"
	htmlcharset "golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Ensure Resolver implements readview.EncodingResolver at compile time.
var _ readview.EncodingResolver = (*Resolver)(nil)

var (
	charsetRe = regexp.MustCompile(`(?i)<meta.*?charset=["']*(.+?)["'>]`)
	pragmaRe  = regexp.MustCompile(`(?i)<meta.*?content=["']*;?charset=(.+?)["'>]`)
	xmlRe     = regexp.MustCompile(`^<\?xml.*?encoding=["']*(.+?)["'>]`)
	tagRe     = regexp.MustCompile(`</?[^>]*>\s*`)
)

// aliases replaces encodings with the superset actually used in the wild.
var aliases = map[string]string{
	"big5":        "big5hkscs",
	"gb2312":      "gb18030",
	"ascii":       "utf-8",
	"maccyrillic": "cp1251",
}

// lookupNames maps normalized names the WHATWG index does not know.
var lookupNames = map[string]string{
	"big5hkscs": "big5",
	"gb-18030":  "gb18030",
	"cp1251":    "windows-1251",
}

var replacementChar = []byte("�")

// Resolver implements readview.EncodingResolver.
type Resolver struct {
	detector *chardet.Detector
}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{detector: chardet.NewTextDetector()}
}

// Resolve tries each declared charset in order (meta charset, meta
// http-equiv content, XML declaration) and returns the first one the input
// decodes cleanly with. Without a usable declaration it falls back to
// statistical detection over the tag-stripped text.
func (r *Resolver) Resolve(raw []byte) string {
	for _, label := range declared(raw) {
		name := Normalize(label)
		if decodes(raw, name) {
			return name
		}
	}

	text := tagRe.ReplaceAll(raw, []byte(" "))
	if len(bytes.TrimSpace(text)) == 0 || len(text) < 10 {
		return "utf-8"
	}

	res, err := r.detector.DetectBest(text)
	if err != nil || res == nil {
		return "utf-8"
	}
	return Normalize(res.Charset)
}

func declared(raw []byte) []string {
	var labels []string
	for _, re := range []*regexp.Regexp{charsetRe, pragmaRe, xmlRe} {
		for _, m := range re.FindAllSubmatch(raw, -1) {
			labels = append(labels, string(m[1]))
		}
	}
	return labels
}

// Normalize lower-cases an encoding label and applies superset aliases.
// An empty label normalizes to "utf-8".
func Normalize(label string) string {
	name := strings.ToLower(strings.TrimSpace(label))
	if name == "" {
		return "utf-8"
	}
	if alias, ok := aliases[name]; ok {
		return alias
	}
	return name
}

// Lookup returns the decoder for a normalized encoding name.
// Returns EINVALID when the name is unknown.
func Lookup(name string) (encoding.Encoding, error) {
	if alt, ok := lookupNames[name]; ok {
		name = alt
	}
	enc, _ := htmlcharset.Lookup(name)
	if enc == nil {
		return nil, readview.Errorf(readview.EINVALID, "unknown encoding %q", name)
	}
	return enc, nil
}

func isUTF8(name string) bool {
	return name == "utf-8" || name == "utf8"
}

// decodes reports whether raw decodes under name without introducing
// replacement characters.
func decodes(raw []byte, name string) bool {
	if isUTF8(name) {
		return utf8.Valid(raw)
	}
	enc, err := Lookup(name)
	if err != nil {
		return false
	}
	out, _, err := transform.Bytes(enc.NewDecoder(), raw)
	if err != nil {
		return false
	}
	return bytes.Count(out, replacementChar) <= bytes.Count(raw, replacementChar)
}

// Decode converts raw bytes in the named encoding to a UTF-8 string.
// Undecodable sequences become U+FFFD; unknown encodings decode as UTF-8.
func Decode(raw []byte, name string) string {
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))
	if !isUTF8(name) {
		if enc, err := Lookup(name); err == nil {
			if out, _, err := transform.Bytes(enc.NewDecoder(), raw); err == nil {
				return string(out)
			}
		}
	}
	return strings.ToValidUTF8(string(raw), "�")
}
