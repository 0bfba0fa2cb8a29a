package readability

import (
	"regexp"
	"strings"
)

var (
	unlikelyCandidatesRe = regexp.MustCompile(`(?i)combx|comment|community|disqus|extra|foot|header|menu|remark|rss|shoutbox|sidebar|sponsor|ad-break|agegate|pagination|pager|popup|tweet|twitter`)
	maybeCandidateRe     = regexp.MustCompile(`(?i)and|article|body|column|main|shadow`)
	positiveRe           = regexp.MustCompile(`(?i)article|body|content|entry|hentry|main|page|pagination|post|text|blog|story`)
	negativeRe           = regexp.MustCompile(`(?i)combx|comment|com-|contact|foot|footer|footnote|masthead|media|meta|outbrain|promo|related|scroll|shoutbox|sidebar|sponsor|shopping|tags|tool|widget`)
	shareLinksRe         = regexp.MustCompile(`(?i)twitter\.com/share|pinterest\.com/pin/create|facebook\.com/sharer`)
	sentenceEndRe        = regexp.MustCompile(`\.( |$)`)
)

// divToPTags are the tag prefixes of descendants that keep a <div> from
// becoming a <p>.
var divToPTags = []string{"a", "blockquote", "dl", "div", "img", "ol", "p", "pre", "table", "ul"}

// keywords is a caller-supplied keyword list compiled for substring search
// (class and id values) and prefix match (synthetic "tag-<name>" values).
type keywords struct {
	search *regexp.Regexp
	prefix *regexp.Regexp
}

func compileKeywords(list []string) *keywords {
	var quoted []string
	for _, k := range list {
		if k = strings.TrimSpace(k); k != "" {
			quoted = append(quoted, regexp.QuoteMeta(strings.ToLower(k)))
		}
	}
	if len(quoted) == 0 {
		return nil
	}
	alt := strings.Join(quoted, "|")
	return &keywords{
		search: regexp.MustCompile(alt),
		prefix: regexp.MustCompile(`^(?:` + alt + `)`),
	}
}

func (k *keywords) find(s string) bool {
	return k != nil && k.search.MatchString(s)
}

func (k *keywords) match(s string) bool {
	return k != nil && k.prefix.MatchString(s)
}
