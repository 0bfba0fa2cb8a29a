package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/readview/dom"
)

// linkAttrs are the attributes rewritten when links are made absolute.
var linkAttrs = []string{"href", "src", "action", "cite", "longdesc", "poster", "background"}

// removeTags detaches every descendant of the root carrying one of the tags.
func removeTags(doc *dom.Document, tags ...string) {
	for _, id := range doc.FindAll(doc.Root(), tags...) {
		doc.Detach(id)
	}
}

// cleanDocument removes scripts, stylesheets and inline handlers from a
// freshly parsed tree.
func cleanDocument(doc *dom.Document) {
	removeTags(doc, "script", "style", "link")
	for _, id := range doc.Elements(doc.Root()) {
		for _, a := range doc.Attrs(id) {
			switch {
			case strings.HasPrefix(a.Key, "on"), a.Key == "style":
				doc.RemoveAttr(id, a.Key)
			case (a.Key == "href" || a.Key == "src") && isJavaScriptURL(a.Val):
				doc.SetAttr(id, a.Key, "")
			}
		}
	}
}

func isJavaScriptURL(s string) bool {
	s = strings.ToLower(strings.Join(strings.Fields(s), ""))
	return strings.HasPrefix(s, "javascript:")
}

// absolutizeLinks resolves link attributes against base, or against the
// document's <base href> when present. The <base> element is removed.
func absolutizeLinks(doc *dom.Document, base *url.URL) {
	if b := doc.Find(doc.Root(), "base"); b != dom.None {
		if href, ok := doc.Attr(b, "href"); ok {
			if ref, err := url.Parse(strings.TrimSpace(href)); err == nil {
				switch {
				case base != nil:
					base = base.ResolveReference(ref)
				case ref.IsAbs():
					base = ref
				}
			}
		}
		doc.Detach(b)
	}
	if base == nil {
		return
	}
	for _, id := range doc.Elements(doc.Root()) {
		for _, key := range linkAttrs {
			v, ok := doc.Attr(id, key)
			if !ok || strings.TrimSpace(v) == "" {
				continue
			}
			doc.SetAttr(id, key, resolveURL(base, v))
		}
	}
}

// resolveURL resolves ref against base, returning ref unchanged when it
// cannot be parsed.
func resolveURL(base *url.URL, ref string) string {
	u, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return ref
	}
	return base.ResolveReference(u).String()
}

// removeUnlikelyCandidates detaches elements whose class and id look like
// navigation, comments or other boilerplate.
func (d *Document) removeUnlikelyCandidates(doc *dom.Document) {
	for _, id := range doc.Elements(doc.Root()) {
		if !doc.Attached(id) {
			continue
		}
		class, _ := doc.Attr(id, "class")
		ident, _ := doc.Attr(id, "id")
		s := class + " " + ident
		if len(s) < 2 {
			continue
		}
		tag := doc.Tag(id)
		if unlikelyCandidatesRe.MatchString(s) && !maybeCandidateRe.MatchString(s) && tag != "html" && tag != "body" {
			d.debug("removing unlikely candidate", "node", describe(doc, id))
			doc.Detach(id)
		}
	}
}

// hasBlockDescendant reports whether a descendant's tag starts with one of
// divToPTags, so <article> and <picture> count as well as <a> and <p>.
func hasBlockDescendant(doc *dom.Document, id dom.NodeID) bool {
	for _, el := range doc.Elements(id) {
		if el == id {
			continue
		}
		tag := doc.Tag(el)
		for _, prefix := range divToPTags {
			if strings.HasPrefix(tag, prefix) {
				return true
			}
		}
	}
	return false
}

// transformMisusedDivs turns <div>s used as paragraphs into <p>s, then wraps
// loose text inside the remaining <div>s into paragraphs and drops their <br>
// children.
func transformMisusedDivs(doc *dom.Document) {
	for _, div := range doc.FindAll(doc.Root(), "div") {
		if !hasBlockDescendant(doc, div) {
			doc.SetTag(div, "p")
		}
	}

	for _, div := range doc.FindAll(doc.Root(), "div") {
		kids := doc.Children(div)
		for i := 0; i < len(kids); {
			if doc.IsElement(kids[i]) {
				if doc.Tag(kids[i]) == "br" {
					doc.Detach(kids[i])
				}
				i++
				continue
			}
			j := i
			var text strings.Builder
			for j < len(kids) && !doc.IsElement(kids[j]) {
				text.WriteString(doc.Data(kids[j]))
				j++
			}
			if strings.TrimSpace(text.String()) != "" {
				p := doc.NewElement("p")
				doc.InsertBefore(div, p, kids[i])
				for _, t := range kids[i:j] {
					doc.AppendChild(p, t)
				}
			}
			i = j
		}
	}
}
