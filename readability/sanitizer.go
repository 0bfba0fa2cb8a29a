package readability

import (
	"strconv"
	"strings"

	"github.com/fwojciec/readview/dom"
)

// sanitize cleans the subtree at root in place and renders it.
//
// The passes run in a fixed order: low-quality headings and paragraphs,
// empty paragraphs, share and empty links, empty spans, form controls and
// frames, emphasis renames, images, conditional cleaning of tables, lists and
// divs, and finally flattening of single-child wrappers. The rendered markup
// goes through the attribute cleaner; a cleaner failure is logged and the
// uncleaned markup returned.
func (d *Document) sanitize(doc *dom.Document, root dom.NodeID, c *candidates) (string, error) {
	live := func(id dom.NodeID) bool {
		return doc.IsAncestor(root, id)
	}

	for _, h := range doc.FindAll(root, "h1", "h2", "h3", "h4", "h5", "h6", "p") {
		if !live(h) {
			continue
		}
		if d.classWeight(doc, h) < 0 || linkDensity(doc, h) > 0.33 {
			dropWithEmptyParents(doc, h)
		}
	}

	for _, p := range doc.FindAll(root, "p") {
		if !live(p) {
			continue
		}
		doc.TrimLeadingText(p)
		if doc.IsEmpty(p) {
			dropWithEmptyParents(doc, p)
		}
	}

	for _, a := range doc.FindAll(root, "a") {
		if !live(a) {
			continue
		}
		href, _ := doc.Attr(a, "href")
		if shareLinksRe.MatchString(href) || doc.IsEmpty(a) {
			dropWithEmptyParents(doc, a)
		}
	}

	for _, span := range doc.FindAll(root, "span") {
		if live(span) && doc.IsEmpty(span) {
			dropWithEmptyParents(doc, span)
		}
	}

	for _, id := range doc.FindAll(root, "form", "iframe", "textarea", "button") {
		if live(id) {
			dropWithEmptyParents(doc, id)
		}
	}

	for _, id := range doc.FindAll(root, "strong") {
		doc.SetTag(id, "b")
	}
	for _, id := range doc.FindAll(root, "em") {
		doc.SetTag(id, "i")
	}

	for _, img := range doc.FindAll(root, "img") {
		if !live(img) {
			continue
		}
		if tooSmall(doc, img) {
			dropWithEmptyParents(doc, img)
			continue
		}
		src, ok := doc.Attr(img, "src")
		if !ok {
			dropWithEmptyParents(doc, img)
			continue
		}
		if d.baseURL != nil && !isAbsoluteSrc(src) {
			doc.SetAttr(img, "src", resolveURL(d.baseURL, src))
		}
	}

	d.cleanConditionally(doc, root, c)

	flatten := root
	if body := doc.Find(root, "body"); body != dom.None {
		flatten = body
	}
	moveChildrenToRoot(doc, flatten)

	markup, err := doc.RenderString(root)
	if err != nil {
		return "", err
	}
	cleaned, err := d.cleaner.CleanAttributes(markup)
	if err != nil {
		d.logger.Warn("failed to clean attributes", "error", err)
		return markup, nil
	}
	return cleaned, nil
}

// cleanConditionally removes tables, lists and divs that look like
// boilerplate, visiting each tag group in reverse document order. An embed
// holder surrounded by enough text is kept, and its descendants are never
// removed.
func (d *Document) cleanConditionally(doc *dom.Document, root dom.NodeID, c *candidates) {
	allowed := make(map[dom.NodeID]bool)
	for _, el := range doc.FindAllReverse(root, "table", "ul", "div") {
		if allowed[el] || !doc.IsAncestor(root, el) {
			continue
		}
		weight := d.classWeight(doc, el)
		score, _ := c.score(el)
		tag := doc.Tag(el)

		if weight+score < 0 {
			d.debug("removing node with negative score", "node", describe(doc, el), "weight", weight, "score", score)
			doc.Detach(el)
			continue
		}
		if strings.Count(doc.TextContent(el), ",") >= 10 {
			continue
		}

		p := doc.Count(el, "p")
		img := doc.Count(el, "img")
		li := doc.Count(el, "li") - 100
		input := doc.Count(el, "input")
		embed := doc.Count(el, "embed")
		contentLength := doc.TextLength(el)
		ld := linkDensity(doc, el)

		var reason string
		var embedCase bool
		switch {
		case p > 0 && img > p:
			reason = "more images than paragraphs"
		case li > p && tag != "ul" && tag != "ol":
			reason = "more list items than paragraphs"
		case float64(input) > float64(p)/3:
			reason = "less than three paragraphs per input"
		case contentLength < d.minTextLength && (img == 0 || img > 2):
			reason = "too short content length without a single image"
		case weight < 25 && ld > 0.2:
			reason = "too many links for its weight"
		case weight >= 25 && ld > 0.5:
			reason = "too many links for its weight"
		case (embed == 1 && contentLength < 75) || embed > 1:
			reason = "embed with too short content length, or too many embeds"
			embedCase = true
		}
		if reason == "" {
			continue
		}

		if embedCase && surroundedByText(doc, el) {
			d.debug("allowing node surrounded by text", "node", describe(doc, el))
			for _, desc := range doc.Elements(el) {
				allowed[desc] = true
			}
			continue
		}
		d.debug("removing node", "node", describe(doc, el), "reason", reason, "weight", weight, "link_density", ld)
		dropWithEmptyParents(doc, el)
	}
}

// surroundedByText reports whether the nearest non-empty element siblings on
// either side of el together hold more than 1000 characters.
func surroundedByText(doc *dom.Document, el dom.NodeID) bool {
	var length int
	for _, s := range doc.NextElementSiblings(el) {
		if n := doc.TextLength(s); n > 0 {
			length += n
			break
		}
	}
	for _, s := range doc.PrevElementSiblings(el) {
		if n := doc.TextLength(s); n > 0 {
			length += n
			break
		}
	}
	return length > 1000
}

// tooSmall reports whether an image declares a width or height under 70.
// Values that are not plain integers are ignored.
func tooSmall(doc *dom.Document, img dom.NodeID) bool {
	for _, key := range []string{"width", "height"} {
		v, ok := doc.Attr(img, key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err == nil && n < 70 {
			return true
		}
	}
	return false
}

func isAbsoluteSrc(src string) bool {
	return strings.HasPrefix(src, "//") || strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

// dropWithEmptyParents detaches id and then each ancestor left empty by the
// removal.
func dropWithEmptyParents(doc *dom.Document, id dom.NodeID) {
	for {
		parent := doc.Parent(id)
		if parent == dom.None {
			return
		}
		doc.Detach(id)
		if !doc.IsEmpty(parent) {
			return
		}
		id = parent
	}
}

// moveChildrenToRoot collapses a lone <div> child of root into root, then
// hoists the only element child of each <div> child up into root. Text
// following a moved element moves with it.
func moveChildrenToRoot(doc *dom.Document, root dom.NodeID) {
	for {
		kids := doc.ElementChildren(root)
		if len(kids) != 1 || doc.Tag(kids[0]) != "div" {
			break
		}
		only := kids[0]
		for _, c := range doc.Children(only) {
			doc.InsertBefore(root, c, only)
		}
		doc.Detach(only)
	}

	for {
		moved := false
		for _, el := range doc.ElementChildren(root) {
			if doc.Tag(el) != "div" {
				continue
			}
			kids := doc.ElementChildren(el)
			if len(kids) != 1 {
				continue
			}
			child := kids[0]
			tail := doc.Tail(child)
			doc.InsertBefore(root, child, el)
			for _, t := range tail {
				doc.InsertBefore(root, t, el)
			}
			moved = true
			break
		}
		if !moved {
			return
		}
	}
}
