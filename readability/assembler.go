package readability

import (
	"math"
	"unicode/utf8"

	"github.com/fwojciec/readview/dom"
)

// assemble moves the best candidate and its qualifying siblings into a new
// container and returns the container's outermost element: a bare <div> in
// partial mode, otherwise <html><body><div>.
//
// A sibling qualifies when it is itself a candidate scoring at least
// max(10, 20% of the best score), or when it is a paragraph that reads like
// prose: long with little linked text, or short, link-free and ending a
// sentence.
func (d *Document) assemble(doc *dom.Document, c *candidates, best Candidate, htmlPartial bool) dom.NodeID {
	threshold := math.Max(10, best.Score*0.2)

	var root, container dom.NodeID
	if htmlPartial {
		root = doc.NewElement("div")
		container = root
	} else {
		root = doc.NewElement("html")
		body := doc.NewElement("body")
		container = doc.NewElement("div")
		doc.AppendChild(root, body)
		doc.AppendChild(body, container)
	}

	parent := doc.Parent(best.Node)
	if parent == dom.None {
		doc.AppendChild(container, best.Node)
		return root
	}

	for _, sibling := range doc.ElementChildren(parent) {
		include := sibling == best.Node
		if score, ok := c.score(sibling); ok && score >= threshold {
			include = true
		}
		if !include && doc.Tag(sibling) == "p" {
			ld := linkDensity(doc, sibling)
			content := doc.DirectText(sibling)
			length := utf8.RuneCountInString(content)
			switch {
			case length > 80 && ld < 0.25:
				include = true
			case length <= 80 && ld == 0 && sentenceEndRe.MatchString(content):
				include = true
			}
		}
		if include {
			doc.AppendChild(container, sibling)
		}
	}
	return root
}
