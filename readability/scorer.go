package readability

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/readview/dom"
)

// classWeight scores an element by its class and id values: built-in
// positive/negative patterns and caller keywords each add or subtract 25.
// Caller keywords of the form "tag-<name>" also match the element's tag.
func (d *Document) classWeight(doc *dom.Document, id dom.NodeID) float64 {
	var weight float64
	for _, attr := range []string{"class", "id"} {
		feature, _ := doc.Attr(id, attr)
		if feature == "" {
			continue
		}
		if negativeRe.MatchString(feature) {
			weight -= 25
		}
		if positiveRe.MatchString(feature) {
			weight += 25
		}
		if d.positive.find(feature) {
			weight += 25
		}
		if d.negative.find(feature) {
			weight -= 25
		}
	}

	tag := "tag-" + doc.Tag(id)
	if d.positive.match(tag) {
		weight += 25
	}
	if d.negative.match(tag) {
		weight -= 25
	}
	return weight
}

// scoreNode returns the initial candidate score of an element.
func (d *Document) scoreNode(doc *dom.Document, id dom.NodeID) float64 {
	score := d.classWeight(doc, id)
	switch doc.Tag(id) {
	case "div":
		score += 5
	case "pre", "td", "blockquote":
		score += 3
	case "address", "ol", "ul", "dl", "dd", "dt", "li", "form":
		score -= 3
	case "h1", "h2", "h3", "h4", "h5", "h6", "th":
		score -= 5
	}
	return score
}

// linkDensity is the share of an element's text that sits inside anchors.
// The result is always within [0, 1].
func linkDensity(doc *dom.Document, id dom.NodeID) float64 {
	var linkLength int
	for _, a := range doc.FindAll(id, "a") {
		linkLength += doc.TextLength(a)
	}
	total := max(doc.TextLength(id), 1)
	return math.Min(float64(linkLength)/float64(total), 1)
}

// scoreParagraphs builds the candidate table for one attempt.
//
// Every <p>, <pre> and <td> whose cleaned text reaches the minimum length
// scores its parent fully and its grandparent by half. Scores are then scaled
// down by each candidate's link density.
func (d *Document) scoreParagraphs(doc *dom.Document) *candidates {
	c := newCandidates()
	for _, elem := range doc.FindAll(doc.Root(), "p", "pre", "td") {
		parent := doc.Parent(elem)
		if parent == dom.None {
			continue
		}
		grand := doc.Parent(parent)

		text := dom.CleanText(doc.TextContent(elem))
		length := utf8.RuneCountInString(text)
		if length < d.minTextLength {
			continue
		}

		if !c.has(parent) {
			c.add(parent, d.scoreNode(doc, parent))
		}
		if grand != dom.None && !c.has(grand) {
			c.add(grand, d.scoreNode(doc, grand))
		}

		score := 1 + float64(strings.Count(text, ",")) + math.Min(float64(length)/100, 3)
		c.addScore(parent, score)
		if grand != dom.None {
			c.addScore(grand, score/2)
		}
	}

	for _, id := range c.order {
		ld := linkDensity(doc, id)
		score := c.scores[id]
		d.debug("candidate scored", "node", describe(doc, id), "score", score, "link_density", ld)
		// Negative scores move further from zero so that the scaling
		// never raises a candidate.
		c.scores[id] = score - math.Abs(score)*ld
	}
	return c
}
