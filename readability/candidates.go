package readability

import (
	"fmt"
	"slices"
	"strings"

	"github.com/fwojciec/readview/dom"
)

// Candidate is a scored container node.
type Candidate struct {
	Node  dom.NodeID
	Score float64
}

// candidates is the per-attempt score table, keyed by node identity and
// remembering discovery order.
type candidates struct {
	order  []dom.NodeID
	scores map[dom.NodeID]float64
}

func newCandidates() *candidates {
	return &candidates{scores: make(map[dom.NodeID]float64)}
}

func (c *candidates) has(id dom.NodeID) bool {
	_, ok := c.scores[id]
	return ok
}

func (c *candidates) add(id dom.NodeID, score float64) {
	c.order = append(c.order, id)
	c.scores[id] = score
}

func (c *candidates) addScore(id dom.NodeID, delta float64) {
	c.scores[id] += delta
}

func (c *candidates) score(id dom.NodeID) (float64, bool) {
	s, ok := c.scores[id]
	return s, ok
}

func (c *candidates) len() int {
	return len(c.order)
}

// ranked returns the candidates by descending score. Equal scores keep
// discovery order.
func (c *candidates) ranked() []Candidate {
	out := make([]Candidate, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, Candidate{Node: id, Score: c.scores[id]})
	}
	slices.SortStableFunc(out, func(a, b Candidate) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		}
		return 0
	})
	return out
}

// selectBest returns the highest scoring candidate.
func (d *Document) selectBest(doc *dom.Document, c *candidates) (Candidate, bool) {
	ranked := c.ranked()
	if len(ranked) == 0 {
		return Candidate{}, false
	}
	if d.debugEnabled {
		for _, cand := range ranked[:min(5, len(ranked))] {
			d.debug("top candidate", "node", describe(doc, cand.Node), "score", cand.Score)
		}
	}
	return ranked[0], true
}

// describe renders an element and its parent as "tag#id.class" for logs.
func describe(doc *dom.Document, id dom.NodeID) string {
	s := describeNode(doc, id)
	if p := doc.Parent(id); p != dom.None {
		s = describeNode(doc, p) + " > " + s
	}
	return s
}

func describeNode(doc *dom.Document, id dom.NodeID) string {
	var sb strings.Builder
	sb.WriteString(doc.Tag(id))
	if v, _ := doc.Attr(id, "id"); v != "" {
		fmt.Fprintf(&sb, "#%s", v)
	}
	if v, _ := doc.Attr(id, "class"); v != "" {
		sb.WriteString("." + strings.Join(strings.Fields(v), "."))
	}
	return sb.String()
}
