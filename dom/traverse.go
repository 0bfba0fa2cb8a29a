package dom

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Walk visits id and its descendants in document order. Returning false from
// fn skips the node's subtree.
func (d *Document) Walk(id NodeID, fn func(NodeID) bool) {
	if !fn(id) {
		return
	}
	for _, c := range d.nodes[id].children {
		d.Walk(c, fn)
	}
}

// Elements returns id (when an element) and all element descendants in
// document order.
func (d *Document) Elements(id NodeID) []NodeID {
	var out []NodeID
	d.Walk(id, func(n NodeID) bool {
		if d.nodes[n].typ == ElementNode {
			out = append(out, n)
		}
		return true
	})
	return out
}

// FindAll returns the descendants of id (id excluded) carrying any of the
// given tags. Results are grouped by tag in argument order; within a tag they
// follow document order.
func (d *Document) FindAll(id NodeID, tags ...string) []NodeID {
	var out []NodeID
	for _, tag := range tags {
		for _, n := range d.Elements(id) {
			if n != id && d.nodes[n].tag == tag {
				out = append(out, n)
			}
		}
	}
	return out
}

// FindAllReverse is FindAll with each tag group in reverse document order.
func (d *Document) FindAllReverse(id NodeID, tags ...string) []NodeID {
	var out []NodeID
	for _, tag := range tags {
		group := d.FindAll(id, tag)
		slices.Reverse(group)
		out = append(out, group...)
	}
	return out
}

// Find returns the first descendant of id with the given tag, or None.
func (d *Document) Find(id NodeID, tag string) NodeID {
	found := None
	d.Walk(id, func(n NodeID) bool {
		if found != None {
			return false
		}
		if n != id && d.nodes[n].typ == ElementNode && d.nodes[n].tag == tag {
			found = n
			return false
		}
		return true
	})
	return found
}

// Count returns the number of descendants of id with the given tag.
func (d *Document) Count(id NodeID, tag string) int {
	return len(d.FindAll(id, tag))
}

// TextContent concatenates the text of all descendant text nodes.
func (d *Document) TextContent(id NodeID) string {
	if d.nodes[id].typ == TextNode {
		return d.nodes[id].data
	}
	var sb strings.Builder
	d.Walk(id, func(n NodeID) bool {
		if d.nodes[n].typ == TextNode {
			sb.WriteString(d.nodes[n].data)
		}
		return true
	})
	return sb.String()
}

// DirectText returns the text that precedes the element's first child element.
func (d *Document) DirectText(id NodeID) string {
	var sb strings.Builder
	for _, c := range d.nodes[id].children {
		if d.nodes[c].typ == ElementNode {
			break
		}
		sb.WriteString(d.nodes[c].data)
	}
	return sb.String()
}

// HasText reports whether DirectText contains anything but whitespace.
func (d *Document) HasText(id NodeID) bool {
	return strings.TrimSpace(d.DirectText(id)) != ""
}

// IsEmpty reports whether the element has no direct text and no child elements.
func (d *Document) IsEmpty(id NodeID) bool {
	return !d.HasText(id) && len(d.ElementChildren(id)) == 0
}

// TrimLeadingText strips leading whitespace from the element's direct text,
// removing text nodes that become empty.
func (d *Document) TrimLeadingText(id NodeID) {
	for _, c := range d.Children(id) {
		if d.nodes[c].typ == ElementNode {
			return
		}
		trimmed := strings.TrimLeftFunc(d.nodes[c].data, unicode.IsSpace)
		if trimmed != "" {
			d.nodes[c].data = trimmed
			return
		}
		d.Detach(c)
	}
}

// Tail returns the text nodes that immediately follow id under its parent.
func (d *Document) Tail(id NodeID) []NodeID {
	p := d.nodes[id].parent
	if p == None {
		return nil
	}
	siblings := d.nodes[p].children
	i := slices.Index(siblings, id)
	var out []NodeID
	for _, s := range siblings[i+1:] {
		if d.nodes[s].typ == ElementNode {
			break
		}
		out = append(out, s)
	}
	return out
}

// NextElementSiblings returns the element siblings after id, nearest first.
func (d *Document) NextElementSiblings(id NodeID) []NodeID {
	p := d.nodes[id].parent
	if p == None {
		return nil
	}
	siblings := d.ElementChildren(p)
	i := slices.Index(siblings, id)
	return siblings[i+1:]
}

// PrevElementSiblings returns the element siblings before id, nearest first.
func (d *Document) PrevElementSiblings(id NodeID) []NodeID {
	p := d.nodes[id].parent
	if p == None {
		return nil
	}
	siblings := d.ElementChildren(p)
	i := slices.Index(siblings, id)
	out := slices.Clone(siblings[:i])
	slices.Reverse(out)
	return out
}

// CleanText collapses whitespace runs to single spaces and trims the result.
func CleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// TextLength returns the character count of the node's cleaned text content.
func (d *Document) TextLength(id NodeID) int {
	return utf8.RuneCountInString(CleanText(d.TextContent(id)))
}
