// Package dom provides a mutable HTML tree stored as an arena of nodes.
//
// Nodes are addressed by NodeID, a stable index assigned when the node is
// created. Ownership runs strictly from parent to children; the parent link is
// a plain index, so cycles cannot be expressed. Removing a node detaches it
// from its parent but leaves it in the arena, which keeps ids valid for
// lookups made before the removal. Parsing and rendering are delegated to
// golang.org/x/net/html.
package dom

import (
	"slices"
	"strings"
)

// NodeID identifies a node within a Document.
type NodeID int32

// None is the NodeID of a missing node, e.g. the parent of a detached root.
const None NodeID = -1

// NodeType distinguishes elements from text.
type NodeType uint8

// Node types.
const (
	ElementNode NodeType = iota + 1
	TextNode
)

// Attribute is a single key/value attribute of an element.
type Attribute struct {
	Key string
	Val string
}

type node struct {
	typ      NodeType
	tag      string
	attr     []Attribute
	data     string
	parent   NodeID
	children []NodeID
}

// Document is an arena of nodes with a single root element.
type Document struct {
	nodes []node
	root  NodeID
}

// NewDocument returns a document whose root is a new element with the given tag.
func NewDocument(rootTag string) *Document {
	d := &Document{}
	d.root = d.NewElement(rootTag)
	return d
}

// Root returns the root element, normally <html>.
func (d *Document) Root() NodeID {
	return d.root
}

// Len returns the number of nodes ever allocated in the arena.
func (d *Document) Len() int {
	return len(d.nodes)
}

// Clone returns a deep copy of the document. Node ids are preserved, so an id
// taken from d addresses the corresponding node in the clone.
func (d *Document) Clone() *Document {
	c := &Document{
		nodes: make([]node, len(d.nodes)),
		root:  d.root,
	}
	for i, n := range d.nodes {
		n.attr = slices.Clone(n.attr)
		n.children = slices.Clone(n.children)
		c.nodes[i] = n
	}
	return c
}

// NewElement allocates a detached element.
func (d *Document) NewElement(tag string) NodeID {
	return d.alloc(node{typ: ElementNode, tag: strings.ToLower(tag), parent: None})
}

// NewText allocates a detached text node.
func (d *Document) NewText(data string) NodeID {
	return d.alloc(node{typ: TextNode, data: data, parent: None})
}

func (d *Document) alloc(n node) NodeID {
	d.nodes = append(d.nodes, n)
	return NodeID(len(d.nodes) - 1)
}

// Type returns the type of the node.
func (d *Document) Type(id NodeID) NodeType {
	return d.nodes[id].typ
}

// IsElement reports whether id is an element.
func (d *Document) IsElement(id NodeID) bool {
	return id != None && d.nodes[id].typ == ElementNode
}

// Tag returns the lower-case tag name of an element, or "" for text.
func (d *Document) Tag(id NodeID) string {
	return d.nodes[id].tag
}

// SetTag renames an element in place.
func (d *Document) SetTag(id NodeID, tag string) {
	d.nodes[id].tag = strings.ToLower(tag)
}

// Data returns the text of a text node.
func (d *Document) Data(id NodeID) string {
	return d.nodes[id].data
}

// SetData replaces the text of a text node.
func (d *Document) SetData(id NodeID, data string) {
	d.nodes[id].data = data
}

// Attr returns the value of the named attribute and whether it is present.
func (d *Document) Attr(id NodeID, key string) (string, bool) {
	for _, a := range d.nodes[id].attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// AttrOr returns the value of the named attribute, or def when absent.
func (d *Document) AttrOr(id NodeID, key, def string) string {
	if v, ok := d.Attr(id, key); ok {
		return v
	}
	return def
}

// Attrs returns a copy of the element's attributes in source order.
func (d *Document) Attrs(id NodeID) []Attribute {
	return slices.Clone(d.nodes[id].attr)
}

// SetAttr sets an attribute, replacing an existing value.
func (d *Document) SetAttr(id NodeID, key, val string) {
	n := &d.nodes[id]
	for i := range n.attr {
		if n.attr[i].Key == key {
			n.attr[i].Val = val
			return
		}
	}
	n.attr = append(n.attr, Attribute{Key: key, Val: val})
}

// RemoveAttr deletes an attribute if present.
func (d *Document) RemoveAttr(id NodeID, key string) {
	n := &d.nodes[id]
	n.attr = slices.DeleteFunc(n.attr, func(a Attribute) bool { return a.Key == key })
}

// Parent returns the parent of the node, or None when detached or root.
func (d *Document) Parent(id NodeID) NodeID {
	return d.nodes[id].parent
}

// Children returns a copy of the node's children, text included.
func (d *Document) Children(id NodeID) []NodeID {
	return slices.Clone(d.nodes[id].children)
}

// ElementChildren returns the node's element children in order.
func (d *Document) ElementChildren(id NodeID) []NodeID {
	var out []NodeID
	for _, c := range d.nodes[id].children {
		if d.nodes[c].typ == ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// Detach removes the node from its parent. The subtree stays intact and
// addressable. Text around the node stays with the former parent.
func (d *Document) Detach(id NodeID) {
	p := d.nodes[id].parent
	if p == None {
		return
	}
	pn := &d.nodes[p]
	if i := slices.Index(pn.children, id); i >= 0 {
		pn.children = slices.Delete(pn.children, i, i+1)
	}
	d.nodes[id].parent = None
}

// AppendChild moves child to the end of parent's children.
func (d *Document) AppendChild(parent, child NodeID) {
	d.InsertBefore(parent, child, None)
}

// InsertBefore moves child into parent immediately before ref.
// A ref of None appends.
func (d *Document) InsertBefore(parent, child, ref NodeID) {
	if child == parent || d.IsAncestor(child, parent) {
		return
	}
	d.Detach(child)
	pn := &d.nodes[parent]
	i := len(pn.children)
	if ref != None {
		if j := slices.Index(pn.children, ref); j >= 0 {
			i = j
		}
	}
	pn.children = slices.Insert(pn.children, i, child)
	d.nodes[child].parent = parent
}

// IsAncestor reports whether a is a proper ancestor of id.
func (d *Document) IsAncestor(a, id NodeID) bool {
	for p := d.nodes[id].parent; p != None; p = d.nodes[p].parent {
		if p == a {
			return true
		}
	}
	return false
}

// Attached reports whether the node is reachable from the document root.
func (d *Document) Attached(id NodeID) bool {
	return id == d.root || d.IsAncestor(d.root, id)
}
