package dom

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parse builds a Document from UTF-8 HTML. Comments and doctypes are dropped;
// the root is the <html> element the HTML5 parser always synthesizes.
func Parse(r io.Reader) (*Document, error) {
	n, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return FromNode(n), nil
}

// ParseString is Parse over a string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// FromNode copies an x/net/html tree into a new Document. A DocumentNode is
// replaced by its first element child.
func FromNode(n *html.Node) *Document {
	if n.Type == html.DocumentNode {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode {
				n = c
				break
			}
		}
	}
	d := &Document{}
	d.root = d.convert(n, None)
	if d.root == None {
		d.root = d.NewElement("html")
	}
	return d
}

func (d *Document) convert(n *html.Node, parent NodeID) NodeID {
	var id NodeID
	switch n.Type {
	case html.ElementNode:
		attrs := make([]Attribute, 0, len(n.Attr))
		for _, a := range n.Attr {
			key := a.Key
			if a.Namespace != "" {
				key = a.Namespace + ":" + a.Key
			}
			attrs = append(attrs, Attribute{Key: key, Val: a.Val})
		}
		id = d.alloc(node{typ: ElementNode, tag: n.Data, attr: attrs, parent: parent})
	case html.TextNode:
		id = d.alloc(node{typ: TextNode, data: n.Data, parent: parent})
	default:
		return None
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if cid := d.convert(c, id); cid != None {
			d.nodes[id].children = append(d.nodes[id].children, cid)
		}
	}
	return id
}

// ToNode copies the subtree rooted at id into a detached x/net/html tree.
func (d *Document) ToNode(id NodeID) *html.Node {
	n := d.nodes[id]
	if n.typ == TextNode {
		return &html.Node{Type: html.TextNode, Data: n.data}
	}
	out := &html.Node{
		Type:     html.ElementNode,
		Data:     n.tag,
		DataAtom: atom.Lookup([]byte(n.tag)),
	}
	for _, a := range n.attr {
		out.Attr = append(out.Attr, html.Attribute{Key: a.Key, Val: a.Val})
	}
	for _, c := range n.children {
		out.AppendChild(d.ToNode(c))
	}
	return out
}

// ToDocumentNode returns the whole tree wrapped in an html.DocumentNode,
// suitable for selector libraries.
func (d *Document) ToDocumentNode() *html.Node {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(d.ToNode(d.root))
	return doc
}

// Render serializes the subtree rooted at id as HTML.
func (d *Document) Render(w io.Writer, id NodeID) error {
	return html.Render(w, d.ToNode(id))
}

// RenderString serializes the subtree rooted at id as an HTML string.
func (d *Document) RenderString(id NodeID) (string, error) {
	var buf bytes.Buffer
	if err := d.Render(&buf, id); err != nil {
		return "", err
	}
	return buf.String(), nil
}
