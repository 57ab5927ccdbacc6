/*
Package htmltarget is a serialization target producing golang.org/x/net/html
node trees.

Fragments are represented as nodes of type html.DocumentNode; when handed to
an element as a child, a fragment's children are moved into the element.
Trees may be rendered to HTML text with Render or RenderString.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package htmltarget

import (
	"bytes"
	"io"

	"github.com/npillmayer/schuko/tracing"
	"github.com/umajho/rotext-sub001/core/parameters"
	"github.com/umajho/rotext-sub001/engine/markup/inline"
	"github.com/umajho/rotext-sub001/engine/markup/node"
	"github.com/umajho/rotext-sub001/engine/markup/serialize"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'rotext.serialize'.
func tracer() tracing.Trace {
	return tracing.Select("rotext.serialize")
}

// Target builds html.Node trees.
type Target struct{}

var _ serialize.TextTarget[*html.Node] = Target{}

// Element creates an element node.
func (Target) Element(tag string, attrs []serialize.Attr, children []inline.Piece[*html.Node]) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	for _, a := range attrs {
		n.Attr = append(n.Attr, html.Attribute{Key: a.Key, Val: a.Val})
	}
	for _, p := range children {
		if p.IsText() {
			n.AppendChild(textNode(p.Text()))
		} else {
			appendNode(n, p.Node())
		}
	}
	return n
}

// Fragment groups nodes under a document node.
func (Target) Fragment(nodes []*html.Node) *html.Node {
	f := &html.Node{Type: html.DocumentNode}
	for _, c := range nodes {
		appendNode(f, c)
	}
	return f
}

// Text creates a text node.
func (Target) Text(s string) *html.Node {
	return textNode(s)
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// appendNode appends c to n, moving the children of fragment c.
func appendNode(n *html.Node, c *html.Node) {
	if c.Type != html.DocumentNode {
		n.AppendChild(c)
		return
	}
	for cc := c.FirstChild; cc != nil; {
		next := cc.NextSibling
		c.RemoveChild(cc)
		n.AppendChild(cc)
		cc = next
	}
}

// NewSerializer creates a serializer producing html.Node trees.
func NewSerializer(regs *parameters.Registers) *serialize.Serializer[*html.Node] {
	return serialize.New[*html.Node](Target{}, regs)
}

// Render writes the HTML text of a tree to w.
func Render(w io.Writer, n *html.Node) error {
	return html.Render(w, n)
}

// RenderString serializes a document and renders it to HTML text.
func RenderString(root *node.Root, regs *parameters.Registers) (string, error) {
	tree, err := NewSerializer(regs).SerializeRoot(root)
	if err != nil {
		return "", err
	}
	var b bytes.Buffer
	if err := Render(&b, tree); err != nil {
		return "", err
	}
	tracer().Debugf("rendered %d bytes of HTML", b.Len())
	return b.String(), nil
}
