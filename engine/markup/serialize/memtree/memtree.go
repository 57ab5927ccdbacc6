/*
Package memtree is a serialization target producing plain in-memory trees.

Trees of package memtree are meant for tests and debugging: they print in a
compact notation and may be queried with XPath.

	ol(li("first", ol(li("nested"))), li("second"))

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package memtree

import (
	"fmt"
	"strings"

	"github.com/umajho/rotext-sub001/core/parameters"
	"github.com/umajho/rotext-sub001/engine/markup/inline"
	"github.com/umajho/rotext-sub001/engine/markup/serialize"
)

// Elem is a node of an in-memory output tree: an element, a text or a
// fragment.
type Elem struct {
	Tag      string // empty for texts and fragments
	Attrs    []serialize.Attr
	Text     string
	Children []*Elem
	isText   bool
	parent   *Elem
}

// IsText is true for text nodes.
func (e *Elem) IsText() bool { return e.isText }

// IsFragment is true for fragments.
func (e *Elem) IsFragment() bool { return !e.isText && e.Tag == "" }

// Parent returns the parent element, or nil for the top of a tree.
func (e *Elem) Parent() *Elem { return e.parent }

// Attr returns the value of attribute key.
func (e *Elem) Attr(key string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// InnerText returns the concatenated text of e and all its descendents.
func (e *Elem) InnerText() string {
	if e.isText {
		return e.Text
	}
	var b strings.Builder
	for _, c := range e.Children {
		b.WriteString(c.InnerText())
	}
	return b.String()
}

// String prints e in a compact notation, e.g. `p("a", em("b"))`.
func (e *Elem) String() string {
	var b strings.Builder
	e.write(&b)
	return b.String()
}

func (e *Elem) write(b *strings.Builder) {
	if e.isText {
		fmt.Fprintf(b, "%q", e.Text)
		return
	}
	b.WriteString(e.Tag)
	for _, a := range e.Attrs {
		fmt.Fprintf(b, "[%s=%q]", a.Key, a.Val)
	}
	if len(e.Children) == 0 && !e.IsFragment() {
		return
	}
	b.WriteByte('(')
	for i, c := range e.Children {
		if i > 0 {
			b.WriteString(", ")
		}
		c.write(b)
	}
	b.WriteByte(')')
}

func (e *Elem) appendChild(c *Elem) {
	if c.IsFragment() {
		for _, cc := range c.Children {
			e.appendChild(cc)
		}
		return
	}
	c.parent = e
	e.Children = append(e.Children, c)
}

// --- Target ----------------------------------------------------------------

// Target builds Elem trees.
type Target struct{}

var _ serialize.TextTarget[*Elem] = Target{}

// Element creates an element.
func (Target) Element(tag string, attrs []serialize.Attr, children []inline.Piece[*Elem]) *Elem {
	e := &Elem{Tag: tag}
	if len(attrs) > 0 {
		e.Attrs = append([]serialize.Attr(nil), attrs...)
	}
	for _, p := range children {
		if p.IsText() {
			e.appendChild(&Elem{Text: p.Text(), isText: true})
		} else {
			e.appendChild(p.Node())
		}
	}
	return e
}

// Fragment groups nodes.
func (Target) Fragment(nodes []*Elem) *Elem {
	f := &Elem{}
	for _, n := range nodes {
		f.appendChild(n)
	}
	return f
}

// Text creates a text node.
func (Target) Text(s string) *Elem {
	return &Elem{Text: s, isText: true}
}

// NewSerializer creates a serializer producing Elem trees.
func NewSerializer(regs *parameters.Registers) *serialize.Serializer[*Elem] {
	return serialize.New[*Elem](Target{}, regs)
}
