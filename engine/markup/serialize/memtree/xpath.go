package memtree

import (
	"errors"

	"github.com/antchfx/xpath"
)

// NodeNavigator implements xpath.NodeNavigator for Elem trees.
//
// For a description of the various methods of interface xpath.NodeNavigator
// please refer to the documentation of antchfx/xpath. It is not replicated here.
type NodeNavigator struct {
	root  *Elem   // document node, always a fragment
	path  []*Elem // from root to the current node
	index []int   // index of path[i] within the children of path[i-1]
	attr  int     // attributes index
}

// NewNavigator creates a navigator for the tree at e. If e is not a
// fragment, it is presented as the only child of a document node.
func NewNavigator(e *Elem) *NodeNavigator {
	root := e
	if !e.IsFragment() {
		root = &Elem{Children: []*Elem{e}}
	}
	return &NodeNavigator{
		root:  root,
		path:  []*Elem{root},
		index: []int{0},
		attr:  -1,
	}
}

// Current returns the node the navigator is positioned at. For attributes,
// this is the element holding the attribute.
func (nav *NodeNavigator) Current() *Elem {
	return nav.path[len(nav.path)-1]
}

func (nav *NodeNavigator) NodeType() xpath.NodeType {
	switch {
	case len(nav.path) == 1:
		return xpath.RootNode
	case nav.Current().isText:
		return xpath.TextNode
	case nav.attr != -1:
		return xpath.AttributeNode
	}
	return xpath.ElementNode
}

func (nav *NodeNavigator) LocalName() string {
	if nav.attr != -1 {
		return nav.Current().Attrs[nav.attr].Key
	}
	return nav.Current().Tag
}

func (*NodeNavigator) Prefix() string {
	return ""
}

func (*NodeNavigator) NamespaceURL() string {
	return ""
}

func (nav *NodeNavigator) Value() string {
	if nav.attr != -1 {
		return nav.Current().Attrs[nav.attr].Val
	}
	return nav.Current().InnerText()
}

func (nav *NodeNavigator) String() string {
	return nav.Value()
}

func (nav *NodeNavigator) Copy() xpath.NodeNavigator {
	n := &NodeNavigator{root: nav.root, attr: nav.attr}
	n.path = append([]*Elem(nil), nav.path...)
	n.index = append([]int(nil), nav.index...)
	return n
}

func (nav *NodeNavigator) MoveToRoot() {
	nav.path = nav.path[:1]
	nav.index = nav.index[:1]
	nav.attr = -1
}

func (nav *NodeNavigator) MoveToParent() bool {
	if nav.attr != -1 {
		nav.attr = -1 // move from attributes to element
		return true
	}
	if len(nav.path) == 1 {
		return false
	}
	nav.path = nav.path[:len(nav.path)-1]
	nav.index = nav.index[:len(nav.index)-1]
	return true
}

func (nav *NodeNavigator) MoveToNextAttribute() bool {
	cur := nav.Current()
	if cur.isText || nav.attr >= len(cur.Attrs)-1 {
		return false
	}
	nav.attr++
	return true
}

func (nav *NodeNavigator) MoveToChild() bool {
	if nav.attr != -1 {
		return false
	}
	cur := nav.Current()
	if len(cur.Children) == 0 {
		return false
	}
	nav.path = append(nav.path, cur.Children[0])
	nav.index = append(nav.index, 0)
	return true
}

func (nav *NodeNavigator) moveToSibling(i int) bool {
	if nav.attr != -1 || len(nav.path) == 1 {
		return false
	}
	siblings := nav.path[len(nav.path)-2].Children
	if i < 0 || i >= len(siblings) {
		return false
	}
	nav.path[len(nav.path)-1] = siblings[i]
	nav.index[len(nav.index)-1] = i
	return true
}

func (nav *NodeNavigator) MoveToFirst() bool {
	if nav.index[len(nav.index)-1] == 0 {
		return false
	}
	return nav.moveToSibling(0)
}

func (nav *NodeNavigator) MoveToNext() bool {
	return nav.moveToSibling(nav.index[len(nav.index)-1] + 1)
}

func (nav *NodeNavigator) MoveToPrevious() bool {
	return nav.moveToSibling(nav.index[len(nav.index)-1] - 1)
}

func (nav *NodeNavigator) MoveTo(other xpath.NodeNavigator) bool {
	n, ok := other.(*NodeNavigator)
	if !ok || n.root != nav.root {
		return false
	}
	nav.path = append(nav.path[:0], n.path...)
	nav.index = append(nav.index[:0], n.index...)
	nav.attr = n.attr
	return true
}

var _ xpath.NodeNavigator = &NodeNavigator{}

// ErrNotANavigator is returned if an XPath iterator yields a foreign
// navigator.
var ErrNotANavigator = errors.New("navigator is not of type memtree.NodeNavigator")

// Query selects the nodes of the tree at e matching an XPath expression.
// Attribute matches yield the element holding the attribute.
func Query(e *Elem, expr string) ([]*Elem, error) {
	x, err := xpath.Compile(expr)
	if err != nil {
		return nil, err
	}
	var result []*Elem
	iter := x.Select(NewNavigator(e))
	for iter.MoveNext() {
		nav, ok := iter.Current().(*NodeNavigator)
		if !ok {
			return nil, ErrNotANavigator
		}
		result = append(result, nav.Current())
	}
	return result, nil
}
