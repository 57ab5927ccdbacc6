package node

import (
	"errors"

	"github.com/umajho/rotext-sub001/core"
)

// SkipChildren may be returned by a WalkFunc to skip the slots of the
// current node.
var SkipChildren = errors.New("skip children")

// WalkFunc is called for every node visited by Walk.
type WalkFunc func(n Node, depth int) error

// Walk traverses the tree starting at n in pre-order, calling f for every
// node. Slots are visited in slot order; a table caption precedes its rows.
// Walk stops at the first error returned by f, other than SkipChildren.
// A nil node anywhere in the tree stops the walk with an error of code
// core.ECONTRACT.
func Walk(n Node, f WalkFunc) error {
	if IsNil(n) {
		return core.Error(core.ECONTRACT, "cannot walk nil node")
	}
	tracer().Debugf("walking tree at %s", n.Kind())
	return walk(n, 0, f)
}

func walk(n Node, depth int, f WalkFunc) error {
	if IsNil(n) {
		return core.Error(core.ECONTRACT, "nil node at depth %d", depth)
	}
	if err := f(n, depth); err != nil {
		if err == SkipChildren {
			return nil
		}
		return err
	}
	for _, c := range Children(n) {
		if err := walk(c, depth+1, f); err != nil {
			return err
		}
	}
	return nil
}

// Children returns the nodes held in the slots of n, in slot order.
// Raw text slots hold no nodes. Item and cell boundaries of lists and
// tables are not reflected in the result. A nil node has no children.
func Children(n Node) []Node {
	if IsNil(n) {
		return nil
	}
	c := &childCollector{}
	_ = n.Accept(c)
	return c.children
}

type childCollector struct {
	children []Node
}

func (c *childCollector) inlines(s []Inline) {
	for _, n := range s {
		c.children = append(c.children, n)
	}
}

func (c *childCollector) mixed(s []Mixed) {
	for _, n := range s {
		c.children = append(c.children, n)
	}
}

func (c *childCollector) VisitText(Text) error                    { return nil }
func (c *childCollector) VisitLineBreak(*LineBreak) error         { return nil }
func (c *childCollector) VisitCode(*Code) error                   { return nil }
func (c *childCollector) VisitRefLink(*RefLink) error             { return nil }
func (c *childCollector) VisitScript(*Script) error               { return nil }
func (c *childCollector) VisitThematicBreak(*ThematicBreak) error { return nil }

func (c *childCollector) VisitEmphasis(e *Emphasis) error {
	c.inlines(e.content)
	return nil
}

func (c *childCollector) VisitUnderline(u *Underline) error {
	c.inlines(u.content)
	return nil
}

func (c *childCollector) VisitStrikethrough(s *Strikethrough) error {
	c.inlines(s.content)
	return nil
}

func (c *childCollector) VisitRuby(r *Ruby) error {
	c.inlines(r.base)
	c.inlines(r.annotation)
	return nil
}

func (c *childCollector) VisitParagraph(p *Paragraph) error {
	c.inlines(p.content)
	return nil
}

func (c *childCollector) VisitHeading(h *Heading) error {
	c.inlines(h.content)
	return nil
}

func (c *childCollector) VisitBlockQuote(q *BlockQuote) error {
	c.mixed(q.content)
	return nil
}

func (c *childCollector) VisitOrderedList(l *OrderedList) error {
	for _, item := range l.items {
		c.mixed(item)
	}
	return nil
}

func (c *childCollector) VisitUnorderedList(l *UnorderedList) error {
	for _, item := range l.items {
		c.mixed(item)
	}
	return nil
}

func (c *childCollector) VisitDescriptionList(l *DescriptionList) error {
	for _, item := range l.items {
		c.mixed(item.Content)
	}
	return nil
}

func (c *childCollector) VisitTable(t *Table) error {
	if caption, ok := t.caption.Get(); ok {
		c.inlines(caption)
	}
	for _, row := range t.rows {
		for _, cell := range row {
			c.mixed(cell.Content)
		}
	}
	return nil
}

func (c *childCollector) VisitRoot(r *Root) error {
	for _, b := range r.children {
		c.children = append(c.children, b)
	}
	return nil
}

var _ Visitor = &childCollector{}
