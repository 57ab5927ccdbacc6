package list

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/umajho/rotext-sub001/core"
	"github.com/umajho/rotext-sub001/engine/markup/node"
)

// Markers for list lines.
const (
	Ordered   byte = '#'
	Unordered byte = '*'
	Term      byte = ';'
	Detail    byte = ':'
)

// ErrMalformedPrefix is wrapped by errors for lines with an empty prefix or
// with characters other than list markers. Both are contract violations of
// the upstream parser.
var ErrMalformedPrefix = errors.New("malformed list prefix")

// Line is a single list line: its marker prefix and its content.
type Line struct {
	Prefix  string
	Content []node.Mixed
}

// TextLine creates a line with raw text content.
func TextLine(prefix string, text string) Line {
	return Line{Prefix: prefix, Content: []node.Mixed{node.Text(text)}}
}

// Result holds the top-level lists built from a sequence of lines.
type Result struct {
	lists []node.Block
}

// Lists returns the top-level lists in input order.
func (r Result) Lists() []node.Block { return r.lists }

// Len returns the number of top-level lists.
func (r Result) Len() int { return len(r.lists) }

// Single returns the list if exactly one top-level list resulted.
func (r Result) Single() (node.Block, bool) {
	if len(r.lists) != 1 {
		return nil, false
	}
	return r.lists[0], true
}

// Build converts a flat sequence of list lines into nested list and
// description list nodes.
//
// Malformed prefixes are contract violations and are reported as errors of
// code core.ECONTRACT; no partial result is returned in this case.
func Build(lines []Line) (Result, error) {
	b := newBuilder()
	for i, l := range lines {
		if err := b.add(l); err != nil {
			return Result{}, core.WrapError(err, core.ECONTRACT, "list line #%d (prefix %q)", i, l.Prefix)
		}
	}
	return b.finish(), nil
}

// --- Builder ---------------------------------------------------------------

// itemKind is derived from the last marker of a line's prefix.
type itemKind int8

const (
	kindItem itemKind = iota
	kindTerm
	kindDetail
)

func kindOf(marker byte) itemKind {
	switch marker {
	case Term:
		return kindTerm
	case Detail:
		return kindDetail
	}
	return kindItem
}

func isDescription(marker byte) bool {
	return marker == Term || marker == Detail
}

// entry is an item of a container: either a line's content or a nested
// container.
type entry struct {
	kind    itemKind
	content []node.Mixed
	nested  *container
}

// container is a list under construction. Its kind is fixed by the marker
// which opened it.
type container struct {
	marker byte
	items  []entry
}

type builder struct {
	stack   *arraystack.Stack // of *container
	last    string            // prefix of the previous line
	results []*container
}

func newBuilder() *builder {
	return &builder{stack: arraystack.New()}
}

func (b *builder) top() *container {
	if c, ok := b.stack.Peek(); ok {
		return c.(*container)
	}
	return nil
}

func (b *builder) add(l Line) error {
	if err := checkPrefix(l.Prefix); err != nil {
		return err
	}
	common := commonPrefixLen(b.last, l.Prefix)
	pop, push := len(b.last)-common, len(l.Prefix)-common
	deepest := l.Prefix[len(l.Prefix)-1]
	if pop == 1 && push == 1 && isDescription(deepest) {
		// term followed by detail or vice versa: siblings in one container
		tracer().Debugf("list: %q -> %q stays in container", b.last, l.Prefix)
	} else {
		tracer().Debugf("list: %q -> %q: pop %d, push %d", b.last, l.Prefix, pop, push)
		for i := 0; i < pop; i++ {
			c, ok := b.stack.Pop()
			if !ok {
				return fmt.Errorf("%w: stack exhausted", ErrMalformedPrefix)
			}
			if b.stack.Empty() {
				b.results = append(b.results, c.(*container))
			}
		}
		for _, m := range []byte(l.Prefix[common:]) {
			c := &container{marker: m}
			if parent := b.top(); parent != nil {
				parent.items = append(parent.items, entry{nested: c})
			}
			b.stack.Push(c)
		}
	}
	top := b.top()
	if top == nil {
		return fmt.Errorf("%w: no open list", ErrMalformedPrefix)
	}
	top.items = append(top.items, entry{kind: kindOf(deepest), content: l.Content})
	b.last = l.Prefix
	return nil
}

func (b *builder) finish() Result {
	var bottom interface{}
	for !b.stack.Empty() {
		bottom, _ = b.stack.Pop()
	}
	if bottom != nil {
		b.results = append(b.results, bottom.(*container))
	}
	r := Result{lists: make([]node.Block, len(b.results))}
	for i, c := range b.results {
		r.lists[i] = c.render()
	}
	tracer().Debugf("list: built %d top-level list(s)", len(r.lists))
	return r
}

func checkPrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("%w: empty prefix", ErrMalformedPrefix)
	}
	for i := 0; i < len(prefix); i++ {
		switch prefix[i] {
		case Ordered, Unordered, Term, Detail:
		default:
			return fmt.Errorf("%w: unknown marker %q", ErrMalformedPrefix, prefix[i])
		}
	}
	return nil
}

func commonPrefixLen(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

// --- Rendering -------------------------------------------------------------

// render converts a container to a block node. A line's content starts a
// new item; a nested list is appended to the item before it, unless it is
// the first entry of the container.
func (c *container) render() node.Block {
	type item struct {
		kind    itemKind
		content []node.Mixed
	}
	var items []item
	for _, e := range c.items {
		if e.nested == nil {
			items = append(items, item{
				kind:    e.kind,
				content: append([]node.Mixed(nil), e.content...),
			})
			continue
		}
		sub := e.nested.render()
		if len(items) == 0 {
			items = append(items, item{kind: kindOf(c.marker), content: []node.Mixed{sub}})
		} else {
			last := &items[len(items)-1]
			last.content = append(last.content, sub)
		}
	}
	switch c.marker {
	case Ordered, Unordered:
		slots := make([][]node.Mixed, len(items))
		for i, it := range items {
			slots[i] = it.content
		}
		if c.marker == Ordered {
			return node.NewOrderedList(slots...)
		}
		return node.NewUnorderedList(slots...)
	}
	dl := make([]node.DescriptionItem, len(items))
	for i, it := range items {
		if it.kind == kindDetail {
			dl[i] = node.DetailItem(it.content...)
		} else {
			dl[i] = node.TermItem(it.content...)
		}
	}
	return node.NewDescriptionList(dl...)
}
