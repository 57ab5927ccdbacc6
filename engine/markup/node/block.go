package node

import (
	"github.com/umajho/rotext-sub001/core"
	"github.com/umajho/rotext-sub001/core/option"
)

// Paragraph is a block of inline content.
type Paragraph struct {
	blockNode
	content []Inline
}

// NewParagraph creates a paragraph.
func NewParagraph(content ...Inline) *Paragraph {
	return &Paragraph{content: copyInlines(content)}
}

func (*Paragraph) Kind() Kind               { return KindParagraph }
func (p *Paragraph) Accept(v Visitor) error { return v.VisitParagraph(p) }

// Content returns the inline slot. Clients must not modify it.
func (p *Paragraph) Content() []Inline { return p.content }

// ThematicBreak is a horizontal rule. It has no slots.
type ThematicBreak struct {
	blockNode
}

// NewThematicBreak creates a thematic break.
func NewThematicBreak() *ThematicBreak {
	return &ThematicBreak{}
}

func (*ThematicBreak) Kind() Kind                { return KindThematicBreak }
func (tb *ThematicBreak) Accept(v Visitor) error { return v.VisitThematicBreak(tb) }

// --- Heading ---------------------------------------------------------------

// Heading is a heading of level 1 to 6.
type Heading struct {
	blockNode
	level   int
	content []Inline
}

// NewHeading creates a heading. Levels outside 1…6 are rejected with an
// error of code core.EINVALID.
func NewHeading(level int, content ...Inline) (*Heading, error) {
	if level < 1 || level > 6 {
		return nil, core.Error(core.EINVALID, "heading level %d outside 1…6", level)
	}
	return &Heading{level: level, content: copyInlines(content)}, nil
}

func (*Heading) Kind() Kind               { return KindHeading }
func (h *Heading) Accept(v Visitor) error { return v.VisitHeading(h) }

// Level returns the heading level (1…6).
func (h *Heading) Level() int { return h.level }

// Content returns the inline slot. Clients must not modify it.
func (h *Heading) Content() []Inline { return h.content }

// --- BlockQuote ------------------------------------------------------------

// BlockQuote is a quotation holding a mixed slot.
type BlockQuote struct {
	blockNode
	content []Mixed
}

// NewBlockQuote creates a block quote.
func NewBlockQuote(content ...Mixed) *BlockQuote {
	return &BlockQuote{content: copyMixed(content)}
}

func (*BlockQuote) Kind() Kind               { return KindBlockQuote }
func (q *BlockQuote) Accept(v Visitor) error { return v.VisitBlockQuote(q) }

// Content returns the mixed slot. Clients must not modify it.
func (q *BlockQuote) Content() []Mixed { return q.content }

// --- Lists -----------------------------------------------------------------

func copyItems(items [][]Mixed) [][]Mixed {
	if len(items) == 0 {
		return nil
	}
	c := make([][]Mixed, len(items))
	for i, item := range items {
		c[i] = copyMixed(item)
	}
	return c
}

// OrderedList is a numbered list. Every item is a mixed slot.
type OrderedList struct {
	blockNode
	items [][]Mixed
}

// NewOrderedList creates an ordered list.
func NewOrderedList(items ...[]Mixed) *OrderedList {
	return &OrderedList{items: copyItems(items)}
}

func (*OrderedList) Kind() Kind               { return KindOrderedList }
func (l *OrderedList) Accept(v Visitor) error { return v.VisitOrderedList(l) }

// Items returns the item slots. Clients must not modify them.
func (l *OrderedList) Items() [][]Mixed { return l.items }

// UnorderedList is a bulleted list. Every item is a mixed slot.
type UnorderedList struct {
	blockNode
	items [][]Mixed
}

// NewUnorderedList creates an unordered list.
func NewUnorderedList(items ...[]Mixed) *UnorderedList {
	return &UnorderedList{items: copyItems(items)}
}

func (*UnorderedList) Kind() Kind               { return KindUnorderedList }
func (l *UnorderedList) Accept(v Visitor) error { return v.VisitUnorderedList(l) }

// Items returns the item slots. Clients must not modify them.
func (l *UnorderedList) Items() [][]Mixed { return l.items }

// DescriptionKind tags an item of a description list.
type DescriptionKind int8

const (
	Term DescriptionKind = iota
	Detail
)

func (k DescriptionKind) String() string {
	if k == Detail {
		return "detail"
	}
	return "term"
}

// DescriptionItem is a term or a detail of a description list.
type DescriptionItem struct {
	Kind    DescriptionKind
	Content []Mixed
}

// TermItem creates a term item.
func TermItem(content ...Mixed) DescriptionItem {
	return DescriptionItem{Kind: Term, Content: copyMixed(content)}
}

// DetailItem creates a detail item.
func DetailItem(content ...Mixed) DescriptionItem {
	return DescriptionItem{Kind: Detail, Content: copyMixed(content)}
}

// DescriptionList is a list of terms and details.
type DescriptionList struct {
	blockNode
	items []DescriptionItem
}

// NewDescriptionList creates a description list.
func NewDescriptionList(items ...DescriptionItem) *DescriptionList {
	c := make([]DescriptionItem, len(items))
	for i, item := range items {
		c[i] = DescriptionItem{Kind: item.Kind, Content: copyMixed(item.Content)}
	}
	return &DescriptionList{items: c}
}

func (*DescriptionList) Kind() Kind               { return KindDescriptionList }
func (l *DescriptionList) Accept(v Visitor) error { return v.VisitDescriptionList(l) }

// Items returns the items. Clients must not modify them.
func (l *DescriptionList) Items() []DescriptionItem { return l.items }

// --- Table -----------------------------------------------------------------

// CellKind tags a table cell.
type CellKind int8

const (
	DataCell CellKind = iota
	HeaderCell
)

func (k CellKind) String() string {
	if k == HeaderCell {
		return "header"
	}
	return "data"
}

// Cell is a table cell holding a mixed slot.
type Cell struct {
	Kind    CellKind
	Content []Mixed
}

// TH creates a header cell.
func TH(content ...Mixed) Cell {
	return Cell{Kind: HeaderCell, Content: copyMixed(content)}
}

// TD creates a data cell.
func TD(content ...Mixed) Cell {
	return Cell{Kind: DataCell, Content: copyMixed(content)}
}

// Table is a grid of cells with an optional caption. Rows may differ in
// their number of cells; tables are never padded.
type Table struct {
	blockNode
	caption option.T[[]Inline]
	rows    [][]Cell
}

// NewTable creates a table.
func NewTable(caption option.T[[]Inline], rows ...[]Cell) *Table {
	tbl := &Table{
		caption: option.Map(caption, copyInlines),
		rows:    make([][]Cell, len(rows)),
	}
	for i, row := range rows {
		r := make([]Cell, len(row))
		for j, cell := range row {
			r[j] = Cell{Kind: cell.Kind, Content: copyMixed(cell.Content)}
		}
		tbl.rows[i] = r
	}
	return tbl
}

func (*Table) Kind() Kind               { return KindTable }
func (t *Table) Accept(v Visitor) error { return v.VisitTable(t) }

// Caption returns the optional caption slot.
func (t *Table) Caption() option.T[[]Inline] { return t.caption }

// Rows returns the cell grid. Clients must not modify it.
func (t *Table) Rows() [][]Cell { return t.rows }

// --- Root ------------------------------------------------------------------

// Root is the top of a document tree. It wraps a single block slot.
type Root struct {
	children []Block
}

// NewRoot creates a document root.
func NewRoot(children ...Block) *Root {
	r := &Root{}
	if len(children) > 0 {
		r.children = make([]Block, len(children))
		copy(r.children, children)
	}
	return r
}

func (*Root) isNode()                  {}
func (*Root) Kind() Kind               { return KindRoot }
func (r *Root) Accept(v Visitor) error { return v.VisitRoot(r) }

// Children returns the block slot. Clients must not modify it.
func (r *Root) Children() []Block { return r.children }
