package serialize

import (
	"errors"
	"fmt"

	"github.com/aymerick/douceur/css"
	"github.com/umajho/rotext-sub001/core"
	"github.com/umajho/rotext-sub001/core/parameters"
	"github.com/umajho/rotext-sub001/engine/markup/inline"
	"github.com/umajho/rotext-sub001/engine/markup/node"
)

// ErrUnimplemented is wrapped by the error returned for scripts.
// Clients needing scripts must intercept them before serializing.
var ErrUnimplemented = errors.New("not serializable by the generic serializer")

// RefLinkTag is the tag of the placeholder element for reference links.
const RefLinkTag = "x-ref-link"

// dottedStyle is the style hook for dotted emphasis.
var dottedStyle = (&css.Declaration{Property: "text-emphasis", Value: "dot"}).String()

// Serializer maps document trees to output trees of type T.
// A Serializer holds no state across calls and may be used concurrently.
type Serializer[T any] struct {
	target Target[T]
	mode   inline.Mode
}

// New creates a serializer for target. Text runs are finalized according
// to regs (parameters P_DECODE and P_NORMALIZE); a nil regs yields the
// defaults.
func New[T any](target Target[T], regs *parameters.Registers) *Serializer[T] {
	return &Serializer[T]{target: target, mode: inline.ModeFrom(regs)}
}

// Serialize maps n and all of its slots to the target representation.
// A root maps to a fragment of its blocks. A nil node, including a nil
// pointer of a node variant, is an error of code core.ECONTRACT.
func (s *Serializer[T]) Serialize(n node.Node) (T, error) {
	var zero T
	if node.IsNil(n) {
		return zero, core.Error(core.ECONTRACT, "cannot serialize nil node %T", n)
	}
	if t, ok := n.(node.Text); ok {
		tt, ok := s.target.(TextTarget[T])
		if !ok {
			return zero, core.Error(core.ECONTRACT, "target %T cannot represent text outside a slot", s.target)
		}
		return tt.Text(s.finalize(string(t))), nil
	}
	v := &visitor[T]{s: s}
	if err := n.Accept(v); err != nil {
		return zero, err
	}
	return v.result, nil
}

// SerializeRoot maps a document to the target representation.
func (s *Serializer[T]) SerializeRoot(root *node.Root) (T, error) {
	return s.Serialize(root)
}

// Slot maps the content of a mixed slot to coalesced pieces.
func (s *Serializer[T]) Slot(content []node.Mixed) ([]inline.Piece[T], error) {
	pieces := make([]inline.Piece[T], 0, len(content))
	for _, n := range content {
		if t, ok := n.(node.Text); ok {
			pieces = append(pieces, inline.TextPiece[T](string(t)))
			continue
		}
		out, err := s.Serialize(n)
		if err != nil {
			return nil, err
		}
		pieces = append(pieces, inline.NodePiece(out))
	}
	return inline.CoalesceMode(pieces, s.mode), nil
}

func (s *Serializer[T]) finalize(text string) string {
	p := inline.CoalesceMode(inline.Texts[T](text), s.mode)
	if len(p) == 0 {
		return ""
	}
	return p[0].Text()
}

// --- Visitor ---------------------------------------------------------------

// visitor serializes a single node; slots are serialized by nested
// visitors.
type visitor[T any] struct {
	s      *Serializer[T]
	result T
}

func (v *visitor[T]) element(tag string, attrs []Attr, children []inline.Piece[T]) error {
	v.result = v.s.target.Element(tag, attrs, children)
	return nil
}

func (v *visitor[T]) slotElement(tag string, attrs []Attr, content []node.Mixed) error {
	children, err := v.s.Slot(content)
	if err != nil {
		return err
	}
	return v.element(tag, attrs, children)
}

func (v *visitor[T]) inlineElement(tag string, attrs []Attr, content []node.Inline) error {
	return v.slotElement(tag, attrs, node.InlinesToMixed(content))
}

// wrapped serializes a slot as a child element and returns it as a piece.
func (v *visitor[T]) wrapped(tag string, content []node.Mixed) (inline.Piece[T], error) {
	children, err := v.s.Slot(content)
	if err != nil {
		return inline.Piece[T]{}, err
	}
	return inline.NodePiece(v.s.target.Element(tag, nil, children)), nil
}

func (v *visitor[T]) text(s string) inline.Piece[T] {
	return inline.TextPiece[T](s)
}

func (v *visitor[T]) VisitText(t node.Text) error {
	// text is handled by Serialize and Slot
	return core.Error(core.EINTERNAL, "text %q reached visitor", string(t))
}

func (v *visitor[T]) VisitLineBreak(*node.LineBreak) error {
	return v.element("br", nil, nil)
}

func (v *visitor[T]) VisitEmphasis(e *node.Emphasis) error {
	tracer().Debugf("serialize %s emphasis", e.Style())
	switch e.Style() {
	case node.EmphasisStrong:
		return v.inlineElement("strong", nil, e.Content())
	case node.EmphasisDotted:
		return v.inlineElement("em", []Attr{{Key: "style", Val: dottedStyle}}, e.Content())
	}
	return v.inlineElement("em", nil, e.Content())
}

func (v *visitor[T]) VisitUnderline(u *node.Underline) error {
	return v.inlineElement("u", nil, u.Content())
}

func (v *visitor[T]) VisitStrikethrough(st *node.Strikethrough) error {
	return v.inlineElement("s", nil, st.Content())
}

func (v *visitor[T]) VisitRuby(r *node.Ruby) error {
	rb, err := v.wrapped("rb", node.InlinesToMixed(r.Base()))
	if err != nil {
		return err
	}
	rt, err := v.wrapped("rt", node.InlinesToMixed(r.Annotation()))
	if err != nil {
		return err
	}
	opening, closing := r.Parens()
	t := v.s.target
	return v.element("ruby", nil, []inline.Piece[T]{
		rb,
		inline.NodePiece(t.Element("rp", nil, []inline.Piece[T]{v.text(opening)})),
		rt,
		inline.NodePiece(t.Element("rp", nil, []inline.Piece[T]{v.text(closing)})),
	})
}

func (v *visitor[T]) VisitCode(c *node.Code) error {
	return v.element("code", nil, []inline.Piece[T]{v.text(c.Text())})
}

func (v *visitor[T]) VisitRefLink(r *node.RefLink) error {
	return v.element(RefLinkTag, []Attr{{Key: "address", Val: r.Address()}}, nil)
}

func (v *visitor[T]) VisitScript(sc *node.Script) error {
	return core.WrapError(ErrUnimplemented, core.EUNIMPLEMENTED,
		"script %q must be handled by an output-specific integration", sc.Code())
}

func (v *visitor[T]) VisitParagraph(p *node.Paragraph) error {
	return v.inlineElement("p", nil, p.Content())
}

func (v *visitor[T]) VisitThematicBreak(*node.ThematicBreak) error {
	return v.element("hr", nil, nil)
}

func (v *visitor[T]) VisitHeading(h *node.Heading) error {
	return v.inlineElement(fmt.Sprintf("h%d", h.Level()), nil, h.Content())
}

func (v *visitor[T]) VisitBlockQuote(q *node.BlockQuote) error {
	return v.slotElement("blockquote", nil, q.Content())
}

func (v *visitor[T]) listItems(tag string, items [][]node.Mixed) error {
	children := make([]inline.Piece[T], len(items))
	for i, item := range items {
		li, err := v.wrapped("li", item)
		if err != nil {
			return err
		}
		children[i] = li
	}
	return v.element(tag, nil, children)
}

func (v *visitor[T]) VisitOrderedList(l *node.OrderedList) error {
	return v.listItems("ol", l.Items())
}

func (v *visitor[T]) VisitUnorderedList(l *node.UnorderedList) error {
	return v.listItems("ul", l.Items())
}

func (v *visitor[T]) VisitDescriptionList(l *node.DescriptionList) error {
	children := make([]inline.Piece[T], len(l.Items()))
	for i, item := range l.Items() {
		tag := "dt"
		if item.Kind == node.Detail {
			tag = "dd"
		}
		d, err := v.wrapped(tag, item.Content)
		if err != nil {
			return err
		}
		children[i] = d
	}
	return v.element("dl", nil, children)
}

func (v *visitor[T]) VisitTable(tbl *node.Table) error {
	children := make([]inline.Piece[T], 0, len(tbl.Rows())+1)
	if caption, ok := tbl.Caption().Get(); ok {
		c, err := v.wrapped("caption", node.InlinesToMixed(caption))
		if err != nil {
			return err
		}
		children = append(children, c)
	}
	for _, row := range tbl.Rows() {
		cells := make([]inline.Piece[T], len(row))
		for j, cell := range row {
			tag := "td"
			if cell.Kind == node.HeaderCell {
				tag = "th"
			}
			c, err := v.wrapped(tag, cell.Content)
			if err != nil {
				return err
			}
			cells[j] = c
		}
		children = append(children, inline.NodePiece(v.s.target.Element("tr", nil, cells)))
	}
	return v.element("table", nil, children)
}

func (v *visitor[T]) VisitRoot(r *node.Root) error {
	blocks := make([]T, len(r.Children()))
	for i, b := range r.Children() {
		out, err := v.s.Serialize(b)
		if err != nil {
			return err
		}
		blocks[i] = out
	}
	tracer().Debugf("serialized root with %d blocks", len(blocks))
	v.result = v.s.target.Fragment(blocks)
	return nil
}

var _ node.Visitor = &visitor[struct{}]{}
