package inline

import (
	"github.com/umajho/rotext-sub001/core/parameters"
	"github.com/umajho/rotext-sub001/engine/markup/node"
)

// JoinLines joins lines of inline pieces. Lines are interspersed with a
// node created by lineBreak if breaks is set, and with a single space
// otherwise. The joined sequence is coalesced without decoding, as lines are
// expected to have been decoded already.
func JoinLines[T any](lines [][]Piece[T], breaks bool, lineBreak func() T) []Piece[T] {
	n := 0
	for _, l := range lines {
		n += len(l) + 1
	}
	joined := make([]Piece[T], 0, n)
	for i, l := range lines {
		if i > 0 {
			if breaks {
				joined = append(joined, NodePiece(lineBreak()))
			} else {
				joined = append(joined, TextPiece[T](" "))
			}
		}
		joined = append(joined, l...)
	}
	return Coalesce(joined, false)
}

// JoinLinesFrom is JoinLines with the break mode taken from registers
// (parameter P_BREAKS). A nil regs yields the default mode.
func JoinLinesFrom[T any](regs *parameters.Registers, lines [][]Piece[T], lineBreak func() T) []Piece[T] {
	if regs == nil {
		regs = parameters.NewRegisters()
	}
	return JoinLines(lines, regs.B(parameters.P_BREAKS), lineBreak)
}

// JoinInlineLines joins lines of inline nodes into the content of a single
// inline slot, e.g. for the soft line breaks inside a paragraph. Adjacent
// text nodes are merged; entities are left as they are.
func JoinInlineLines(lines [][]node.Inline, breaks bool) []node.Inline {
	pieces := make([][]Piece[node.Inline], len(lines))
	for i, l := range lines {
		pieces[i] = FromInlines(l)
	}
	joined := JoinLines(pieces, breaks, func() node.Inline { return node.NewLineBreak() })
	return ToInlines(joined)
}

// FromInlines converts an inline slot to pieces: text nodes become text
// fragments, all other nodes become node pieces.
func FromInlines(s []node.Inline) []Piece[node.Inline] {
	pieces := make([]Piece[node.Inline], len(s))
	for i, n := range s {
		if t, ok := n.(node.Text); ok {
			pieces[i] = TextPiece[node.Inline](string(t))
		} else {
			pieces[i] = NodePiece(n)
		}
	}
	return pieces
}

// ToInlines converts pieces back to an inline slot.
func ToInlines(pieces []Piece[node.Inline]) []node.Inline {
	s := make([]node.Inline, len(pieces))
	for i, p := range pieces {
		if p.isText {
			s[i] = node.Text(p.text)
		} else {
			s[i] = p.node
		}
	}
	return s
}

// JoinParagraph creates a paragraph from lines of inline content, breaking
// lines according to parameter P_BREAKS of regs. A nil regs yields the
// default mode.
func JoinParagraph(regs *parameters.Registers, lines [][]node.Inline) *node.Paragraph {
	if regs == nil {
		regs = parameters.NewRegisters()
	}
	return node.NewParagraph(JoinInlineLines(lines, regs.B(parameters.P_BREAKS))...)
}
