package node

import (
	"fmt"
	"reflect"
)

// Node is a node of a rotext document tree.
type Node interface {
	Kind() Kind
	Accept(Visitor) error
	isNode()
}

// Mixed is a node which may appear in a mixed slot, i.e. an inline or a
// block node.
type Mixed interface {
	Node
	isMixed()
}

// Inline is an inline-level node.
type Inline interface {
	Mixed
	isInline()
}

// Block is a block-level node.
type Block interface {
	Mixed
	isBlock()
}

// IsNil is true for a nil interface and for a nil pointer of a node variant.
// Neither can be dispatched on.
func IsNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// Visitor dispatches over the closed set of node variants.
type Visitor interface {
	VisitText(Text) error
	VisitLineBreak(*LineBreak) error
	VisitEmphasis(*Emphasis) error
	VisitUnderline(*Underline) error
	VisitStrikethrough(*Strikethrough) error
	VisitRuby(*Ruby) error
	VisitCode(*Code) error
	VisitRefLink(*RefLink) error
	VisitScript(*Script) error
	VisitParagraph(*Paragraph) error
	VisitThematicBreak(*ThematicBreak) error
	VisitHeading(*Heading) error
	VisitBlockQuote(*BlockQuote) error
	VisitOrderedList(*OrderedList) error
	VisitUnorderedList(*UnorderedList) error
	VisitDescriptionList(*DescriptionList) error
	VisitTable(*Table) error
	VisitRoot(*Root) error
}

// Kind is the tag of a node variant.
type Kind int8

const (
	KindText Kind = iota
	KindLineBreak
	KindEmphasis
	KindUnderline
	KindStrikethrough
	KindRuby
	KindCode
	KindRefLink
	KindScript
	KindParagraph
	KindThematicBreak
	KindHeading
	KindBlockQuote
	KindOrderedList
	KindUnorderedList
	KindDescriptionList
	KindTable
	KindRoot
)

var kindNames = [...]string{
	"text", "line-break", "emphasis", "underline", "strikethrough", "ruby", "code",
	"ref-link", "script", "paragraph", "thematic-break", "heading", "block-quote",
	"ordered-list", "unordered-list", "description-list", "table", "root",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// IsInline is true for the kinds of inline variants, including text.
func (k Kind) IsInline() bool {
	return k >= KindText && k <= KindScript
}

// IsBlock is true for the kinds of block variants.
func (k Kind) IsBlock() bool {
	return k >= KindParagraph && k <= KindTable
}

// --- Markers ---------------------------------------------------------------

type inlineNode struct{}

func (inlineNode) isNode()   {}
func (inlineNode) isMixed()  {}
func (inlineNode) isInline() {}

type blockNode struct{}

func (blockNode) isNode()  {}
func (blockNode) isMixed() {}
func (blockNode) isBlock() {}

// --- Slot helpers ----------------------------------------------------------

func copyInlines(s []Inline) []Inline {
	if len(s) == 0 {
		return nil
	}
	c := make([]Inline, len(s))
	copy(c, s)
	return c
}

func copyMixed(s []Mixed) []Mixed {
	if len(s) == 0 {
		return nil
	}
	c := make([]Mixed, len(s))
	copy(c, s)
	return c
}

// InlinesToMixed converts an inline slot to a mixed slot.
func InlinesToMixed(s []Inline) []Mixed {
	if len(s) == 0 {
		return nil
	}
	m := make([]Mixed, len(s))
	for i, n := range s {
		m[i] = n
	}
	return m
}

// BlocksToMixed converts a block slot to a mixed slot.
func BlocksToMixed(s []Block) []Mixed {
	if len(s) == 0 {
		return nil
	}
	m := make([]Mixed, len(s))
	for i, n := range s {
		m[i] = n
	}
	return m
}
