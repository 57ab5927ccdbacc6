package node

import (
	"github.com/umajho/rotext-sub001/core/option"
)

// Text is a plain text fragment inside an inline or mixed slot. Text may
// still contain character entity references; they are decoded when text
// runs are coalesced for output.
type Text string

func (Text) isNode()   {}
func (Text) isMixed()  {}
func (Text) isInline() {}

// Kind returns KindText.
func (Text) Kind() Kind { return KindText }

// Accept dispatches to v.VisitText.
func (t Text) Accept(v Visitor) error { return v.VisitText(t) }

// --- LineBreak -------------------------------------------------------------

// LineBreak is a hard line break.
type LineBreak struct {
	inlineNode
}

// NewLineBreak creates a line break.
func NewLineBreak() *LineBreak {
	return &LineBreak{}
}

func (*LineBreak) Kind() Kind                { return KindLineBreak }
func (lb *LineBreak) Accept(v Visitor) error { return v.VisitLineBreak(lb) }

// --- Emphasis --------------------------------------------------------------

// EmphasisStyle distinguishes the sub-kinds of emphasis.
type EmphasisStyle int8

const (
	EmphasisPlain EmphasisStyle = iota
	EmphasisStrong
	EmphasisDotted
)

func (s EmphasisStyle) String() string {
	switch s {
	case EmphasisStrong:
		return "strong"
	case EmphasisDotted:
		return "dotted"
	}
	return "plain"
}

// Emphasis is emphasized inline content.
type Emphasis struct {
	inlineNode
	style   EmphasisStyle
	content []Inline
}

// NewEmphasis creates an emphasis of a given style.
func NewEmphasis(style EmphasisStyle, content ...Inline) *Emphasis {
	return &Emphasis{style: style, content: copyInlines(content)}
}

func (*Emphasis) Kind() Kind               { return KindEmphasis }
func (e *Emphasis) Accept(v Visitor) error { return v.VisitEmphasis(e) }

// Style returns the emphasis sub-kind.
func (e *Emphasis) Style() EmphasisStyle { return e.style }

// Content returns the inline slot. Clients must not modify it.
func (e *Emphasis) Content() []Inline { return e.content }

// --- Underline and Strikethrough -------------------------------------------

// Underline is underlined inline content.
type Underline struct {
	inlineNode
	content []Inline
}

// NewUnderline creates an underline.
func NewUnderline(content ...Inline) *Underline {
	return &Underline{content: copyInlines(content)}
}

func (*Underline) Kind() Kind               { return KindUnderline }
func (u *Underline) Accept(v Visitor) error { return v.VisitUnderline(u) }

// Content returns the inline slot. Clients must not modify it.
func (u *Underline) Content() []Inline { return u.content }

// Strikethrough is struck-through inline content.
type Strikethrough struct {
	inlineNode
	content []Inline
}

// NewStrikethrough creates a strikethrough.
func NewStrikethrough(content ...Inline) *Strikethrough {
	return &Strikethrough{content: copyInlines(content)}
}

func (*Strikethrough) Kind() Kind               { return KindStrikethrough }
func (s *Strikethrough) Accept(v Visitor) error { return v.VisitStrikethrough(s) }

// Content returns the inline slot. Clients must not modify it.
func (s *Strikethrough) Content() []Inline { return s.content }

// --- Ruby ------------------------------------------------------------------

// Ruby is a ruby annotation: base text, annotation text and a pair of
// fallback parentheses for renderers without ruby support.
type Ruby struct {
	inlineNode
	base       []Inline
	annotation []Inline
	parens     [2]string
}

// NewRuby creates a ruby annotation.
func NewRuby(base []Inline, annotation []Inline, parens [2]string) *Ruby {
	return &Ruby{
		base:       copyInlines(base),
		annotation: copyInlines(annotation),
		parens:     parens,
	}
}

func (*Ruby) Kind() Kind               { return KindRuby }
func (r *Ruby) Accept(v Visitor) error { return v.VisitRuby(r) }

// Base returns the base inline slot. Clients must not modify it.
func (r *Ruby) Base() []Inline { return r.base }

// Annotation returns the annotation slot. Clients must not modify it.
func (r *Ruby) Annotation() []Inline { return r.annotation }

// Parens returns the opening and closing fallback parenthesis.
func (r *Ruby) Parens() (string, string) { return r.parens[0], r.parens[1] }

// --- Raw text variants -----------------------------------------------------

// Code is an inline code span. Its content is raw text.
type Code struct {
	inlineNode
	text string
}

// NewCode creates a code span.
func NewCode(raw string) *Code {
	return &Code{text: raw}
}

func (*Code) Kind() Kind               { return KindCode }
func (c *Code) Accept(v Visitor) error { return v.VisitCode(c) }

// Text returns the raw text slot.
func (c *Code) Text() string { return c.text }

// RefLink is a reference link. Its target is raw text.
type RefLink struct {
	inlineNode
	address string
}

// NewRefLink creates a reference link to address.
func NewRefLink(address string) *RefLink {
	return &RefLink{address: address}
}

func (*RefLink) Kind() Kind               { return KindRefLink }
func (r *RefLink) Accept(v Visitor) error { return v.VisitRefLink(r) }

// Address returns the raw text target.
func (r *RefLink) Address() string { return r.address }

// Script is an embedded expression: source code and an optional
// assignment target, both raw text. Scripts are evaluated by an
// output-specific integration, not by this module.
type Script struct {
	inlineNode
	code   string
	assign option.T[string]
}

// NewScript creates an embedded expression.
func NewScript(code string, assign option.T[string]) *Script {
	return &Script{code: code, assign: assign}
}

func (*Script) Kind() Kind               { return KindScript }
func (s *Script) Accept(v Visitor) error { return v.VisitScript(s) }

// Code returns the raw source slot.
func (s *Script) Code() string { return s.code }

// Assign returns the optional raw assignment target slot.
func (s *Script) Assign() option.T[string] { return s.assign }
