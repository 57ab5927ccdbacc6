package inline

import "fmt"

// Piece is an element of an inline sequence under construction: either an
// opaque output node of type T or a raw text fragment.
type Piece[T any] struct {
	node   T
	text   string
	isText bool
}

// NodePiece wraps an output node.
func NodePiece[T any](n T) Piece[T] {
	return Piece[T]{node: n}
}

// TextPiece wraps a text fragment.
func TextPiece[T any](s string) Piece[T] {
	return Piece[T]{text: s, isText: true}
}

// IsText is true for text fragments.
func (p Piece[T]) IsText() bool { return p.isText }

// Text returns the text of a text fragment, or "" for a node.
func (p Piece[T]) Text() string { return p.text }

// Node returns the node of a node piece, or the zero value of T for text.
func (p Piece[T]) Node() T { return p.node }

func (p Piece[T]) String() string {
	if p.isText {
		return fmt.Sprintf("%q", p.text)
	}
	return fmt.Sprintf("<%v>", p.node)
}

// Texts returns the pieces for a sequence of text fragments.
func Texts[T any](fragments ...string) []Piece[T] {
	pieces := make([]Piece[T], len(fragments))
	for i, s := range fragments {
		pieces[i] = TextPiece[T](s)
	}
	return pieces
}
