package serialize

import (
	"github.com/umajho/rotext-sub001/engine/markup/inline"
)

// Attr is an attribute of an output element.
type Attr struct {
	Key, Val string
}

// Target is the capability set of an output representation.
//
// Children handed to Element are coalesced: text pieces are never adjacent
// and have been finalized. A target turns text pieces into its own notion of
// text, e.g. text nodes or plain strings.
type Target[T any] interface {
	// Element creates an element with a tag, attributes and children.
	Element(tag string, attrs []Attr, children []inline.Piece[T]) T
	// Fragment groups a sequence of nodes without an enclosing element.
	Fragment(nodes []T) T
}

// TextTarget is implemented by targets able to represent a text fragment
// on its own. It is needed only for serializing a text node outside of any
// slot.
type TextTarget[T any] interface {
	Target[T]
	Text(s string) T
}
