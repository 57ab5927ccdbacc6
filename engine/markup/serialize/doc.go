/*
Package serialize maps a rotext document tree to an arbitrary output tree.

The output representation is supplied by the caller as a Target, a small set
of constructors for elements and fragments. The same traversal thus produces
x/net/html node trees (package htmltarget), in-memory test trees (package
memtree) or any other tree a client cares to implement.

Every node variant maps to exactly one element shape:

	emphasis        em, strong (dotted emphasis: em with a style hook)
	underline       u
	strikethrough   s
	code            code
	ref-link        x-ref-link, with the raw target as attribute "address"
	ruby            ruby( rb, rp, rt, rp )
	line-break      br
	paragraph       p
	thematic-break  hr
	heading         h1 … h6
	block-quote     blockquote
	lists           ol, ul with li items; dl with dt, dd items
	table           table( caption?, tr( th | td … ) … )
	root            a fragment of its blocks

Slots are serialized child by child and the resulting pieces coalesced, so a
slot holding a single text fragment becomes a single text child.

Scripts (embedded expressions) are not handled here. They are the domain of
output-specific widget integrations, and the serializer reports them with an
error wrapping ErrUnimplemented.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package serialize

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rotext.serialize'.
func tracer() tracing.Trace {
	return tracing.Select("rotext.serialize")
}
