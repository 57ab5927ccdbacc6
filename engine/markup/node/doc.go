/*
Package node holds the closed set of node variants of a rotext document.

Nodes are partitioned into inline and block nodes. Every variant has a fixed
set of slots:

	raw text   an opaque string, never holding nested nodes
	inline     an ordered sequence of inline nodes and text fragments
	block      an ordered sequence of block nodes
	mixed      an ordered sequence of inline or block nodes

A document is a Root, wrapping a single block slot. Nodes are immutable once
constructed: constructors copy the slices handed to them, and no operation of
this module changes a node in place. Restructuring produces new container
nodes referencing the original leaf content.

The variant set is closed. Interfaces Node, Mixed, Inline and Block are
sealed by unexported marker methods, and consumers dispatch over variants
with a Visitor. Visitor has one method per variant, so adding a variant is a
compile-time visible change for every consumer.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package node

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rotext.markup'.
func tracer() tracing.Trace {
	return tracing.Select("rotext.markup")
}
